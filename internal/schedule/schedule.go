// Package schedule holds the threshold-tier decision logic: given how many
// seconds remain until a launch and how many remained when the subscriber was
// last notified, it decides whether another notification is due.
package schedule

import "math"

// NeverNotified is the effective last-recorded value for a subscriber with no
// progress entry for a launch.
const NeverNotified int64 = math.MaxInt64

// Tiers is a fixed list of "seconds until launch" boundaries, longest first.
// Exactly one notification is due per crossed boundary.
type Tiers []int64

// Default mirrors 24h, 1h and 15min.
var Default = Tiers{24 * 3600, 3600, 15 * 60}

// Due reports the coarsest tier the countdown has entered that has not been
// notified yet. lastRecorded is the seconds-remaining value stored at the
// previous notification (NeverNotified when none); untilLaunch may be
// negative for past launches.
//
// At most one tier matches per invocation: if the poll interval skipped over
// a tier entirely, only the coarsest still-satisfied one is signalled, which
// bounds volume to one notification per subscriber per launch per cycle.
func (t Tiers) Due(lastRecorded, untilLaunch int64) (int64, bool) {
	for _, tier := range t {
		if lastRecorded <= tier {
			// already notified at this granularity or finer
			continue
		}
		if untilLaunch <= tier {
			return tier, true
		}
	}
	return 0, false
}
