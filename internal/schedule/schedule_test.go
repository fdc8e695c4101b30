package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"launchbot/internal/schedule"
)

func TestTiers_Due(t *testing.T) {
	tiers := schedule.Tiers{86400, 3600, 900}

	tests := []struct {
		name         string
		lastRecorded int64
		untilLaunch  int64
		wantTier     int64
		wantDue      bool
	}{
		{
			name:         "outside_all_tiers",
			lastRecorded: schedule.NeverNotified,
			untilLaunch:  90000,
			wantDue:      false,
		},
		{
			name:         "never_notified_inside_24h",
			lastRecorded: schedule.NeverNotified,
			untilLaunch:  86300,
			wantTier:     86400,
			wantDue:      true,
		},
		{
			name:         "recorded_at_24h_not_due_until_1h",
			lastRecorded: 86300,
			untilLaunch:  3700,
			wantDue:      false,
		},
		{
			name:         "recorded_at_24h_due_at_1h",
			lastRecorded: 86300,
			untilLaunch:  3600,
			wantTier:     3600,
			wantDue:      true,
		},
		{
			name:         "skipped_tiers_match_coarsest_only",
			lastRecorded: schedule.NeverNotified,
			untilLaunch:  500,
			wantTier:     86400,
			wantDue:      true,
		},
		{
			name:         "recorded_at_1h_skips_to_15min",
			lastRecorded: 3500,
			untilLaunch:  600,
			wantTier:     900,
			wantDue:      true,
		},
		{
			name:         "recorded_at_finest_tier_never_due_again",
			lastRecorded: 850,
			untilLaunch:  -100,
			wantDue:      false,
		},
		{
			name:         "past_launch_still_matches_unrecorded_tier",
			lastRecorded: 3500,
			untilLaunch:  -10,
			wantTier:     900,
			wantDue:      true,
		},
		{
			name:         "recorded_exactly_at_tier_boundary",
			lastRecorded: 3600,
			untilLaunch:  900,
			wantTier:     900,
			wantDue:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, due := tiers.Due(tt.lastRecorded, tt.untilLaunch)
			assert.Equal(t, tt.wantDue, due)
			if tt.wantDue {
				assert.Equal(t, tt.wantTier, tier)
			}
		})
	}
}

// Mirrors the lifecycle of a single subscriber as the countdown decreases:
// one notification per crossed boundary, none in between.
func TestTiers_Due_Monotonic(t *testing.T) {
	tiers := schedule.Tiers{86400, 3600, 900}
	lastRecorded := schedule.NeverNotified

	notified := make([]int64, 0, 3)
	for untilLaunch := int64(90000); untilLaunch > -600; untilLaunch -= 100 {
		if _, due := tiers.Due(lastRecorded, untilLaunch); due {
			notified = append(notified, untilLaunch)
			lastRecorded = untilLaunch
		}
	}

	assert.Equal(t, []int64{86400, 3600, 900}, notified)
}
