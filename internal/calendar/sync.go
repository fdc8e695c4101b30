package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"launchbot/internal/dal"
)

// syncWindow bounds how far ahead launches are mirrored. Launches further out
// than this shift too often to be worth a calendar entry.
const syncWindow = 30 * 24 * time.Hour

// defaultEventDuration is used when the feed gives no launch window close.
const defaultEventDuration = time.Hour

// EventsAPI is the slice of the Calendar client the sync needs.
type EventsAPI interface {
	ListOurEvents(ctx context.Context, timeMin, timeMax time.Time) ([]string, error)
	InsertEvent(ctx context.Context, summary string, start, end time.Time, description string) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type Clock interface {
	Now() time.Time
}

// SyncService mirrors upcoming launches to a Google Calendar with a
// delete-then-recreate sync: every run removes the events it created earlier
// in the window and inserts fresh ones, so slips and scrubs never leave stale
// entries behind.
type SyncService struct {
	client EventsAPI
	clock  Clock
	log    *slog.Logger
}

func NewSyncService(client EventsAPI, clock Clock, log *slog.Logger) *SyncService {
	return &SyncService{
		client: client,
		clock:  clock,
		log:    log.With("component", "calendar_sync"),
	}
}

// Sync replaces our events in [now, now+30d] with one event per launch that
// has a known t0 inside the window.
func (s *SyncService) Sync(ctx context.Context, launches []dal.Launch) error {
	now := s.clock.Now()
	timeMax := now.Add(syncWindow)

	ids, err := s.client.ListOurEvents(ctx, now, timeMax)
	if err != nil {
		return fmt.Errorf("calendar sync failed: list: %w", err)
	}
	for _, id := range ids {
		if err := s.client.DeleteEvent(ctx, id); err != nil {
			return fmt.Errorf("calendar sync failed: delete %s: %w", id, err)
		}
	}
	s.log.DebugContext(ctx, "deleted our events", "count", len(ids))

	created := 0
	for _, launch := range launches {
		if launch.T0 == nil {
			continue
		}
		start := launch.T0.Time
		if start.Before(now) || start.After(timeMax) {
			continue
		}

		if _, err := s.client.InsertEvent(ctx, launch.Name, start, eventEnd(launch), eventDescription(launch)); err != nil {
			return fmt.Errorf("calendar sync failed: insert launchID=%d: %w", launch.ID, err)
		}
		created++
	}

	s.log.InfoContext(ctx, "calendar sync completed", "deleted", len(ids), "created", created)
	return nil
}

// eventEnd prefers the feed's window close; a window that closes at or before
// t0 falls back to a fixed duration.
func eventEnd(launch dal.Launch) time.Time {
	start := launch.T0.Time
	if launch.WinClose != nil && launch.WinClose.After(start) {
		return launch.WinClose.Time
	}
	return start.Add(defaultEventDuration)
}

func eventDescription(launch dal.Launch) string {
	desc := launch.Pad.String()
	if launch.MissionDescription != nil && *launch.MissionDescription != "" {
		desc += "\n\n" + *launch.MissionDescription
	}
	desc += "\n\nhttps://rocketlaunch.live/launch/" + launch.Slug
	return desc
}
