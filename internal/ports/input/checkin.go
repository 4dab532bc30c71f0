package input

import (
	"context"
	"time"
)

// AttendanceReport is the outcome of a check-in window.
type AttendanceReport struct {
	Present []string
	Absent  []string
	Rate    float64 // 0 when the event has no participants
}

type CheckinUseCase interface {
	// Activate opens the check-in window. A zero duration means no deadline.
	Activate(ctx context.Context, guildID, eventID, actorID string, duration time.Duration) error
	Deactivate(ctx context.Context, guildID, eventID, actorID string) error
	// CheckIn is idempotent for an already checked-in participant.
	CheckIn(ctx context.Context, guildID, eventID, userID string) error
	Report(ctx context.Context, guildID, eventID string) (AttendanceReport, error)
}
