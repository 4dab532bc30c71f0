package output

import "clanbot/internal/domain/entities"

// ReminderScheduler receives lifecycle notifications so pending reminder
// tasks follow event creation and cancellation.
type ReminderScheduler interface {
	// Schedule registers (or re-registers) the event's reminder deadline.
	// Events without a start time are ignored.
	Schedule(event entities.Event)
	// Cancel drops any pending reminder for the event, including an
	// in-flight notification task.
	Cancel(eventID string)
}
