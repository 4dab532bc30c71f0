package output

import (
	"context"

	"clanbot/internal/domain/entities"
)

// Notifier delivers a pre-event reminder to the participants of an event,
// in the event's own channel context. The core decides when and to whom;
// rendering and transport belong to the implementation.
type Notifier interface {
	NotifyEventStarting(ctx context.Context, event entities.Event) error
}
