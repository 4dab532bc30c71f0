package output

import (
	"context"

	"clanbot/internal/domain/entities"
)

// EventStore holds all events, partitioned by guild. Implementations must
// serialize access per event so concurrent mutations appear atomic.
type EventStore interface {
	// Create assigns a fresh unique ID to the event and stores it.
	Create(ctx context.Context, event *entities.Event) (string, error)
	// Get returns a copy of the event, or domain.ErrEventNotFound.
	Get(ctx context.Context, guildID, id string) (*entities.Event, error)
	// List returns copies of the guild's events in creation order.
	List(ctx context.Context, guildID string) ([]entities.Event, error)
	// All returns copies of every event across all guilds.
	All(ctx context.Context) ([]entities.Event, error)
	// Mutate runs fn on the live event under its lock. Errors from fn are
	// returned unchanged and leave partial mutations in place, so fn must
	// validate before mutating.
	Mutate(ctx context.Context, guildID, id string, fn func(*entities.Event) error) error
	// Remove deletes one event, or returns domain.ErrEventNotFound.
	Remove(ctx context.Context, guildID, id string) error
	// Clear deletes all events of a guild and returns their IDs.
	Clear(ctx context.Context, guildID string) ([]string, error)
}
