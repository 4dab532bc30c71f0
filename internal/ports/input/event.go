package input

import (
	"context"

	"clanbot/internal/domain"
	"clanbot/internal/domain/entities"
)

// CreateEventParams carries the raw, user-provided event fields. Date and
// time are local-timezone strings (JJ/MM/AAAA and HH:MM); the use case
// normalizes them to UTC.
type CreateEventParams struct {
	GuildID         string
	CreatorID       string
	Type            domain.EventType
	Name            string
	Description     string
	Date            string
	Time            string
	TeamSize        int // 0 = decide later
	MaxParticipants int // 0 = type default
}

// GuildStats summarizes a guild's events.
type GuildStats struct {
	TotalEvents       int
	ByType            map[domain.EventType]int
	ByStatus          map[domain.EventStatus]int
	TotalParticipants int
}

type EventUseCase interface {
	CreateEvent(ctx context.Context, p CreateEventParams) (*entities.Event, error)
	GetEvent(ctx context.Context, guildID, eventID string) (*entities.Event, error)
	ListEvents(ctx context.Context, guildID string) ([]entities.Event, error)
	ListEventsByStatus(ctx context.Context, guildID string, status domain.EventStatus) ([]entities.Event, error)
	ListEventsByType(ctx context.Context, guildID string, eventType domain.EventType) ([]entities.Event, error)
	Join(ctx context.Context, guildID, eventID, userID string) (*entities.Event, error)
	Leave(ctx context.Context, guildID, eventID, userID string) (*entities.Event, error)
	Start(ctx context.Context, guildID, eventID, actorID string) (*entities.Event, error)
	Complete(ctx context.Context, guildID, eventID, actorID string) (*entities.Event, error)
	Cancel(ctx context.Context, guildID, eventID, actorID string) (*entities.Event, error)
	DeleteEvent(ctx context.Context, guildID, eventID, actorID string) error
	ClearEvents(ctx context.Context, guildID string) (int, error)
	LinkMessage(ctx context.Context, guildID, eventID, channelID, messageID string) error
	FindByMessageID(ctx context.Context, guildID, messageID string) (*entities.Event, error)
	Stats(ctx context.Context, guildID string) (GuildStats, error)
}
