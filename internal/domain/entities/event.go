package entities

import (
	"time"

	"clanbot/internal/domain"
)

// Team is an ordered group of participant user IDs.
type Team []string

// CheckinWindow tracks the attendance window attached to an event.
// CheckedIn only ever holds current participants of the event.
type CheckinWindow struct {
	Active    bool
	OpenedAt  time.Time
	ClosedAt  time.Time // zero = no deadline while active
	CheckedIn []string
}

// IsCheckedIn reports whether userID already checked in.
func (w *CheckinWindow) IsCheckedIn(userID string) bool {
	for _, id := range w.CheckedIn {
		if id == userID {
			return true
		}
	}
	return false
}

// Event represents a scheduled clan activity. All mutation goes through the
// application services; fields are exported for the store and the renderers.
type Event struct {
	ID              string
	GuildID         string
	Type            domain.EventType
	Name            string
	Description     string
	CreatorID       string
	MaxParticipants int
	TeamSize        int // 0 = not chosen yet
	StartTime       time.Time
	Status          domain.EventStatus
	CreatedAt       time.Time

	// Participants in join order; team assignment shuffles, display does not.
	Participants []string

	Checkin CheckinWindow

	Teams            []Team
	AssignedTeamSize int

	// Discord message tracking so button interactions resolve back to events.
	ChannelID string
	MessageID string

	// Reminded guarantees at-most-once reminder delivery.
	Reminded bool
}

// IsFull reports whether the event is at capacity.
func (e *Event) IsFull() bool {
	return e.MaxParticipants > 0 && len(e.Participants) >= e.MaxParticipants
}

// IsParticipant reports whether userID joined the event.
func (e *Event) IsParticipant(userID string) bool {
	for _, id := range e.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

// HasTeams reports whether teams have been assigned.
func (e *Event) HasTeams() bool {
	return len(e.Teams) > 0
}

// TeamFor returns the 1-indexed team number for userID, 0 if unassigned.
func (e *Event) TeamFor(userID string) int {
	for i, team := range e.Teams {
		for _, id := range team {
			if id == userID {
				return i + 1
			}
		}
	}
	return 0
}
