package domain

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	StatusOpen       EventStatus = "open"
	StatusFull       EventStatus = "full"
	StatusInProgress EventStatus = "in_progress"
	StatusCompleted  EventStatus = "completed"
	StatusCancelled  EventStatus = "cancelled"
)

// IsTerminal reports whether no further transition is permitted.
func (s EventStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// EventType identifies a kind of clan activity. Any other label is accepted
// as a custom type and falls back to the General defaults.
type EventType string

const (
	TypeBingo   EventType = "Bingo"
	TypePvP     EventType = "Tournoi JcJ"
	TypeGeneral EventType = "Événement général"
)

// TypeInfo carries the per-type defaults used at event creation.
type TypeInfo struct {
	DefaultDescription string
	SuggestedTeamSizes []int
	MaxParticipants    int
}

// ValidTeamSizes are the team sizes supported by clan activities.
// 5 is excluded: no supported activity uses 5-player teams.
var ValidTeamSizes = []int{1, 2, 3, 4, 6}

// DefaultMaxParticipants is the capacity applied when none is given.
const DefaultMaxParticipants = 100

var typeInfo = map[EventType]TypeInfo{
	TypeBingo: {
		DefaultDescription: "Défis Bingo avec divers objectifs à accomplir !",
		SuggestedTeamSizes: []int{2, 3},
		MaxParticipants:    DefaultMaxParticipants,
	},
	TypePvP: {
		DefaultDescription: "Tournoi JcJ compétitif avec progression en bracket !",
		SuggestedTeamSizes: []int{2, 3, 4, 6},
		MaxParticipants:    DefaultMaxParticipants,
	},
	TypeGeneral: {
		DefaultDescription: "Activité générale du clan, jouons ensemble !",
		SuggestedTeamSizes: []int{2, 3, 4, 6},
		MaxParticipants:    DefaultMaxParticipants,
	},
}

// InfoFor returns the defaults for t. Custom labels get the General defaults.
func InfoFor(t EventType) TypeInfo {
	if info, ok := typeInfo[t]; ok {
		return info
	}
	return typeInfo[TypeGeneral]
}

// IsValidTeamSize reports whether size is one of the supported team sizes.
func IsValidTeamSize(size int) bool {
	for _, s := range ValidTeamSizes {
		if s == size {
			return true
		}
	}
	return false
}
