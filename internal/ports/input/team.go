package input

import (
	"context"

	"clanbot/internal/domain/entities"
)

// TeamStats summarizes a team partition.
type TeamStats struct {
	TotalTeams        int
	TotalParticipants int
	TeamSizes         []int
	MinTeamSize       int
	MaxTeamSize       int
	AverageTeamSize   float64
}

type TeamUseCase interface {
	// RandomizeTeams shuffles the event's participants into teams of the
	// given size and stores the result on the event. The trailing team may
	// be smaller.
	RandomizeTeams(ctx context.Context, guildID, eventID string, teamSize int) ([]entities.Team, error)
	ShowTeams(ctx context.Context, guildID, eventID string) ([]entities.Team, error)
	ClearTeams(ctx context.Context, guildID, eventID string) error
	Stats(ctx context.Context, guildID, eventID string) (TeamStats, error)
}
