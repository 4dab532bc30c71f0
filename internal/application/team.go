package application

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/sirupsen/logrus"

	"clanbot/internal/domain"
	"clanbot/internal/domain/entities"
	"clanbot/internal/ports/input"
	"clanbot/internal/ports/output"
)

var _ input.TeamUseCase = (*TeamService)(nil)

// TeamService randomizes an event's participants into teams of a fixed size.
// The random source is injected so team composition is reproducible in tests.
type TeamService struct {
	store output.EventStore
	log   *logrus.Logger

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

func NewTeamService(store output.EventStore, rng *rand.Rand, log *logrus.Logger) *TeamService {
	return &TeamService{store: store, rng: rng, log: log}
}

// Assign partitions participants into teams of teamSize: a uniformly random
// permutation, chunked sequentially. The trailing team may be smaller; that
// remainder is reported as a team, not an error.
func (s *TeamService) Assign(participants []string, teamSize int) ([]entities.Team, error) {
	if len(participants) == 0 {
		return nil, domain.ErrInsufficientParticipants
	}
	if !domain.IsValidTeamSize(teamSize) {
		return nil, domain.ErrInvalidTeamSize
	}

	shuffled := append([]string(nil), participants...)
	s.mu.Lock()
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()

	teams := make([]entities.Team, 0, (len(shuffled)+teamSize-1)/teamSize)
	for start := 0; start < len(shuffled); start += teamSize {
		end := start + teamSize
		if end > len(shuffled) {
			end = len(shuffled)
		}
		teams = append(teams, entities.Team(shuffled[start:end]))
	}
	return teams, nil
}

// RandomizeTeams assigns teams for the event and stores the partition.
// The size must be one of the event type's suggested sizes.
func (s *TeamService) RandomizeTeams(ctx context.Context, guildID, eventID string, teamSize int) ([]entities.Team, error) {
	event, err := s.store.Get(ctx, guildID, eventID)
	if err != nil {
		return nil, err
	}
	if err := validateTeamSizeForType(teamSize, domain.InfoFor(event.Type)); err != nil {
		return nil, err
	}

	teams, err := s.Assign(event.Participants, teamSize)
	if err != nil {
		return nil, err
	}
	err = s.store.Mutate(ctx, guildID, eventID, func(e *entities.Event) error {
		e.Teams = teams
		e.AssignedTeamSize = teamSize
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"event_id":  eventID,
		"guild_id":  guildID,
		"teams":     len(teams),
		"team_size": teamSize,
	}).Info("équipes tirées au sort")
	return teams, nil
}

func (s *TeamService) ShowTeams(ctx context.Context, guildID, eventID string) ([]entities.Team, error) {
	event, err := s.store.Get(ctx, guildID, eventID)
	if err != nil {
		return nil, err
	}
	return event.Teams, nil
}

func (s *TeamService) ClearTeams(ctx context.Context, guildID, eventID string) error {
	return s.store.Mutate(ctx, guildID, eventID, func(e *entities.Event) error {
		e.Teams = nil
		e.AssignedTeamSize = 0
		return nil
	})
}

func (s *TeamService) Stats(ctx context.Context, guildID, eventID string) (input.TeamStats, error) {
	teams, err := s.ShowTeams(ctx, guildID, eventID)
	if err != nil {
		return input.TeamStats{}, err
	}
	stats := input.TeamStats{TotalTeams: len(teams)}
	if len(teams) == 0 {
		return stats, nil
	}
	stats.MinTeamSize = len(teams[0])
	for _, team := range teams {
		n := len(team)
		stats.TeamSizes = append(stats.TeamSizes, n)
		stats.TotalParticipants += n
		if n < stats.MinTeamSize {
			stats.MinTeamSize = n
		}
		if n > stats.MaxTeamSize {
			stats.MaxTeamSize = n
		}
	}
	stats.AverageTeamSize = float64(stats.TotalParticipants) / float64(len(teams))
	return stats, nil
}
