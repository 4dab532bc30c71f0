package application

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clanbot/internal/domain"
)

func participantIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("user-%02d", i)
	}
	return ids
}

func TestAssignPartitionProperties(t *testing.T) {
	env := newTestEnv()
	for _, teamSize := range domain.ValidTeamSizes {
		for _, n := range []int{1, 2, 5, 7, 12, 25} {
			input := participantIDs(n)
			teams, err := env.teams.Assign(input, teamSize)
			require.NoError(t, err, "n=%d size=%d", n, teamSize)

			wantTeams := (n + teamSize - 1) / teamSize
			assert.Len(t, teams, wantTeams, "n=%d size=%d", n, teamSize)

			var all []string
			for _, team := range teams {
				assert.LessOrEqual(t, len(team), teamSize)
				assert.NotEmpty(t, team)
				all = append(all, team...)
			}
			assert.Len(t, all, n, "sizes must sum to the participant count")

			sort.Strings(all)
			want := participantIDs(n)
			sort.Strings(want)
			assert.Equal(t, want, all, "every participant in exactly one team")
		}
	}
}

func TestAssignRejectsEmptyInput(t *testing.T) {
	env := newTestEnv()
	_, err := env.teams.Assign(nil, 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientParticipants)
}

func TestAssignRejectsInvalidTeamSize(t *testing.T) {
	env := newTestEnv()
	for _, size := range []int{0, -1, 5, 7, 100} {
		_, err := env.teams.Assign(participantIDs(10), size)
		assert.ErrorIs(t, err, domain.ErrInvalidTeamSize, "size=%d", size)
	}
}

func TestAssignTenParticipantsInTeamsOfFour(t *testing.T) {
	env := newTestEnv()
	teams, err := env.teams.Assign(participantIDs(10), 4)
	require.NoError(t, err)

	var sizes []int
	for _, team := range teams {
		sizes = append(sizes, len(team))
	}
	assert.Equal(t, []int{4, 4, 2}, sizes)
}

func TestAssignDeterministicWithSeededSource(t *testing.T) {
	log := testLogger()
	input := participantIDs(20)

	a := NewTeamService(nil, rand.New(rand.NewPCG(7, 7)), log)
	b := NewTeamService(nil, rand.New(rand.NewPCG(7, 7)), log)

	teamsA, err := a.Assign(input, 3)
	require.NoError(t, err)
	teamsB, err := b.Assign(input, 3)
	require.NoError(t, err)
	assert.Equal(t, teamsA, teamsB, "same seed must give the same partition")

	c := NewTeamService(nil, rand.New(rand.NewPCG(99, 1)), log)
	teamsC, err := c.Assign(input, 3)
	require.NoError(t, err)
	var sizesB, sizesC []int
	for i := range teamsB {
		sizesB = append(sizesB, len(teamsB[i]))
		sizesC = append(sizesC, len(teamsC[i]))
	}
	assert.Equal(t, sizesB, sizesC, "size distribution must not depend on the seed")
}

func TestRandomizeTeamsStoresPartition(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	event := env.createEvent(ctx, 0)
	for _, id := range participantIDs(10) {
		_, err := env.events.Join(ctx, event.GuildID, event.ID, id)
		require.NoError(t, err)
	}

	teams, err := env.teams.RandomizeTeams(ctx, event.GuildID, event.ID, 4)
	require.NoError(t, err)
	require.Len(t, teams, 3)

	stored, err := env.events.GetEvent(ctx, event.GuildID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, teams, stored.Teams)
	assert.Equal(t, 4, stored.AssignedTeamSize)

	stats, err := env.teams.Stats(ctx, event.GuildID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalTeams)
	assert.Equal(t, 10, stats.TotalParticipants)
	assert.Equal(t, 2, stats.MinTeamSize)
	assert.Equal(t, 4, stats.MaxTeamSize)

	require.NoError(t, env.teams.ClearTeams(ctx, event.GuildID, event.ID))
	stored, err = env.events.GetEvent(ctx, event.GuildID, event.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Teams)
}

func TestRandomizeTeamsRejectsSizeOutsideTypeSuggestions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	// Bingo only suggests teams of 2 or 3.
	event, err := env.events.CreateEvent(ctx, bingoParams())
	require.NoError(t, err)
	for _, id := range participantIDs(8) {
		_, err := env.events.Join(ctx, event.GuildID, event.ID, id)
		require.NoError(t, err)
	}

	_, err = env.teams.RandomizeTeams(ctx, event.GuildID, event.ID, 6)
	assert.ErrorIs(t, err, domain.ErrInvalidTeamSize)

	_, err = env.teams.RandomizeTeams(ctx, event.GuildID, event.ID, 2)
	assert.NoError(t, err)
}
