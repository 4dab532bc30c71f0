package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clanbot/internal/domain"
)

func TestCheckInRequiresActiveWindow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	event := env.createEvent(ctx, 0)
	_, err := env.events.Join(ctx, event.GuildID, event.ID, "alice")
	require.NoError(t, err)

	err = env.checkin.CheckIn(ctx, event.GuildID, event.ID, "alice")
	assert.ErrorIs(t, err, domain.ErrCheckinInactive)
}

func TestActivateIsGuardedAndNotRepeatable(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	event := env.createEvent(ctx, 0)

	err := env.checkin.Activate(ctx, event.GuildID, event.ID, "random-user", 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, env.checkin.Activate(ctx, event.GuildID, event.ID, "creator", 0))
	err = env.checkin.Activate(ctx, event.GuildID, event.ID, "creator", 0)
	assert.ErrorIs(t, err, domain.ErrCheckinAlreadyActive)

	stored, err := env.events.GetEvent(ctx, event.GuildID, event.ID)
	require.NoError(t, err)
	assert.True(t, stored.Checkin.Active)
	assert.Equal(t, testNow, stored.Checkin.OpenedAt)
}

func TestCheckInRejectsNonParticipants(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	event := env.createEvent(ctx, 0)
	_, err := env.events.Join(ctx, event.GuildID, event.ID, "alice")
	require.NoError(t, err)
	require.NoError(t, env.checkin.Activate(ctx, event.GuildID, event.ID, "creator", 0))

	err = env.checkin.CheckIn(ctx, event.GuildID, event.ID, "stranger")
	assert.ErrorIs(t, err, domain.ErrNotAParticipant)
}

func TestCheckInIsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	event := env.createEvent(ctx, 0)
	_, err := env.events.Join(ctx, event.GuildID, event.ID, "alice")
	require.NoError(t, err)
	require.NoError(t, env.checkin.Activate(ctx, event.GuildID, event.ID, "creator", 0))

	require.NoError(t, env.checkin.CheckIn(ctx, event.GuildID, event.ID, "alice"))
	require.NoError(t, env.checkin.CheckIn(ctx, event.GuildID, event.ID, "alice"))

	stored, err := env.events.GetEvent(ctx, event.GuildID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, stored.Checkin.CheckedIn)
}

func TestCheckInDeadlineExpiry(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	event := env.createEvent(ctx, 0)
	_, err := env.events.Join(ctx, event.GuildID, event.ID, "alice")
	require.NoError(t, err)
	require.NoError(t, env.checkin.Activate(ctx, event.GuildID, event.ID, "creator", 30*time.Minute))

	env.clock.Advance(31 * time.Minute)
	err = env.checkin.CheckIn(ctx, event.GuildID, event.ID, "alice")
	assert.ErrorIs(t, err, domain.ErrCheckinInactive)
}

func TestAttendanceReport(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	event := env.createEvent(ctx, 0)
	participants := []string{"alice", "bob", "carol", "dave", "erin"}
	for _, id := range participants {
		_, err := env.events.Join(ctx, event.GuildID, event.ID, id)
		require.NoError(t, err)
	}
	require.NoError(t, env.checkin.Activate(ctx, event.GuildID, event.ID, "creator", 0))
	for _, id := range participants[:3] {
		require.NoError(t, env.checkin.CheckIn(ctx, event.GuildID, event.ID, id))
	}
	require.NoError(t, env.checkin.Deactivate(ctx, event.GuildID, event.ID, "creator"))

	report, err := env.checkin.Report(ctx, event.GuildID, event.ID)
	require.NoError(t, err)
	assert.Len(t, report.Present, 3)
	assert.Len(t, report.Absent, 2)
	assert.InDelta(t, 0.6, report.Rate, 1e-9)
	assert.ElementsMatch(t, []string{"alice", "bob", "carol"}, report.Present)
	assert.ElementsMatch(t, []string{"dave", "erin"}, report.Absent)
}

func TestAttendanceReportEmptyEvent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	event := env.createEvent(ctx, 0)

	report, err := env.checkin.Report(ctx, event.GuildID, event.ID)
	require.NoError(t, err)
	assert.Zero(t, report.Rate)
	assert.Empty(t, report.Present)
	assert.Empty(t, report.Absent)
}
