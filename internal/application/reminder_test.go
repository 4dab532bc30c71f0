package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reminderLead = 10 * time.Minute

func newReminderEnv() (*testEnv, *ReminderService, *fakeNotifier) {
	env := newTestEnv()
	notifier := newFakeNotifier()
	svc := NewReminderService(env.store, notifier, env.clock, reminderLead, testLogger())
	return env, svc, notifier
}

func waitForNotification(t *testing.T, notifier *fakeNotifier, eventID string, want int) {
	t.Helper()
	assert.Eventually(t, func() bool {
		return notifier.count(eventID) == want
	}, time.Second, 5*time.Millisecond)
}

func TestReminderFiresOnceAtOffset(t *testing.T) {
	ctx := context.Background()
	env, svc, notifier := newReminderEnv()

	event := env.createEvent(ctx, 0) // starts 15/02/2026 21:00 local (19:00 UTC)
	_, err := env.events.Join(ctx, event.GuildID, event.ID, "alice")
	require.NoError(t, err)
	stored, err := env.events.GetEvent(ctx, event.GuildID, event.ID)
	require.NoError(t, err)
	svc.Schedule(*stored)

	// Before the offset boundary nothing fires.
	svc.dispatchDue(ctx)
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, notifier.count(event.ID))

	// Cross the boundary.
	env.clock.Advance(stored.StartTime.Sub(testNow) - reminderLead + time.Second)
	svc.dispatchDue(ctx)
	waitForNotification(t, notifier, event.ID, 1)

	// A second tick over the same boundary must not deliver again.
	svc.Schedule(*stored)
	svc.dispatchDue(ctx)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, notifier.count(event.ID), "at-most-once delivery")

	reminded, err := env.events.GetEvent(ctx, event.GuildID, event.ID)
	require.NoError(t, err)
	assert.True(t, reminded.Reminded)
}

func TestReminderSkipsCancelledEvents(t *testing.T) {
	ctx := context.Background()
	env, svc, notifier := newReminderEnv()

	event := env.createEvent(ctx, 0)
	_, err := env.events.Join(ctx, event.GuildID, event.ID, "alice")
	require.NoError(t, err)
	stored, err := env.events.GetEvent(ctx, event.GuildID, event.ID)
	require.NoError(t, err)
	svc.Schedule(*stored)

	svc.Cancel(event.ID)
	env.clock.Advance(stored.StartTime.Sub(testNow))
	svc.dispatchDue(ctx)
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, notifier.count(event.ID))
}

func TestReminderClaimHonoursTerminalStatus(t *testing.T) {
	ctx := context.Background()
	env, svc, notifier := newReminderEnv()

	event := env.createEvent(ctx, 0)
	_, err := env.events.Join(ctx, event.GuildID, event.ID, "alice")
	require.NoError(t, err)
	stored, err := env.events.GetEvent(ctx, event.GuildID, event.ID)
	require.NoError(t, err)
	svc.Schedule(*stored)

	// Cancelled through the lifecycle but still queued in the scheduler:
	// the claim under the event lock must refuse to fire.
	_, err = env.events.Cancel(ctx, event.GuildID, event.ID, "creator")
	require.NoError(t, err)

	env.clock.Advance(stored.StartTime.Sub(testNow))
	svc.dispatchDue(ctx)
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, notifier.count(event.ID))
}

func TestReminderSkipsEventsWithoutParticipants(t *testing.T) {
	ctx := context.Background()
	env, svc, notifier := newReminderEnv()

	event := env.createEvent(ctx, 0)
	stored, err := env.events.GetEvent(ctx, event.GuildID, event.ID)
	require.NoError(t, err)
	svc.Schedule(*stored)

	env.clock.Advance(stored.StartTime.Sub(testNow))
	svc.dispatchDue(ctx)
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, notifier.count(event.ID))

	// The deadline is still consumed: the event counts as reminded.
	reminded, err := env.events.GetEvent(ctx, event.GuildID, event.ID)
	require.NoError(t, err)
	assert.True(t, reminded.Reminded)
}

func TestReminderDispatchesDeadlinesInOrder(t *testing.T) {
	ctx := context.Background()
	env, svc, notifier := newReminderEnv()

	// Bingo starts 18:00 local, the raid 21:00 local.
	early, err := env.events.CreateEvent(ctx, bingoParams())
	require.NoError(t, err)
	late := env.createEvent(ctx, 0)
	for _, e := range []struct{ guildID, id string }{{early.GuildID, early.ID}, {late.GuildID, late.ID}} {
		_, err := env.events.Join(ctx, e.guildID, e.id, "alice")
		require.NoError(t, err)
	}

	events, err := env.store.All(ctx)
	require.NoError(t, err)
	for _, e := range events {
		svc.Schedule(e)
	}

	// Only the earlier deadline has passed.
	env.clock.Advance(early.StartTime.Sub(testNow) - reminderLead + time.Second)
	svc.dispatchDue(ctx)
	waitForNotification(t, notifier, early.ID, 1)
	assert.Zero(t, notifier.count(late.ID))

	env.clock.Advance(late.StartTime.Sub(early.StartTime))
	svc.dispatchDue(ctx)
	waitForNotification(t, notifier, late.ID, 1)
}
