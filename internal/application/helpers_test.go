package application

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"clanbot/internal/domain/entities"
	"clanbot/internal/infrastructure/memstore"
	"clanbot/internal/ports/input"
	"clanbot/pkg/tz"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// fakeClock is a settable output.Clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// fakePerms grants admin rights to a fixed set of users.
type fakePerms struct {
	admins map[string]bool
}

func (p *fakePerms) IsAdmin(_ context.Context, _, userID string) (bool, error) {
	return p.admins[userID], nil
}

// fakeReminders records scheduler calls.
type fakeReminders struct {
	mu        sync.Mutex
	scheduled []string
	cancelled []string
}

func (r *fakeReminders) Schedule(event entities.Event) {
	r.mu.Lock()
	r.scheduled = append(r.scheduled, event.ID)
	r.mu.Unlock()
}

func (r *fakeReminders) Cancel(eventID string) {
	r.mu.Lock()
	r.cancelled = append(r.cancelled, eventID)
	r.mu.Unlock()
}

// fakeNotifier counts reminder deliveries per event.
type fakeNotifier struct {
	mu    sync.Mutex
	calls map[string]int
	err   error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{calls: make(map[string]int)}
}

func (n *fakeNotifier) NotifyEventStarting(_ context.Context, event entities.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls[event.ID]++
	return n.err
}

func (n *fakeNotifier) count(eventID string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls[eventID]
}

// testEnv bundles a full service stack over a fresh in-memory store.
type testEnv struct {
	store     *memstore.Store
	clock     *fakeClock
	perms     *fakePerms
	reminders *fakeReminders
	events    *EventService
	checkin   *CheckinService
	teams     *TeamService
}

var testNow = time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)

func newTestEnv() *testEnv {
	store := memstore.New()
	clk := newFakeClock(testNow)
	perms := &fakePerms{admins: map[string]bool{"admin": true}}
	reminders := &fakeReminders{}
	converter := tz.NewFixed("UTC+2", 2)
	log := testLogger()
	return &testEnv{
		store:     store,
		clock:     clk,
		perms:     perms,
		reminders: reminders,
		events:    NewEventService(store, perms, reminders, converter, clk, log),
		checkin:   NewCheckinService(store, perms, clk, log),
		teams:     NewTeamService(store, rand.New(rand.NewPCG(1, 2)), log),
	}
}

func bingoParams() input.CreateEventParams {
	return input.CreateEventParams{
		GuildID:   "guild-1",
		CreatorID: "creator",
		Type:      "Bingo",
		Name:      "Bingo du clan",
		Date:      "15/02/2026",
		Time:      "18:00",
	}
}

func (env *testEnv) createEvent(ctx context.Context, maxParticipants int) *entities.Event {
	event, err := env.events.CreateEvent(ctx, input.CreateEventParams{
		GuildID:         "guild-1",
		CreatorID:       "creator",
		Type:            "Événement général",
		Name:            "Raid du vendredi",
		Date:            "15/02/2026",
		Time:            "21:00",
		MaxParticipants: maxParticipants,
	})
	if err != nil {
		panic(err)
	}
	return event
}
