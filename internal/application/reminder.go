package application

import (
	"container/heap"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"clanbot/internal/domain/entities"
	"clanbot/internal/ports/output"
)

var _ output.ReminderScheduler = (*ReminderService)(nil)

// errAlreadyClaimed marks a reminder lost to an earlier claim or a state
// change; never surfaced to users.
var errAlreadyClaimed = errors.New("reminder already claimed")

// ReminderService fires one notification per event at startTime − lead.
// Deadlines live in a min-heap; a single loop sleeps until the earliest one,
// then hands delivery to a per-event cancellable goroutine so a slow sink
// never delays the others. At-most-once delivery is guaranteed by flipping
// the event's Reminded flag under the store's per-event lock before sending.
type ReminderService struct {
	store  output.EventStore
	notify output.Notifier
	clock  output.Clock
	lead   time.Duration
	log    *logrus.Logger

	mu       sync.Mutex
	queue    deadlineQueue
	entries  map[string]*reminderEntry
	inflight map[string]context.CancelFunc
	wake     chan struct{}
}

type reminderEntry struct {
	eventID string
	guildID string
	at      time.Time
	index   int // heap position, -1 when removed
}

func NewReminderService(store output.EventStore, notify output.Notifier, clock output.Clock, lead time.Duration, log *logrus.Logger) *ReminderService {
	return &ReminderService{
		store:    store,
		notify:   notify,
		clock:    clock,
		lead:     lead,
		log:      log,
		entries:  make(map[string]*reminderEntry),
		inflight: make(map[string]context.CancelFunc),
		wake:     make(chan struct{}, 1),
	}
}

// Schedule registers (or re-registers) the event's reminder deadline.
func (s *ReminderService) Schedule(event entities.Event) {
	if event.StartTime.IsZero() || event.Reminded || event.Status.IsTerminal() {
		return
	}
	s.mu.Lock()
	if e, ok := s.entries[event.ID]; ok {
		e.at = event.StartTime.Add(-s.lead)
		heap.Fix(&s.queue, e.index)
	} else {
		e := &reminderEntry{eventID: event.ID, guildID: event.GuildID, at: event.StartTime.Add(-s.lead)}
		s.entries[event.ID] = e
		heap.Push(&s.queue, e)
	}
	s.mu.Unlock()
	s.kick()
}

// Cancel drops the pending deadline and aborts an in-flight notification.
func (s *ReminderService) Cancel(eventID string) {
	s.mu.Lock()
	if e, ok := s.entries[eventID]; ok {
		delete(s.entries, eventID)
		if e.index >= 0 {
			heap.Remove(&s.queue, e.index)
		}
	}
	cancel := s.inflight[eventID]
	delete(s.inflight, eventID)
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	s.kick()
}

// Run drives the scheduler until ctx is done. It first re-registers every
// live event from the store, then sleeps until the next deadline.
func (s *ReminderService) Run(ctx context.Context) {
	events, err := s.store.All(ctx)
	if err != nil {
		s.log.WithError(err).Error("rappels: lecture initiale du store")
	}
	for _, e := range events {
		s.Schedule(e)
	}

	for {
		s.dispatchDue(ctx)

		s.mu.Lock()
		var timer *time.Timer
		if len(s.queue) > 0 {
			timer = time.NewTimer(s.queue[0].at.Sub(s.clock.Now()))
		}
		s.mu.Unlock()

		if timer == nil {
			select {
			case <-ctx.Done():
				return
			case <-s.wake:
			}
			continue
		}
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-s.wake:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// dispatchDue claims and fires every deadline that has passed.
func (s *ReminderService) dispatchDue(ctx context.Context) {
	now := s.clock.Now()
	for {
		s.mu.Lock()
		if len(s.queue) == 0 || s.queue[0].at.After(now) {
			s.mu.Unlock()
			return
		}
		e := heap.Pop(&s.queue).(*reminderEntry)
		delete(s.entries, e.eventID)
		s.mu.Unlock()

		s.fire(ctx, e.guildID, e.eventID)
	}
}

func (s *ReminderService) fire(ctx context.Context, guildID, eventID string) {
	var snapshot entities.Event
	err := s.store.Mutate(ctx, guildID, eventID, func(e *entities.Event) error {
		if e.Reminded || e.Status.IsTerminal() || e.StartTime.IsZero() {
			return errAlreadyClaimed
		}
		e.Reminded = true
		snapshot = *e
		snapshot.Participants = append([]string(nil), e.Participants...)
		return nil
	})
	if err != nil {
		if !errors.Is(err, errAlreadyClaimed) {
			s.log.WithError(err).WithField("event_id", eventID).Error("rappels: réclamation")
		}
		return
	}
	if len(snapshot.Participants) == 0 {
		return
	}

	nctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.inflight[eventID] = cancel
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.inflight, eventID)
			s.mu.Unlock()
			cancel()
		}()
		if err := s.notify.NotifyEventStarting(nctx, snapshot); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"event_id": eventID,
				"guild_id": guildID,
			}).Error("rappels: envoi de la notification")
			return
		}
		s.log.WithFields(logrus.Fields{
			"event_id":     eventID,
			"guild_id":     guildID,
			"participants": len(snapshot.Participants),
		}).Info("rappel envoyé")
	}()
}

func (s *ReminderService) kick() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// deadlineQueue is a min-heap of reminder entries ordered by deadline.
type deadlineQueue []*reminderEntry

func (q deadlineQueue) Len() int           { return len(q) }
func (q deadlineQueue) Less(i, j int) bool { return q[i].at.Before(q[j].at) }
func (q deadlineQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i]; q[i].index = i; q[j].index = j }

func (q *deadlineQueue) Push(x any) { e := x.(*reminderEntry); e.index = len(*q); *q = append(*q, e) }
func (q *deadlineQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}
