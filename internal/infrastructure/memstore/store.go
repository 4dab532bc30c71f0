package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"clanbot/internal/domain"
	"clanbot/internal/domain/entities"
	"clanbot/internal/ports/output"
)

var _ output.EventStore = (*Store)(nil)

// Store is the in-memory, guild-partitioned event store. Volatile by design:
// nothing survives a restart. Each event carries its own lock so mutations
// on one event never block operations on another.
type Store struct {
	mu     sync.RWMutex
	guilds map[string]*guildEvents
}

type guildEvents struct {
	order  []string // IDs in creation order
	events map[string]*entry
}

type entry struct {
	mu    sync.Mutex
	event *entities.Event
}

func New() *Store {
	return &Store{guilds: make(map[string]*guildEvents)}
}

// Create assigns a short unique ID (uuid prefix, convenient to type in a
// command) and stores the event.
func (s *Store) Create(_ context.Context, event *entities.Event) (string, error) {
	if event.GuildID == "" || event.CreatorID == "" || event.Name == "" {
		return "", fmt.Errorf("memstore: missing required event fields (guild=%q creator=%q name=%q)",
			event.GuildID, event.CreatorID, event.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guilds[event.GuildID]
	if !ok {
		g = &guildEvents{events: make(map[string]*entry)}
		s.guilds[event.GuildID] = g
	}

	id := uuid.NewString()[:8]
	for _, taken := g.events[id]; taken; _, taken = g.events[id] {
		id = uuid.NewString()[:8]
	}
	event.ID = id

	stored := clone(event)
	g.events[id] = &entry{event: &stored}
	g.order = append(g.order, id)
	return id, nil
}

func (s *Store) Get(_ context.Context, guildID, id string) (*entities.Event, error) {
	e, err := s.lookup(guildID, id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	c := clone(e.event)
	return &c, nil
}

func (s *Store) List(_ context.Context, guildID string) ([]entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.guilds[guildID]
	if !ok {
		return nil, nil
	}
	out := make([]entities.Event, 0, len(g.order))
	for _, id := range g.order {
		e := g.events[id]
		e.mu.Lock()
		out = append(out, clone(e.event))
		e.mu.Unlock()
	}
	return out, nil
}

func (s *Store) All(_ context.Context) ([]entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entities.Event
	for _, g := range s.guilds {
		for _, id := range g.order {
			e := g.events[id]
			e.mu.Lock()
			out = append(out, clone(e.event))
			e.mu.Unlock()
		}
	}
	return out, nil
}

// Mutate runs fn on the live event under its per-event lock, so a suspended
// operation can never interleave with another mutation of the same event.
func (s *Store) Mutate(_ context.Context, guildID, id string, fn func(*entities.Event) error) error {
	e, err := s.lookup(guildID, id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.event)
}

func (s *Store) Remove(_ context.Context, guildID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guilds[guildID]
	if !ok {
		return domain.ErrEventNotFound
	}
	if _, ok := g.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(g.events, id)
	for i, oid := range g.order {
		if oid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) Clear(_ context.Context, guildID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guilds[guildID]
	if !ok {
		return nil, nil
	}
	ids := g.order
	delete(s.guilds, guildID)
	return ids, nil
}

func (s *Store) lookup(guildID, id string) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.guilds[guildID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	e, ok := g.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return e, nil
}

// clone deep-copies an event so callers never share slices with the store.
func clone(e *entities.Event) entities.Event {
	c := *e
	c.Participants = append([]string(nil), e.Participants...)
	c.Checkin.CheckedIn = append([]string(nil), e.Checkin.CheckedIn...)
	if e.Teams != nil {
		c.Teams = make([]entities.Team, len(e.Teams))
		for i, team := range e.Teams {
			c.Teams[i] = append(entities.Team(nil), team...)
		}
	}
	return c
}
