package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"clanbot/internal/domain"
	"clanbot/internal/domain/entities"
	"clanbot/internal/ports/input"
	"clanbot/internal/ports/output"
	"clanbot/pkg/tz"
)

var _ input.EventUseCase = (*EventService)(nil)

// EventService is the event lifecycle controller: it validates transitions,
// enforces permissions and owns every mutation of an event.
type EventService struct {
	store     output.EventStore
	perms     output.PermissionChecker
	reminders output.ReminderScheduler
	converter *tz.Converter
	clock     output.Clock
	log       *logrus.Logger
}

func NewEventService(
	store output.EventStore,
	perms output.PermissionChecker,
	reminders output.ReminderScheduler,
	converter *tz.Converter,
	clock output.Clock,
	log *logrus.Logger,
) *EventService {
	return &EventService{
		store:     store,
		perms:     perms,
		reminders: reminders,
		converter: converter,
		clock:     clock,
		log:       log,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, p input.CreateEventParams) (*entities.Event, error) {
	info := domain.InfoFor(p.Type)

	if p.TeamSize != 0 {
		if err := validateTeamSizeForType(p.TeamSize, info); err != nil {
			return nil, err
		}
	}

	startTime, err := s.converter.ParseLocal(p.Date, p.Time)
	if err != nil {
		return nil, err
	}
	if startTime.Before(s.clock.Now()) {
		return nil, domain.ErrDateTimeInPast
	}

	description := p.Description
	if description == "" {
		description = fmt.Sprintf("%s — %s", info.DefaultDescription, s.converter.Format(startTime))
	}
	maxParticipants := p.MaxParticipants
	if maxParticipants <= 0 {
		maxParticipants = info.MaxParticipants
	}

	event := &entities.Event{
		GuildID:         p.GuildID,
		Type:            p.Type,
		Name:            p.Name,
		Description:     description,
		CreatorID:       p.CreatorID,
		MaxParticipants: maxParticipants,
		TeamSize:        p.TeamSize,
		StartTime:       startTime,
		Status:          domain.StatusOpen,
		CreatedAt:       s.clock.Now(),
	}

	if _, err := s.store.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.reminders.Schedule(*event)

	s.log.WithFields(logrus.Fields{
		"event_id": event.ID,
		"guild_id": event.GuildID,
		"type":     event.Type,
	}).Info("événement créé")
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, guildID, eventID string) (*entities.Event, error) {
	return s.store.Get(ctx, guildID, eventID)
}

func (s *EventService) ListEvents(ctx context.Context, guildID string) ([]entities.Event, error) {
	return s.store.List(ctx, guildID)
}

func (s *EventService) ListEventsByStatus(ctx context.Context, guildID string, status domain.EventStatus) ([]entities.Event, error) {
	events, err := s.store.List(ctx, guildID)
	if err != nil {
		return nil, err
	}
	out := events[:0:0]
	for _, e := range events {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *EventService) ListEventsByType(ctx context.Context, guildID string, eventType domain.EventType) ([]entities.Event, error) {
	events, err := s.store.List(ctx, guildID)
	if err != nil {
		return nil, err
	}
	out := events[:0:0]
	for _, e := range events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out, nil
}

// Join is idempotent: joining an event twice is a successful no-op.
func (s *EventService) Join(ctx context.Context, guildID, eventID, userID string) (*entities.Event, error) {
	err := s.store.Mutate(ctx, guildID, eventID, func(e *entities.Event) error {
		if e.IsParticipant(userID) {
			return nil
		}
		switch e.Status {
		case domain.StatusOpen:
		case domain.StatusFull:
			return domain.ErrEventFull
		default:
			return domain.ErrEventNotOpen
		}
		if e.IsFull() {
			return domain.ErrEventFull
		}
		e.Participants = append(e.Participants, userID)
		if e.IsFull() {
			e.Status = domain.StatusFull
		}
		return s.checkInvariants(e)
	})
	if err != nil {
		return nil, err
	}
	return s.store.Get(ctx, guildID, eventID)
}

// Leave removes the user from participants and, so the checked-in set stays
// a subset of participants, from the check-in list and any assigned team.
// Leaving an event one never joined is a successful no-op.
func (s *EventService) Leave(ctx context.Context, guildID, eventID, userID string) (*entities.Event, error) {
	err := s.store.Mutate(ctx, guildID, eventID, func(e *entities.Event) error {
		if e.Status.IsTerminal() {
			return domain.ErrEventNotOpen
		}
		if !e.IsParticipant(userID) {
			return nil
		}
		e.Participants = removeID(e.Participants, userID)
		e.Checkin.CheckedIn = removeID(e.Checkin.CheckedIn, userID)
		for i, team := range e.Teams {
			e.Teams[i] = entities.Team(removeID(team, userID))
		}
		if e.Status == domain.StatusFull && !e.IsFull() {
			e.Status = domain.StatusOpen
		}
		return s.checkInvariants(e)
	})
	if err != nil {
		return nil, err
	}
	return s.store.Get(ctx, guildID, eventID)
}

// Start moves an Open or Full event to InProgress. Creator or admin only.
func (s *EventService) Start(ctx context.Context, guildID, eventID, actorID string) (*entities.Event, error) {
	return s.transition(ctx, guildID, eventID, actorID, domain.StatusInProgress,
		domain.StatusOpen, domain.StatusFull)
}

// Complete moves an InProgress event to Completed. Creator or admin only.
func (s *EventService) Complete(ctx context.Context, guildID, eventID, actorID string) (*entities.Event, error) {
	return s.transition(ctx, guildID, eventID, actorID, domain.StatusCompleted,
		domain.StatusInProgress)
}

// Cancel moves any non-terminal event to Cancelled and drops its pending
// reminder. Creator or admin only.
func (s *EventService) Cancel(ctx context.Context, guildID, eventID, actorID string) (*entities.Event, error) {
	event, err := s.transition(ctx, guildID, eventID, actorID, domain.StatusCancelled,
		domain.StatusOpen, domain.StatusFull, domain.StatusInProgress)
	if err != nil {
		return nil, err
	}
	s.reminders.Cancel(eventID)
	return event, nil
}

func (s *EventService) transition(ctx context.Context, guildID, eventID, actorID string, to domain.EventStatus, from ...domain.EventStatus) (*entities.Event, error) {
	if err := s.requireManager(ctx, guildID, eventID, actorID); err != nil {
		return nil, err
	}
	err := s.store.Mutate(ctx, guildID, eventID, func(e *entities.Event) error {
		allowed := false
		for _, f := range from {
			if e.Status == f {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, e.Status, to)
		}
		e.Status = to
		return s.checkInvariants(e)
	})
	if err != nil {
		return nil, err
	}
	event, err := s.store.Get(ctx, guildID, eventID)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"event_id": eventID,
		"guild_id": guildID,
		"status":   to,
	}).Info("statut de l'événement mis à jour")
	return event, nil
}

// DeleteEvent removes an event entirely. Creator or admin only.
func (s *EventService) DeleteEvent(ctx context.Context, guildID, eventID, actorID string) error {
	if err := s.requireManager(ctx, guildID, eventID, actorID); err != nil {
		return err
	}
	if err := s.store.Remove(ctx, guildID, eventID); err != nil {
		return err
	}
	s.reminders.Cancel(eventID)
	return nil
}

// ClearEvents wipes every event of the guild. Open to any caller by
// product decision. Returns the number of removed events.
func (s *EventService) ClearEvents(ctx context.Context, guildID string) (int, error) {
	ids, err := s.store.Clear(ctx, guildID)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		s.reminders.Cancel(id)
	}
	return len(ids), nil
}

// LinkMessage records the Discord message carrying the event embed.
func (s *EventService) LinkMessage(ctx context.Context, guildID, eventID, channelID, messageID string) error {
	return s.store.Mutate(ctx, guildID, eventID, func(e *entities.Event) error {
		e.ChannelID = channelID
		e.MessageID = messageID
		return nil
	})
}

func (s *EventService) FindByMessageID(ctx context.Context, guildID, messageID string) (*entities.Event, error) {
	events, err := s.store.List(ctx, guildID)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].MessageID == messageID {
			return &events[i], nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (s *EventService) Stats(ctx context.Context, guildID string) (input.GuildStats, error) {
	events, err := s.store.List(ctx, guildID)
	if err != nil {
		return input.GuildStats{}, err
	}
	stats := input.GuildStats{
		TotalEvents: len(events),
		ByType:      make(map[domain.EventType]int),
		ByStatus:    make(map[domain.EventStatus]int),
	}
	for _, e := range events {
		stats.ByType[e.Type]++
		stats.ByStatus[e.Status]++
		stats.TotalParticipants += len(e.Participants)
	}
	return stats, nil
}

// requireManager checks creator or admin rights for management operations.
func (s *EventService) requireManager(ctx context.Context, guildID, eventID, actorID string) error {
	event, err := s.store.Get(ctx, guildID, eventID)
	if err != nil {
		return err
	}
	if event.CreatorID == actorID {
		return nil
	}
	admin, err := s.perms.IsAdmin(ctx, guildID, actorID)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if !admin {
		return domain.ErrForbidden
	}
	return nil
}

// checkInvariants re-validates the event after a mutation. A violation is a
// bug in the lifecycle logic, not user input, so it maps to the fatal class.
func (s *EventService) checkInvariants(e *entities.Event) error {
	if err := checkEventInvariants(e); err != nil {
		s.log.WithFields(logrus.Fields{
			"event_id": e.ID,
			"guild_id": e.GuildID,
		}).Error(err)
		return err
	}
	return nil
}

func checkEventInvariants(e *entities.Event) error {
	if e.MaxParticipants > 0 && len(e.Participants) > e.MaxParticipants {
		return fmt.Errorf("%w: %d participants au-delà de la capacité %d",
			domain.ErrInvariantViolation, len(e.Participants), e.MaxParticipants)
	}
	if e.TeamSize != 0 && (e.TeamSize < 1 || e.TeamSize > 6) {
		return fmt.Errorf("%w: taille d'équipe %d hors de [1,6]", domain.ErrInvariantViolation, e.TeamSize)
	}
	if e.Status == domain.StatusFull && !e.IsFull() {
		return fmt.Errorf("%w: statut complet avec %d/%d participants",
			domain.ErrInvariantViolation, len(e.Participants), e.MaxParticipants)
	}
	for _, id := range e.Checkin.CheckedIn {
		if !e.IsParticipant(id) {
			return fmt.Errorf("%w: pointage d'un non-participant %s", domain.ErrInvariantViolation, id)
		}
	}
	return nil
}

func validateTeamSizeForType(size int, info domain.TypeInfo) error {
	if !domain.IsValidTeamSize(size) {
		return domain.ErrInvalidTeamSize
	}
	for _, s := range info.SuggestedTeamSizes {
		if s == size {
			return nil
		}
	}
	if size == 1 {
		// Solo is always allowed regardless of the activity's suggested sizes.
		return nil
	}
	return domain.ErrInvalidTeamSize
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
