package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"clanbot/internal/domain"
	"clanbot/internal/domain/entities"
	"clanbot/internal/ports/input"
	"clanbot/internal/ports/output"
)

var _ input.CheckinUseCase = (*CheckinService)(nil)

// CheckinService manages the attendance window attached to an event.
type CheckinService struct {
	store output.EventStore
	perms output.PermissionChecker
	clock output.Clock
	log   *logrus.Logger
}

func NewCheckinService(store output.EventStore, perms output.PermissionChecker, clock output.Clock, log *logrus.Logger) *CheckinService {
	return &CheckinService{store: store, perms: perms, clock: clock, log: log}
}

// Activate opens the check-in window. duration > 0 sets a closing deadline
// after which check-ins are refused even while the flag stays on.
func (s *CheckinService) Activate(ctx context.Context, guildID, eventID, actorID string, duration time.Duration) error {
	if err := s.requireManager(ctx, guildID, eventID, actorID); err != nil {
		return err
	}
	err := s.store.Mutate(ctx, guildID, eventID, func(e *entities.Event) error {
		if e.Status.IsTerminal() {
			return domain.ErrEventNotOpen
		}
		if e.Checkin.Active {
			return domain.ErrCheckinAlreadyActive
		}
		now := s.clock.Now()
		e.Checkin.Active = true
		e.Checkin.OpenedAt = now
		e.Checkin.ClosedAt = time.Time{}
		if duration > 0 {
			e.Checkin.ClosedAt = now.Add(duration)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"event_id": eventID, "guild_id": guildID}).Info("pointage activé")
	return nil
}

func (s *CheckinService) Deactivate(ctx context.Context, guildID, eventID, actorID string) error {
	if err := s.requireManager(ctx, guildID, eventID, actorID); err != nil {
		return err
	}
	return s.store.Mutate(ctx, guildID, eventID, func(e *entities.Event) error {
		e.Checkin.Active = false
		e.Checkin.ClosedAt = s.clock.Now()
		return nil
	})
}

// CheckIn records attendance for a current participant while the window is
// active. Checking in twice is a successful no-op.
func (s *CheckinService) CheckIn(ctx context.Context, guildID, eventID, userID string) error {
	return s.store.Mutate(ctx, guildID, eventID, func(e *entities.Event) error {
		if !s.windowOpen(&e.Checkin) {
			return domain.ErrCheckinInactive
		}
		if !e.IsParticipant(userID) {
			return domain.ErrNotAParticipant
		}
		if e.Checkin.IsCheckedIn(userID) {
			return nil
		}
		e.Checkin.CheckedIn = append(e.Checkin.CheckedIn, userID)
		return checkEventInvariants(e)
	})
}

// Report derives attendance statistics from the current check-in state.
func (s *CheckinService) Report(ctx context.Context, guildID, eventID string) (input.AttendanceReport, error) {
	event, err := s.store.Get(ctx, guildID, eventID)
	if err != nil {
		return input.AttendanceReport{}, err
	}
	report := input.AttendanceReport{
		Present: append([]string(nil), event.Checkin.CheckedIn...),
	}
	for _, id := range event.Participants {
		if !event.Checkin.IsCheckedIn(id) {
			report.Absent = append(report.Absent, id)
		}
	}
	if len(event.Participants) > 0 {
		report.Rate = float64(len(report.Present)) / float64(len(event.Participants))
	}
	return report, nil
}

func (s *CheckinService) windowOpen(w *entities.CheckinWindow) bool {
	if !w.Active {
		return false
	}
	if !w.ClosedAt.IsZero() && s.clock.Now().After(w.ClosedAt) {
		return false
	}
	return true
}

func (s *CheckinService) requireManager(ctx context.Context, guildID, eventID, actorID string) error {
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
