package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeCoversEveryDomainError(t *testing.T) {
	cases := map[error]string{
		ErrEventNotFound:            "event_not_found",
		ErrForbidden:                "forbidden",
		ErrEventFull:                "event_full",
		ErrEventNotOpen:             "event_not_open",
		ErrInvalidTransition:        "invalid_transition",
		ErrInvalidTeamSize:          "invalid_team_size",
		ErrInsufficientParticipants: "insufficient_participants",
		ErrCheckinInactive:          "checkin_inactive",
		ErrCheckinAlreadyActive:     "checkin_already_active",
		ErrNotAParticipant:          "not_a_participant",
		ErrInvalidDateFormat:        "invalid_date_format",
		ErrDateTimeInPast:           "datetime_in_past",
	}
	for err, code := range cases {
		assert.Equal(t, code, Code(err))
		// Wrapped errors resolve to the same code.
		assert.Equal(t, code, Code(fmt.Errorf("contexte: %w", err)))
	}

	assert.Empty(t, Code(errors.New("autre chose")))
	assert.Empty(t, Code(ErrInvariantViolation))
	assert.Empty(t, Code(nil))
}

func TestStatusTerminality(t *testing.T) {
	assert.False(t, StatusOpen.IsTerminal())
	assert.False(t, StatusFull.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestTeamSizeValidity(t *testing.T) {
	for _, size := range ValidTeamSizes {
		assert.True(t, IsValidTeamSize(size), "size %d", size)
	}
	for _, size := range []int{0, -1, 5, 7, 12} {
		assert.False(t, IsValidTeamSize(size), "size %d", size)
	}
}

func TestInfoForUnknownTypeFallsBackToGeneral(t *testing.T) {
	custom := InfoFor(EventType("Soirée cinéma"))
	assert.Equal(t, InfoFor(TypeGeneral), custom)

	bingo := InfoFor(TypeBingo)
	assert.Equal(t, []int{2, 3}, bingo.SuggestedTeamSizes)
}
