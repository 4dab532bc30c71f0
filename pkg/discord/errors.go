package discord

import (
	"errors"

	"clanbot/internal/domain"
)

// ErrorKey maps an error to the i18n message key shown to the user.
// Non-domain errors (including invariant violations) all collapse to the
// generic internal message; their details only go to the logs.
func ErrorKey(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, domain.ErrInvariantViolation) {
		return "error.internal"
	}
	if code := domain.Code(err); code != "" {
		return "error." + code
	}
	return "error.internal"
}
