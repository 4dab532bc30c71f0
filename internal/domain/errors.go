package domain

import "errors"

// Domain errors. All are user-recoverable except ErrInvariantViolation,
// which signals a bug and must never be rendered as a user message.
var (
	ErrEventNotFound            = errors.New("événement non trouvé")
	ErrForbidden                = errors.New("seul l'organisateur ou un administrateur peut effectuer cette action")
	ErrEventFull                = errors.New("l'événement est complet")
	ErrEventNotOpen             = errors.New("l'événement n'accepte plus d'inscriptions")
	ErrInvalidTransition        = errors.New("transition de statut invalide")
	ErrInvalidTeamSize          = errors.New("la taille d'équipe doit être 1, 2, 3, 4 ou 6 joueurs")
	ErrInsufficientParticipants = errors.New("aucun participant pour former des équipes")
	ErrCheckinInactive          = errors.New("le pointage n'est pas actif")
	ErrCheckinAlreadyActive     = errors.New("le pointage est déjà actif")
	ErrNotAParticipant          = errors.New("participant non inscrit à l'événement")
	ErrInvalidDateFormat        = errors.New("format de date/heure invalide (attendu JJ/MM/AAAA et HH:MM)")
	ErrDateTimeInPast           = errors.New("la date et l'heure doivent être dans le futur")

	// ErrInvariantViolation wraps internal consistency failures (e.g. a
	// participant count above capacity). It indicates a programming error.
	ErrInvariantViolation = errors.New("invariant violated")
)

// Code returns a stable identifier for a domain error, used as the i18n
// message key suffix by the presentation layer. Empty for non-domain errors.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return "event_not_found"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrEventFull):
		return "event_full"
	case errors.Is(err, ErrEventNotOpen):
		return "event_not_open"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrInvalidTeamSize):
		return "invalid_team_size"
	case errors.Is(err, ErrInsufficientParticipants):
		return "insufficient_participants"
	case errors.Is(err, ErrCheckinInactive):
		return "checkin_inactive"
	case errors.Is(err, ErrCheckinAlreadyActive):
		return "checkin_already_active"
	case errors.Is(err, ErrNotAParticipant):
		return "not_a_participant"
	case errors.Is(err, ErrInvalidDateFormat):
		return "invalid_date_format"
	case errors.Is(err, ErrDateTimeInPast):
		return "datetime_in_past"
	default:
		return ""
	}
}
