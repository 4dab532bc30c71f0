package tz

import (
	"fmt"
	"time"

	"clanbot/internal/domain"
)

const (
	dateLayout = "02/01/2006"
	timeLayout = "15:04"
)

// Converter normalizes user-entered local date/times to UTC instants and
// formats stored instants back into the local timezone for display.
type Converter struct {
	loc *time.Location
}

// NewConverter builds a Converter for an IANA location name
// (e.g. "Europe/Paris", CET/CEST with automatic DST).
func NewConverter(location string) (*Converter, error) {
	loc, err := time.LoadLocation(location)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", location, err)
	}
	return &Converter{loc: loc}, nil
}

// NewFixed builds a Converter for a fixed UTC offset, for deployments
// without timezone data.
func NewFixed(name string, offsetHours int) *Converter {
	return &Converter{loc: time.FixedZone(name, offsetHours*3600)}
}

// ParseLocal parses date (JJ/MM/AAAA) and time (HH:MM) in the converter's
// timezone and returns the instant in UTC.
func (c *Converter) ParseLocal(dateStr, timeStr string) (time.Time, error) {
	if dateStr == "" || timeStr == "" {
		return time.Time{}, domain.ErrInvalidDateFormat
	}
	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", domain.ErrInvalidDateFormat, dateStr)
	}
	t, err := time.Parse(timeLayout, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: heure %q", domain.ErrInvalidDateFormat, timeStr)
	}
	local := time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, c.loc)
	return local.UTC(), nil
}

// Format renders a stored instant in the local timezone, French style.
func (c *Converter) Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(c.loc).Format("02/01/2006 à 15:04")
}

// Location exposes the underlying location.
func (c *Converter) Location() *time.Location {
	return c.loc
}
