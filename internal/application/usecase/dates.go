package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/finanzas-api/internal/domain"
)

const dateLayout = "2006-01-02"

// parseDate acepta YYYY-MM-DD o RFC3339. Vacío devuelve def.
func parseDate(s string, def time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: fecha %q (use YYYY-MM-DD)", domain.ErrInvalidInput, s)
}

// endOfDay último instante del día de t.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// MonthRange primer y último instante del mes de t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// ParseRange interpreta from/to de una consulta. Sin valores usa el mes en curso.
func ParseRange(from, to string, now time.Time) (time.Time, time.Time, error) {
	defFrom, defTo := MonthRange(now)
	f, err := parseDate(from, defFrom)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	t, err := parseDate(to, defTo)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if strings.TrimSpace(to) != "" && len(strings.TrimSpace(to)) == len(dateLayout) {
		t = endOfDay(t)
	}
	if t.Before(f) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: rango de fechas invertido", domain.ErrInvalidInput)
	}
	return f, t, nil
}
