package appointment

import (
	"time"

	"github.com/navaja-app/barbershop-api/internal/domain/role"
	"github.com/navaja-app/barbershop-api/internal/httperr"
)

// Actor is the authenticated identity an operation runs as. The route
// guard is only the first line of defense; every usecase re-checks
// ownership against the actor itself.
type Actor struct {
	UserID   uint
	Role     role.Role
	BarberID *uint
}

func (a Actor) ownsChair(barberID uint) bool {
	return a.BarberID != nil && *a.BarberID == barberID
}

// All timestamps are naive local time. No UTC conversion happens on
// either side of the wire; the date string is the local day as-is.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

func parseLocalDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, httperr.ErrValidation("invalid_date_or_time", "Fecha u hora inválida.")
}

func parseLocalDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_date", "Fecha inválida.")
	}
	return t, nil
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}
