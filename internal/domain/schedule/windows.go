package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/navaja-app/barbershop-api/internal/httperr"
)

// Window is one working stretch of a day, bounds as "15:04" strings.
type Window struct {
	Start string
	End   string
}

// ParseWindows reads a barber availability descriptor such as
// "09:00-17:00" or "09:00-13:00,14:00-17:00" (the gap is a break).
// Windows come back sorted by start time.
func ParseWindows(descriptor string) ([]Window, error) {
	descriptor = strings.TrimSpace(descriptor)
	if descriptor == "" {
		return nil, httperr.ErrValidation("empty_availability", "Disponibilidad vacía.")
	}

	var windows []Window
	for _, part := range strings.Split(descriptor, ",") {
		bounds := strings.SplitN(strings.TrimSpace(part), "-", 2)
		if len(bounds) != 2 {
			return nil, httperr.ErrValidation("invalid_availability", "Formato de disponibilidad inválido.")
		}

		start, err1 := parseHM(strings.TrimSpace(bounds[0]))
		end, err2 := parseHM(strings.TrimSpace(bounds[1]))
		if err1 != nil || err2 != nil || !start.Before(end) {
			return nil, httperr.ErrValidation("invalid_availability", "Formato de disponibilidad inválido.")
		}

		windows = append(windows, Window{
			Start: strings.TrimSpace(bounds[0]),
			End:   strings.TrimSpace(bounds[1]),
		})
	}

	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Start < windows[j].Start
	})

	return windows, nil
}

// Materialize pins the window onto a calendar day in the date's own
// location. No timezone conversion happens anywhere in scheduling.
func (w Window) Materialize(date time.Time) (time.Time, time.Time) {
	return onDate(date, w.Start), onDate(date, w.End)
}

func parseHM(hm string) (time.Time, error) {
	return time.Parse("15:04", hm)
}

func onDate(date time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}
