package schedule

import (
	"time"

	domain "github.com/navaja-app/barbershop-api/internal/domain/appointment"
	"github.com/navaja-app/barbershop-api/internal/httperr"
	"github.com/navaja-app/barbershop-api/internal/models"
)

// Slot is one candidate start time on the booking grid. The full grid
// is always returned, unavailable slots included, so the caller can
// render the whole day.
type Slot struct {
	Start     time.Time `json:"dateTime"`
	TimeStr   string    `json:"timeString"`
	Available bool      `json:"isAvailable"`
}

type SlotsInput struct {
	// Working windows for the day, already parsed and sorted.
	Windows []Window

	// Calendar day being queried, in naive local time.
	Date time.Time

	// Requested service length in minutes. Must be positive.
	DurationMin int

	// Grid step in minutes, independent of DurationMin.
	GranularityMin int

	// Existing appointments for the barber on that day.
	Existing []models.Appointment

	Now time.Time
}

// ComputeSlots walks the working windows on a fixed grid and marks
// each candidate. A candidate is unavailable when its interval crosses
// the window end, overlaps a non-cancelled appointment, or has already
// passed (today only). Pure over its input; ascending by start time.
func ComputeSlots(in SlotsInput) ([]Slot, error) {
	if in.DurationMin <= 0 {
		return nil, httperr.ErrValidation("invalid_duration", "Duración inválida.")
	}
	if in.GranularityMin <= 0 {
		return nil, httperr.ErrValidation("invalid_granularity", "Granularidad inválida.")
	}

	duration := time.Duration(in.DurationMin) * time.Minute
	step := time.Duration(in.GranularityMin) * time.Minute
	today := sameDate(in.Date, in.Now)

	slots := make([]Slot, 0)

	for _, w := range in.Windows {
		winStart, winEnd := w.Materialize(in.Date)

		for cur := winStart; cur.Before(winEnd); cur = cur.Add(step) {
			end := cur.Add(duration)

			available := !end.After(winEnd) &&
				!(today && cur.Before(in.Now)) &&
				!overlapsAny(in.Existing, cur, end)

			slots = append(slots, Slot{
				Start:     cur,
				TimeStr:   cur.Format("15:04"),
				Available: available,
			})
		}
	}

	return slots, nil
}

func overlapsAny(existing []models.Appointment, start, end time.Time) bool {
	for i := range existing {
		if domain.Overlaps(&existing[i], start, end) {
			return true
		}
	}
	return false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
