package appointment

import (
	"time"

	"github.com/navaja-app/barbershop-api/internal/httperr"
	"github.com/navaja-app/barbershop-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus moves an appointment along the lifecycle, stamping the
// terminal timestamps. Completion before the scheduled day is refused;
// same-day early completion is an accepted operator override.
func ApplyStatus(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	if to == StatusCompleted && !sameDayOrPast(ap.StartTime, now) {
		return httperr.ErrConflict("not_yet_started", "La cita aún no ha llegado.")
	}

	ap.Status = string(to)

	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}

	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	return ApplyStatus(ap, StatusCancelled, now)
}

func Complete(ap *models.Appointment, now time.Time) error {
	return ApplyStatus(ap, StatusCompleted, now)
}

func Confirm(ap *models.Appointment, now time.Time) error {
	return ApplyStatus(ap, StatusConfirmed, now)
}

func sameDayOrPast(start, now time.Time) bool {
	if !start.After(now) {
		return true
	}
	sy, sm, sd := start.Date()
	ny, nm, nd := now.Date()
	return sy == ny && sm == nm && sd == nd
}

// Overlaps reports whether [start, end) intersects the appointment's
// own interval. Cancelled appointments never block the chair.
func Overlaps(ap *models.Appointment, start, end time.Time) bool {
	if Status(ap.Status) == StatusCancelled {
		return false
	}
	return start.Before(ap.EndTime) && end.After(ap.StartTime)
}
