package appointment

import (
	"context"
	"time"

	"github.com/navaja-app/barbershop-api/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment is the authoritative serialization point: the
	// overlap check against non-cancelled appointments for the barber
	// and the insert happen as one atomic unit. Overlap yields a
	// conflict error; exactly one of two racing creates wins.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------

	// Transition locks the appointment row, runs apply against the
	// true current state, and persists the result, so concurrent
	// status changes serialize.
	Transition(
		ctx context.Context,
		id uint,
		apply func(*models.Appointment) error,
	) (*models.Appointment, error)

	// -------- Queries --------
	ListByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListByBarberForDay(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	ListForRange(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Dashboard aggregates --------
	CountClients(ctx context.Context) (int64, error)

	CountBarbers(ctx context.Context) (int64, error)
}
