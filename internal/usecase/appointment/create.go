package appointment

import (
	"context"
	"time"

	"github.com/navaja-app/barbershop-api/internal/audit"
	domain "github.com/navaja-app/barbershop-api/internal/domain/appointment"
	"github.com/navaja-app/barbershop-api/internal/httperr"
	"github.com/navaja-app/barbershop-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint

	DateTime string
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	start, err := parseLocalDateTime(in.DateTime)
	if err != nil {
		return nil, err
	}

	if start.Before(time.Now()) {
		return nil, httperr.ErrValidation("in_the_past", "El horario ya pasó.")
	}

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.Active {
		return nil, httperr.ErrValidation("barber_inactive", "El barbero no está activo.")
	}

	service, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !service.Active {
		return nil, httperr.ErrValidation("service_inactive", "El servicio no está activo.")
	}
	if service.DurationMinutes <= 0 {
		return nil, httperr.ErrValidation("invalid_duration", "Duración inválida.")
	}

	end := start.Add(time.Duration(service.DurationMinutes) * time.Minute)

	// Price and duration are frozen here. A later edit of the service
	// must not change what this booking costs.
	ap := &models.Appointment{
		ClientID:  in.ClientID,
		BarberID:  barber.ID,
		ServiceID: service.ID,

		ServiceName:     service.Name,
		ServicePrice:    service.Price,
		ServiceDuration: service.DurationMinutes,

		StartTime: start,
		EndTime:   end,
		Status:    string(domain.StatusPending),
		Notes:     in.Notes,
	}

	// The slot grid shown earlier is advisory only; the overlap check
	// inside CreateAppointment is the one that decides.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
