package appointment

import (
	"context"
	"time"

	"github.com/navaja-app/barbershop-api/internal/audit"
	domain "github.com/navaja-app/barbershop-api/internal/domain/appointment"
	"github.com/navaja-app/barbershop-api/internal/domain/role"
	"github.com/navaja-app/barbershop-api/internal/httperr"
	"github.com/navaja-app/barbershop-api/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

var auditActions = map[domain.Status]string{
	domain.StatusConfirmed: "appointment_confirmed",
	domain.StatusCompleted: "appointment_completed",
	domain.StatusCancelled: "appointment_cancelled",
}

// Execute applies one lifecycle transition. The repository serializes
// the read-check-write per appointment; the transition table and the
// actor's entitlement are checked against the locked row.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
	target domain.Status,
) (*models.Appointment, error) {

	now := time.Now()

	ap, err := uc.repo.Transition(ctx, appointmentID, func(ap *models.Appointment) error {
		if err := authorize(actor, ap, target); err != nil {
			return err
		}
		return domain.ApplyStatus(ap, target, now)
	})
	if err != nil {
		return nil, err
	}

	if action, ok := auditActions[target]; ok {
		uc.audit.Dispatch(audit.Event{
			UserID:   &actor.UserID,
			Action:   action,
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}

// Cancellation is open to the client who booked, the barber who owns
// the chair, and admins. Confirm and complete are staff actions.
func authorize(actor Actor, ap *models.Appointment, target domain.Status) error {
	switch actor.Role {
	case role.Admin:
		return nil

	case role.Barber:
		if actor.ownsChair(ap.BarberID) {
			return nil
		}

	case role.Client:
		if target == domain.StatusCancelled && ap.ClientID == actor.UserID {
			return nil
		}
	}

	return httperr.ErrAuthorization("not_allowed", "No tienes permiso para esta acción.")
}
