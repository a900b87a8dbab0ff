package appointment

import (
	"context"

	domain "github.com/navaja-app/barbershop-api/internal/domain/appointment"
	"github.com/navaja-app/barbershop-api/internal/models"
)

// CancelAppointment is UpdateStatus pinned to Cancelled. Deliberately
// not idempotent: cancelling a cancelled or completed appointment
// fails, so operator mistakes surface instead of vanishing.
type CancelAppointment struct {
	update *UpdateStatus
}

func NewCancelAppointment(update *UpdateStatus) *CancelAppointment {
	return &CancelAppointment{update: update}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.update.Execute(ctx, actor, appointmentID, domain.StatusCancelled)
}
