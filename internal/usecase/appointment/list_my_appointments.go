package appointment

import (
	"context"

	domain "github.com/navaja-app/barbershop-api/internal/domain/appointment"
	"github.com/navaja-app/barbershop-api/internal/dto"
)

type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	clientID uint,
) ([]dto.AppointmentDTO, error) {

	aps, err := uc.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return dto.FromAppointments(aps), nil
}
