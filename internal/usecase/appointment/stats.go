package appointment

import (
	"context"
	"time"

	domain "github.com/navaja-app/barbershop-api/internal/domain/appointment"
	"github.com/navaja-app/barbershop-api/internal/dto"
)

type GetStats struct {
	repo domain.Repository
}

func NewGetStats(repo domain.Repository) *GetStats {
	return &GetStats{repo: repo}
}

// Execute aggregates today's numbers from the appointment set on every
// call. There are no cached counters to drift out of sync.
func (uc *GetStats) Execute(ctx context.Context) (*dto.DashboardStats, error) {
	dayStart, dayEnd := dayBounds(time.Now())

	today, err := uc.repo.ListForRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStats{
		TotalAppointmentsToday: len(today),
	}

	for i := range today {
		switch domain.Status(today[i].Status) {
		case domain.StatusPending:
			stats.PendingToday++
		case domain.StatusCompleted:
			stats.CompletedToday++
			stats.IncomeToday += today[i].ServicePrice
		}
	}

	if stats.TotalClients, err = uc.repo.CountClients(ctx); err != nil {
		return nil, err
	}
	if stats.TotalBarbers, err = uc.repo.CountBarbers(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}
