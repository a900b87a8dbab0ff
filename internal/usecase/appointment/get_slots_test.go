package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/navaja-app/barbershop-api/internal/domain/appointment"
	"github.com/navaja-app/barbershop-api/internal/domain/schedule"
	"github.com/navaja-app/barbershop-api/internal/httperr"
	"github.com/navaja-app/barbershop-api/internal/models"
)

func slotAt(t *testing.T, slots []schedule.Slot, hhmm string) schedule.Slot {
	t.Helper()
	for _, s := range slots {
		if s.TimeStr == hhmm {
			return s
		}
	}
	t.Fatalf("no slot at %s", hhmm)
	return schedule.Slot{}
}

func TestGetAvailableSlots(t *testing.T) {
	repo := newMemRepo()
	repo.addBarber(models.Barber{ID: 1, Availability: "09:00-17:00", Active: true})

	uc := NewGetAvailableSlots(repo, "09:00", "17:00", 30)
	ctx := context.Background()

	date := time.Now().AddDate(0, 0, 1)
	dateStr := date.Format("2006-01-02")

	booked := time.Date(date.Year(), date.Month(), date.Day(), 10, 0, 0, 0, time.Local)
	repo.addAppointment(models.Appointment{
		BarberID:  1,
		StartTime: booked,
		EndTime:   booked.Add(30 * time.Minute),
		Status:    string(domain.StatusConfirmed),
	})

	slots, err := uc.Execute(ctx, 1, dateStr, 30)
	require.NoError(t, err)

	require.Len(t, slots, 16)
	assert.False(t, slotAt(t, slots, "10:00").Available)
	assert.True(t, slotAt(t, slots, "09:30").Available)
	assert.True(t, slotAt(t, slots, "10:30").Available)
}

func TestGetAvailableSlotsDescriptorFallback(t *testing.T) {
	repo := newMemRepo()
	repo.addBarber(models.Barber{ID: 1, Availability: "lunes a viernes", Active: true})

	uc := NewGetAvailableSlots(repo, "09:00", "17:00", 30)

	dateStr := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	slots, err := uc.Execute(context.Background(), 1, dateStr, 30)
	require.NoError(t, err)

	// The broken descriptor falls back to shop hours, 09:00-17:00.
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0].TimeStr)
	assert.Equal(t, "16:30", slots[len(slots)-1].TimeStr)
}

func TestGetAvailableSlotsErrors(t *testing.T) {
	repo := newMemRepo()
	repo.addBarber(models.Barber{ID: 1, Availability: "09:00-17:00", Active: true})
	uc := NewGetAvailableSlots(repo, "09:00", "17:00", 30)
	ctx := context.Background()

	t.Run("bad date", func(t *testing.T) {
		_, err := uc.Execute(ctx, 1, "10/03/2026", 30)
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	})

	t.Run("unknown barber", func(t *testing.T) {
		dateStr := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		_, err := uc.Execute(ctx, 99, dateStr, 30)
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	})
}
