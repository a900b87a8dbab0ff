package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/navaja-app/barbershop-api/internal/domain/appointment"
	"github.com/navaja-app/barbershop-api/internal/httperr"
	"github.com/navaja-app/barbershop-api/internal/models"
)

const bookingLayout = "2006-01-02T15:04:05"

func tomorrowAt(hh, mm int) time.Time {
	d := time.Now().AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), hh, mm, 0, 0, time.Local)
}

func seedShop(repo *memRepo) {
	repo.addBarber(models.Barber{ID: 1, UserID: 10, Availability: "09:00-17:00", Active: true})
	repo.addBarber(models.Barber{ID: 2, UserID: 11, Availability: "09:00-17:00", Active: false})
	repo.addService(models.Service{ID: 1, Name: "Corte clásico", Price: 20, DurationMinutes: 30, Active: true})
	repo.addService(models.Service{ID: 2, Name: "Afeitado", Price: 15, DurationMinutes: 45, Active: false})
}

func TestCreateAppointment(t *testing.T) {
	repo := newMemRepo()
	seedShop(repo)
	uc := NewCreateAppointment(repo, nil)
	ctx := context.Background()

	start := tomorrowAt(10, 0)

	ap, err := uc.Execute(ctx, CreateInput{
		ClientID:  100,
		BarberID:  1,
		ServiceID: 1,
		DateTime:  start.Format(bookingLayout),
		Notes:     "primera visita",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.True(t, ap.StartTime.Equal(start))
	assert.True(t, ap.EndTime.Equal(start.Add(30*time.Minute)))

	// The booking carries its own copy of the service terms.
	assert.Equal(t, "Corte clásico", ap.ServiceName)
	assert.Equal(t, 20.0, ap.ServicePrice)
	assert.Equal(t, 30, ap.ServiceDuration)
}

func TestCreateAppointmentValidation(t *testing.T) {
	repo := newMemRepo()
	seedShop(repo)
	uc := NewCreateAppointment(repo, nil)
	ctx := context.Background()

	base := CreateInput{
		ClientID:  100,
		BarberID:  1,
		ServiceID: 1,
		DateTime:  tomorrowAt(10, 0).Format(bookingLayout),
	}

	cases := []struct {
		name   string
		mutate func(*CreateInput)
		code   string
		kind   httperr.Kind
	}{
		{
			name:   "garbage datetime",
			mutate: func(in *CreateInput) { in.DateTime = "mañana a las diez" },
			code:   "invalid_date_or_time",
			kind:   httperr.KindValidation,
		},
		{
			name: "start in the past",
			mutate: func(in *CreateInput) {
				in.DateTime = time.Now().Add(-time.Hour).Format(bookingLayout)
			},
			code: "in_the_past",
			kind: httperr.KindValidation,
		},
		{
			name:   "unknown barber",
			mutate: func(in *CreateInput) { in.BarberID = 99 },
			code:   "barber_not_found",
			kind:   httperr.KindNotFound,
		},
		{
			name:   "inactive barber",
			mutate: func(in *CreateInput) { in.BarberID = 2 },
			code:   "barber_inactive",
			kind:   httperr.KindValidation,
		},
		{
			name:   "unknown service",
			mutate: func(in *CreateInput) { in.ServiceID = 99 },
			code:   "service_not_found",
			kind:   httperr.KindNotFound,
		},
		{
			name:   "inactive service",
			mutate: func(in *CreateInput) { in.ServiceID = 2 },
			code:   "service_inactive",
			kind:   httperr.KindValidation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)

			_, err := uc.Execute(ctx, in)
			require.Error(t, err)
			assert.True(t, httperr.IsKind(err, tc.kind))
			assert.True(t, httperr.IsCode(err, tc.code))
		})
	}
}

func TestCreateAppointmentOverlapConflicts(t *testing.T) {
	repo := newMemRepo()
	seedShop(repo)
	uc := NewCreateAppointment(repo, nil)
	ctx := context.Background()

	first := CreateInput{
		ClientID: 100, BarberID: 1, ServiceID: 1,
		DateTime: tomorrowAt(10, 0).Format(bookingLayout),
	}
	_, err := uc.Execute(ctx, first)
	require.NoError(t, err)

	t.Run("partial overlap rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateInput{
			ClientID: 101, BarberID: 1, ServiceID: 1,
			DateTime: tomorrowAt(10, 15).Format(bookingLayout),
		})
		require.Error(t, err)
		assert.True(t, httperr.IsCode(err, "time_conflict"))
	})

	t.Run("back to back is fine", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateInput{
			ClientID: 101, BarberID: 1, ServiceID: 1,
			DateTime: tomorrowAt(10, 30).Format(bookingLayout),
		})
		require.NoError(t, err)
	})

	t.Run("cancelled slot can be rebooked", func(t *testing.T) {
		repo.addAppointment(models.Appointment{
			ClientID: 102, BarberID: 1, ServiceID: 1,
			StartTime: tomorrowAt(14, 0),
			EndTime:   tomorrowAt(14, 30),
			Status:    string(domain.StatusCancelled),
		})

		_, err := uc.Execute(ctx, CreateInput{
			ClientID: 103, BarberID: 1, ServiceID: 1,
			DateTime: tomorrowAt(14, 0).Format(bookingLayout),
		})
		require.NoError(t, err)
	})
}

// Two clients race for the same interval: exactly one create succeeds,
// the other gets a conflict, regardless of interleaving.
func TestCreateAppointmentRace(t *testing.T) {
	repo := newMemRepo()
	seedShop(repo)
	uc := NewCreateAppointment(repo, nil)

	in1 := CreateInput{
		ClientID: 100, BarberID: 1, ServiceID: 1,
		DateTime: tomorrowAt(11, 0).Format(bookingLayout),
	}
	in2 := in1
	in2.ClientID = 101

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, in := range []CreateInput{in1, in2} {
		wg.Add(1)
		go func(i int, in CreateInput) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), in)
		}(i, in)
	}
	wg.Wait()

	winners, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			winners++
		case httperr.IsKind(err, httperr.KindConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, conflicts)
}
