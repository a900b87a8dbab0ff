package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/navaja-app/barbershop-api/internal/domain/auth"
	"github.com/navaja-app/barbershop-api/internal/domain/role"
)

func TestSessionRedisStore(t *testing.T) {
	s, client := setupRedis(t)
	store := NewSessionRedisStore(client)
	ctx := context.Background()

	barberID := uint(7)
	sess := &domainauth.Session{
		ID:        "a2c3f8e1",
		UserID:    42,
		Role:      role.Barber,
		BarberID:  &barberID,
		CreatedAt: time.Now().Truncate(time.Second),
	}

	t.Run("SaveAndGet", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sess, time.Hour))

		got, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, sess.UserID, got.UserID)
		assert.Equal(t, role.Barber, got.Role)
		require.NotNil(t, got.BarberID)
		assert.Equal(t, barberID, *got.BarberID)
	})

	t.Run("GetUnknownIsNil", func(t *testing.T) {
		got, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("DeleteRevokes", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sess, time.Hour))
		require.NoError(t, store.Delete(ctx, sess.ID))

		got, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		// Deleting again is harmless; logout is unconditional.
		require.NoError(t, store.Delete(ctx, sess.ID))
	})

	t.Run("SessionExpires", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sess, time.Hour))
		s.FastForward(time.Hour + time.Second)

		got, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
