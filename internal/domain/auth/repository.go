package auth

import (
	"context"
	"time"

	"github.com/navaja-app/barbershop-api/internal/models"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

type SessionStore interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// CodeStore holds the volatile two-factor state: the live one-time
// code (its TTL is the validity window) and the resend cooldown flag
// (its TTL is the cooldown, checked on demand, no timers).
type CodeStore interface {
	SaveCode(ctx context.Context, email, code string, ttl time.Duration) error
	GetCode(ctx context.Context, email string) (string, error)
	DeleteCode(ctx context.Context, email string) error

	StartCooldown(ctx context.Context, email string, ttl time.Duration) error
	CooldownActive(ctx context.Context, email string) (bool, error)
}
