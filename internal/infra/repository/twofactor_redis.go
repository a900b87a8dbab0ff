package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	domainauth "github.com/navaja-app/barbershop-api/internal/domain/auth"
	"github.com/navaja-app/barbershop-api/internal/httperr"
)

const (
	codeKeyPrefix     = "2fa:code:"
	cooldownKeyPrefix = "2fa:cooldown:"
)

// TwoFactorRedisStore keeps one-time codes and resend cooldowns as
// plain TTL keys. Expiry of a code or a cooldown needs no timer: the
// key is simply gone when asked for.
type TwoFactorRedisStore struct {
	client *redis.Client
}

func NewTwoFactorRedisStore(client *redis.Client) *TwoFactorRedisStore {
	return &TwoFactorRedisStore{client: client}
}

func (s *TwoFactorRedisStore) SaveCode(
	ctx context.Context,
	email, code string,
	ttl time.Duration,
) error {
	if err := s.client.Set(ctx, codeKeyPrefix+email, code, ttl).Err(); err != nil {
		return httperr.ErrTransient("code_store_error", "Error al guardar el código.")
	}
	return nil
}

// GetCode returns "" for a missing or expired code.
func (s *TwoFactorRedisStore) GetCode(
	ctx context.Context,
	email string,
) (string, error) {

	code, err := s.client.Get(ctx, codeKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", httperr.ErrTransient("code_store_error", "Error al leer el código.")
	}
	return code, nil
}

func (s *TwoFactorRedisStore) DeleteCode(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, codeKeyPrefix+email).Err(); err != nil {
		return httperr.ErrTransient("code_store_error", "Error al borrar el código.")
	}
	return nil
}

func (s *TwoFactorRedisStore) StartCooldown(
	ctx context.Context,
	email string,
	ttl time.Duration,
) error {
	if err := s.client.Set(ctx, cooldownKeyPrefix+email, "1", ttl).Err(); err != nil {
		return httperr.ErrTransient("code_store_error", "Error al iniciar la espera.")
	}
	return nil
}

func (s *TwoFactorRedisStore) CooldownActive(
	ctx context.Context,
	email string,
) (bool, error) {

	n, err := s.client.Exists(ctx, cooldownKeyPrefix+email).Result()
	if err != nil {
		return false, httperr.ErrTransient("code_store_error", "Error al consultar la espera.")
	}
	return n > 0, nil
}

// Compile-time check
var _ domainauth.CodeStore = (*TwoFactorRedisStore)(nil)
