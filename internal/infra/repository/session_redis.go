package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	domainauth "github.com/navaja-app/barbershop-api/internal/domain/auth"
	"github.com/navaja-app/barbershop-api/internal/httperr"
)

const sessionKeyPrefix = "session:"

type SessionRedisStore struct {
	client *redis.Client
}

func NewSessionRedisStore(client *redis.Client) *SessionRedisStore {
	return &SessionRedisStore{client: client}
}

func (s *SessionRedisStore) Save(
	ctx context.Context,
	sess *domainauth.Session,
	ttl time.Duration,
) error {

	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+sess.ID, payload, ttl).Err(); err != nil {
		return httperr.ErrTransient("session_store_error", "Error de sesión.")
	}
	return nil
}

// Get returns nil, nil for an unknown or expired session; the caller
// decides whether that is an authentication failure.
func (s *SessionRedisStore) Get(
	ctx context.Context,
	id string,
) (*domainauth.Session, error) {

	payload, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, httperr.ErrTransient("session_store_error", "Error de sesión.")
	}

	var sess domainauth.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SessionRedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return httperr.ErrTransient("session_store_error", "Error de sesión.")
	}
	return nil
}

// Compile-time check
var _ domainauth.SessionStore = (*SessionRedisStore)(nil)
