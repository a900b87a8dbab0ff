package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/navaja-app/barbershop-api/internal/httperr"
	"github.com/navaja-app/barbershop-api/internal/models"
)

// Manager signs and parses the HS256 bearer tokens. Each token carries
// the Redis session ID as jti, so tokens die with their session.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

type Claims struct {
	UserID    uint
	Role      string
	SessionID string
}

func (m *Manager) Generate(user *models.User, sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": user.Role,
		"jti":  sessionID,
		"exp":  now.Add(m.ttl).Unix(),
		"iat":  now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

func (m *Manager) Parse(tokenString string) (*Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, httperr.ErrAuthentication("invalid_token", "Sesión inválida.")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, httperr.ErrAuthentication("invalid_token_claims", "Sesión inválida.")
	}

	sub, ok1 := claims["sub"].(float64)
	jti, ok2 := claims["jti"].(string)
	roleStr, _ := claims["role"].(string)
	if !ok1 || !ok2 {
		return nil, httperr.ErrAuthentication("invalid_token_payload", "Sesión inválida.")
	}

	return &Claims{
		UserID:    uint(sub),
		Role:      roleStr,
		SessionID: jti,
	}, nil
}
