package auth

import (
	"time"

	"github.com/navaja-app/barbershop-api/internal/domain/role"
)

// Session is the server-side record behind a bearer token. The JWT
// carries the session ID (jti); logout deletes the record, which
// revokes the token before its exp.
type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"userId"`
	Role      role.Role `json:"role"`
	BarberID  *uint     `json:"barberId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
