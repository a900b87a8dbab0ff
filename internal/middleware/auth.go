package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainauth "github.com/navaja-app/barbershop-api/internal/domain/auth"
	"github.com/navaja-app/barbershop-api/internal/token"
)

const (
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextSessionID = "sessionID"
	ContextBarberID  = "barberID"
)

// AuthMiddleware accepts a bearer token only when its signature checks
// out and the session behind its jti is still alive. Logout kills the
// session, so a logged-out token is dead before its exp.
func AuthMiddleware(tokens *token.Manager, sessions domainauth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		sess, err := sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "session_store_unavailable"})
			return
		}
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session_expired"})
			return
		}

		c.Set(ContextUserID, sess.UserID)
		c.Set(ContextUserRole, sess.Role)
		c.Set(ContextSessionID, sess.ID)
		if sess.BarberID != nil {
			c.Set(ContextBarberID, *sess.BarberID)
		}

		c.Next()
	}
}
