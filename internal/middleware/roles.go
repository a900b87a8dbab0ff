package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navaja-app/barbershop-api/internal/domain/role"
)

// RequireRoles gates a route group by role. Allowed entries may use
// either language ("Client" and "Cliente" name the same role). This is
// boundary advice only; usecases re-check ownership themselves.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := c.Get(ContextUserRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "not_authenticated",
				"redirectTo": "/auth/login",
			})
			return
		}

		r, _ := current.(role.Role)
		if !r.In(allowed...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "forbidden",
				"redirectTo": "/auth/login",
			})
			return
		}

		c.Next()
	}
}
