package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/navaja-app/barbershop-api/internal/domain/auth"
	"github.com/navaja-app/barbershop-api/internal/domain/role"
	"github.com/navaja-app/barbershop-api/internal/infra/repository"
	"github.com/navaja-app/barbershop-api/internal/models"
	"github.com/navaja-app/barbershop-api/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type authFixture struct {
	router   *gin.Engine
	tokens   *token.Manager
	sessions domainauth.SessionStore
	redis    *miniredis.Miniredis
}

func setupAuth(t *testing.T) *authFixture {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })

	tokens := token.NewManager("test-secret", time.Hour)
	sessions := repository.NewSessionRedisStore(client)

	r := gin.New()
	r.GET("/ping", AuthMiddleware(tokens, sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.MustGet(ContextUserID)})
	})

	return &authFixture{router: r, tokens: tokens, sessions: sessions, redis: s}
}

func (f *authFixture) issueToken(t *testing.T, r role.Role) string {
	t.Helper()

	sess := &domainauth.Session{
		ID:        "sess-1",
		UserID:    42,
		Role:      r,
		CreatedAt: time.Now(),
	}
	require.NoError(t, f.sessions.Save(context.Background(), sess, time.Hour))

	tok, err := f.tokens.Generate(&models.User{
		ID:   42,
		Role: r.String(),
	}, sess.ID)
	require.NoError(t, err)
	return tok
}

func get(router *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	f := setupAuth(t)

	t.Run("no header", func(t *testing.T) {
		w := get(f.router, "/ping", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := get(f.router, "/ping", "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := get(f.router, "/ping", "Bearer not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("live session passes", func(t *testing.T) {
		tok := f.issueToken(t, role.Client)
		w := get(f.router, "/ping", "Bearer "+tok)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "42")
	})

	t.Run("revoked session rejected before exp", func(t *testing.T) {
		tok := f.issueToken(t, role.Client)
		require.NoError(t, f.sessions.Delete(context.Background(), "sess-1"))

		// The signature is still valid for an hour; the session is not.
		w := get(f.router, "/ping", "Bearer "+tok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "session_expired")
	})

	t.Run("expired session rejected", func(t *testing.T) {
		tok := f.issueToken(t, role.Client)
		f.redis.FastForward(time.Hour + time.Second)

		w := get(f.router, "/ping", "Bearer "+tok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	f := setupAuth(t)
	f.router.GET("/staff",
		AuthMiddleware(f.tokens, f.sessions),
		RequireRoles("Barber", "Administrator"),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	t.Run("barber allowed", func(t *testing.T) {
		tok := f.issueToken(t, role.Barber)
		w := get(f.router, "/staff", "Bearer "+tok)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("synonym spelling allowed", func(t *testing.T) {
		f.router.GET("/staff-es",
			AuthMiddleware(f.tokens, f.sessions),
			RequireRoles("Barbero", "Administrador"),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)

		tok := f.issueToken(t, role.Admin)
		w := get(f.router, "/staff-es", "Bearer "+tok)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("client forbidden", func(t *testing.T) {
		tok := f.issueToken(t, role.Client)
		w := get(f.router, "/staff", "Bearer "+tok)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "redirectTo")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := get(f.router, "/staff", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
