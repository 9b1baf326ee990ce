package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/user"
	userRepo "library-backend/internal/domains/user/repository"
	"library-backend/pkg/jwt"
)

func identityTestRouter(t *testing.T, manager *jwt.Manager, users user.Repository) (*gin.Engine, *struct {
	resolved *user.User
	called   bool
}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	seen := &struct {
		resolved *user.User
		called   bool
	}{}

	router := gin.New()
	router.Use(Identity(manager, users))
	router.GET("/probe", func(c *gin.Context) {
		seen.called = true
		seen.resolved, _ = CurrentUser(c)
		c.Status(http.StatusOK)
	})
	return router, seen
}

func TestIdentityResolvesValidToken(t *testing.T) {
	users := userRepo.NewMemoryRepository()
	manager := jwt.NewManager("secret", time.Hour)

	alice := &user.User{Username: "alice", FavoriteGenre: "scifi", PasswordHash: "x"}
	require.NoError(t, users.Create(context.Background(), alice))

	token, err := manager.GenerateToken(alice.ID.Hex(), alice.Username)
	require.NoError(t, err)

	router, seen := identityTestRouter(t, manager, users)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, seen.called)
	require.NotNil(t, seen.resolved)
	assert.Equal(t, "alice", seen.resolved.Username)
	assert.Equal(t, alice.ID, seen.resolved.ID)
}

func TestIdentityUnauthenticatedIsNotAnError(t *testing.T) {
	users := userRepo.NewMemoryRepository()
	manager := jwt.NewManager("secret", time.Hour)

	expired, err := jwt.NewManager("secret", -time.Minute).GenerateToken("651f1f77bcf86cd799439011", "ghost")
	require.NoError(t, err)
	wrongKey, err := jwt.NewManager("other-secret", time.Hour).GenerateToken("651f1f77bcf86cd799439011", "ghost")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed", "Bearer"},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + wrongKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, seen := identityTestRouter(t, manager, users)

			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// The request still reaches the handler, just without an identity
			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, seen.called)
			assert.Nil(t, seen.resolved)
		})
	}
}

func TestIdentityOrphanedTokenYieldsUnauthenticated(t *testing.T) {
	// Valid signature, but the user it names no longer exists
	users := userRepo.NewMemoryRepository()
	manager := jwt.NewManager("secret", time.Hour)

	token, err := manager.GenerateToken("651f1f77bcf86cd799439011", "deleted")
	require.NoError(t, err)

	router, seen := identityTestRouter(t, manager, users)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, seen.called)
	assert.Nil(t, seen.resolved)
}
