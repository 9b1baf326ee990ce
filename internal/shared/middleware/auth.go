package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/user"
	"library-backend/pkg/jwt"
)

// Context key the resolved identity is stored under.
const currentUserKey = "currentUser"

// Identity resolves the request's bearer token into the current user
// and attaches it to the gin context. It runs once per request, before
// any handler.
//
// Absent, malformed, expired or orphaned tokens all yield an
// unauthenticated context, never a rejected request: whether
// authentication is required is each operation's own concern.
func Identity(jwtManager *jwt.Manager, users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		// "Bearer <token>", scheme case-insensitive
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			c.Next()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.Next()
			return
		}

		current, err := users.FindByID(c.Request.Context(), userID)
		if err != nil || current == nil {
			c.Next()
			return
		}

		c.Set(currentUserKey, current)
		c.Next()
	}
}

// CurrentUser returns the identity Identity resolved for this request,
// if any.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	current, ok := value.(*user.User)
	return current, ok
}
