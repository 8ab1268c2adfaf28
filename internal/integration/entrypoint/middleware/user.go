// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kakeibo/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

// UserIDKey is the context key for the resolved user's ID.
const UserIDKey ContextKey = "user_id"

// userIDHeader names the header a client may set to select a profile.
const userIDHeader = "X-User-ID"

// UserMiddleware resolves the acting user for each request. The API has no
// account system: a deployment serves one household, whose profile ID is
// configured at startup. A client may still address another profile
// explicitly via the X-User-ID header, which keeps all data user-scoped.
type UserMiddleware struct {
	defaultUserID uuid.UUID
}

// NewUserMiddleware creates a new user middleware instance.
func NewUserMiddleware(defaultUserID uuid.UUID) *UserMiddleware {
	return &UserMiddleware{
		defaultUserID: defaultUserID,
	}
}

// Resolve returns a Gin middleware handler that stores the acting user's ID
// in the request context.
func (m *UserMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := m.defaultUserID

		if header := c.GetHeader(userIDHeader); header != "" {
			parsed, err := uuid.Parse(header)
			if err != nil {
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid X-User-ID header",
				})
				c.Abort()
				return
			}
			userID = parsed
		}

		c.Set(string(UserIDKey), userID)

		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}
