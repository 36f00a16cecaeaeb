package middleware

import (
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a custom type to prevent collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	// userIDKey is the key used to store the signed-in user's ID in the Gin context.
	userIDKey = contextKey("userID")
)

// GetUserIDFromContext retrieves the signed-in user ID.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok && userID != ""
	}
	if session, ok := domain.SessionFromContext(c.Request.Context()); ok {
		return session.Profile.ID.String(), session.Profile.ID != ""
	}
	return "", false
}

// GetSessionFromContext retrieves the session loaded by AuthMiddleware.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	return domain.SessionFromContext(c.Request.Context())
}
