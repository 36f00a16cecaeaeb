package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie the browser may carry the session token in instead of the
// Authorization header.
const SessionCookieName = "practice_session"

// AuthMiddleware validates the session token and loads the session into the request context.
func AuthMiddleware(tokenSvc portssvc.TokenSvcFacade, authSvc portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, ok := bearerToken(c)
		if !ok {
			logger.Warn("Session token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		sessionID, err := tokenSvc.ParseSessionToken(tokenString)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		session, err := authSvc.CurrentSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) {
				logger.Info("Session no longer valid")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.MessageOf(err, "Session expired")})
				return
			}
			logger.Error("Failed to load session", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}

		userID := session.Profile.ID.String()
		enrichedLogger := logger.With(slog.String("user_id", userID))

		ctx := domain.ContextWithSession(c.Request.Context(), session)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(userIDKey), userID)

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

// SessionIDFromRequest parses the session token of a request without requiring it. Used by routes
// such as logout that must work for expired sessions too.
func SessionIDFromRequest(c *gin.Context, tokenSvc portssvc.TokenSvcFacade) (string, bool) {
	tokenString, ok := bearerToken(c)
	if !ok {
		return "", false
	}
	sessionID, err := tokenSvc.ParseSessionToken(tokenString)
	if err != nil {
		return "", false
	}
	return sessionID, true
}
