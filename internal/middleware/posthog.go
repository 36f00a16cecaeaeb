package middleware

import (
	"net/http"
	"strings"

	"github.com/Theakashprasad/practice-tool-client/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware tracks successful API calls of signed-in users with PostHog.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/clients/:id/view" -> "GET_api_v1_clients_:id_view"
		eventName := routeEventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if session, ok := GetSessionFromContext(c); ok {
			props["level"] = string(session.Profile.Level)
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

func routeEventName(method, fullPath string) string {
	path := strings.TrimPrefix(fullPath, "/")
	if path == "" {
		return ""
	}
	return method + "_" + strings.ReplaceAll(path, "/", "_")
}
