package middleware

import (
	"strconv"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// ConfirmationsHeader is an alternative to the ?confirm= query parameter.
const ConfirmationsHeader = "X-Confirmations"

// Confirmations records how many times the user confirmed a destructive action (?confirm=N) on the
// request context. Anything unparsable counts as zero.
func Confirmations() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("confirm")
		if raw == "" {
			raw = c.GetHeader(ConfirmationsHeader)
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			n = 0
		}
		c.Request = c.Request.WithContext(domain.ContextWithConfirmations(c.Request.Context(), n))
		c.Next()
	}
}
