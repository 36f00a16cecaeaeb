package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	"github.com/Theakashprasad/practice-tool-client/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestConfirmations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/x", middleware.Confirmations(), func(c *gin.Context) {
		c.String(http.StatusOK, strconv.Itoa(domain.ConfirmationsFromContext(c.Request.Context())))
	})

	tests := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{"none", "/x", "", "0"},
		{"query", "/x?confirm=2", "", "2"},
		{"header", "/x", "1", "1"},
		{"query wins over header", "/x?confirm=2", "1", "2"},
		{"garbage", "/x?confirm=yes", "", "0"},
		{"negative", "/x?confirm=-3", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(middleware.ConfirmationsHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}
