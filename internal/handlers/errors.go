package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/services"
	"github.com/Theakashprasad/practice-tool-client/internal/dto"
	"github.com/Theakashprasad/practice-tool-client/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto an HTTP status and writes it. fallback is shown when the
// error carries no user-facing message.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var confirmErr *services.ConfirmationError
	if errors.As(err, &confirmErr) {
		c.JSON(http.StatusPreconditionRequired, dto.ConfirmationRequiredResponse{
			Error:    "This action needs to be confirmed",
			Required: confirmErr.Required,
			Given:    confirmErr.Given,
		})
		return
	}

	status := statusOf(err)
	msg := apperrors.MessageOf(err, fallback)
	switch {
	case status >= http.StatusInternalServerError:
		logger.Error(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	case status == http.StatusConflict || status == http.StatusUnauthorized || status == http.StatusForbidden:
		logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	default:
		logger.Info(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	}
	if status == http.StatusInternalServerError {
		msg = fallback
	}
	c.JSON(status, dto.ErrorResponse{Error: msg})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInFlight):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUpstream):
		return http.StatusBadGateway
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code >= http.StatusBadRequest {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}
