package handlers

import (
	"net/http"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type chatPreferenceHandler struct {
	service portssvc.ChatPreferenceSvc
}

func registerChatPreferenceRoutes(rg *gin.RouterGroup, svc portssvc.ChatPreferenceSvc) {
	h := &chatPreferenceHandler{service: svc}

	rg.GET("/chat-preferences", h.getChatPreference)
	rg.PUT("/chat-preferences", h.updateChatPreference)
}

// getChatPreference godoc
// @Summary Get chat preferences
// @Tags chat-preferences
// @Produce json
// @Success 200 {object} domain.ChatPreference
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /chat-preferences [get]
func (h *chatPreferenceHandler) getChatPreference(c *gin.Context) {
	pref, err := h.service.GetChatPreference(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load chat preferences")
		return
	}
	c.JSON(http.StatusOK, pref)
}

// updateChatPreference godoc
// @Summary Update chat preferences
// @Tags chat-preferences
// @Accept json
// @Produce json
// @Param preference body domain.ChatPreference true "Preferences"
// @Success 200 {object} domain.ChatPreference
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Same update already in flight"
// @Security BearerAuth
// @Router /chat-preferences [put]
func (h *chatPreferenceHandler) updateChatPreference(c *gin.Context) {
	var pref domain.ChatPreference
	if err := c.ShouldBindJSON(&pref); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.service.UpdateChatPreference(c.Request.Context(), pref)
	if err != nil {
		respondError(c, err, "Failed to update chat preferences")
		return
	}
	c.JSON(http.StatusOK, updated)
}
