package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/Theakashprasad/practice-tool-client/internal/dto"
	"github.com/Theakashprasad/practice-tool-client/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invitationHandler handles HTTP requests related to invitations.
type invitationHandler struct {
	invitationService portssvc.InvitationSvcFacade
}

func newInvitationHandler(is portssvc.InvitationSvcFacade) *invitationHandler {
	return &invitationHandler{invitationService: is}
}

// registerInvitationRoutes registers routes related to invitations.
func registerInvitationRoutes(rg *gin.RouterGroup, invitationService portssvc.InvitationSvcFacade) {
	h := newInvitationHandler(invitationService)

	invitations := rg.Group("/invitations")
	{
		invitations.GET("", h.listInvitations)
		invitations.POST("", h.createInvitation)
		invitations.GET("/:id", h.getInvitation)
		invitations.POST("/:id/withdraw", h.withdrawInvitation)
		invitations.DELETE("/:id", h.deleteInvitation)
	}
}

// listInvitations godoc
// @Summary List invitations
// @Tags invitations
// @Produce json
// @Param search query string false "Case-insensitive email substring"
// @Success 200 {array} domain.Invitation
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invitations [get]
func (h *invitationHandler) listInvitations(c *gin.Context) {
	invitations, err := h.invitationService.ListInvitations(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err, "Failed to list invitations")
		return
	}
	c.JSON(http.StatusOK, invitations)
}

// getInvitation godoc
// @Summary Get an invitation
// @Tags invitations
// @Produce json
// @Param id path string true "Invitation ID"
// @Success 200 {object} domain.Invitation
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invitations/{id} [get]
func (h *invitationHandler) getInvitation(c *gin.Context) {
	inv, err := h.invitationService.GetInvitation(c.Request.Context(), domain.ID(c.Param("id")))
	if err != nil {
		respondError(c, err, "Failed to retrieve invitation")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// createInvitation godoc
// @Summary Invite a person
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body dto.CreateInvitationRequest true "Invitation details"
// @Success 201 {object} domain.Invitation
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invitations [post]
func (h *invitationHandler) createInvitation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	inv, err := h.invitationService.CreateInvitation(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err, "Failed to create invitation")
		return
	}
	logger.Info("Invitation created", slog.String("invitation_id", inv.ID.String()))
	c.JSON(http.StatusCreated, inv)
}

// withdrawInvitation godoc
// @Summary Withdraw a pending invitation
// @Description Only pending invitations can be withdrawn; accepted or cancelled ones answer 409.
// @Tags invitations
// @Param id path string true "Invitation ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invitations/{id}/withdraw [post]
func (h *invitationHandler) withdrawInvitation(c *gin.Context) {
	if err := h.invitationService.WithdrawInvitation(c.Request.Context(), domain.ID(c.Param("id"))); err != nil {
		respondError(c, err, "Failed to withdraw invitation")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteInvitation godoc
// @Summary Delete an invitation
// @Description Needs ?confirm=1; without it the response is 428 with the required count.
// @Tags invitations
// @Param id path string true "Invitation ID"
// @Param confirm query int false "Number of confirmations given"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 428 {object} dto.ConfirmationRequiredResponse
// @Security BearerAuth
// @Router /invitations/{id} [delete]
func (h *invitationHandler) deleteInvitation(c *gin.Context) {
	if err := h.invitationService.DeleteInvitation(c.Request.Context(), domain.ID(c.Param("id"))); err != nil {
		respondError(c, err, "Failed to delete invitation")
		return
	}
	c.Status(http.StatusNoContent)
}
