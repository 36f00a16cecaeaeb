package handlers

import (
	"context"
	"net/http"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/Theakashprasad/practice-tool-client/internal/dto"
	"github.com/gin-gonic/gin"
)

// contactHandler handles default email/phone selection on top of the contact catalog.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

// registerContactRoutes registers the contact collection and its default-selection routes.
func registerContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := &contactHandler{contactService: contactService}

	group := registerCatalogRoutes[domain.Contact](rg, "/contacts", "contact", contactService)
	group.PUT("/:id/default-email", h.setDefaultEmail)
	group.PUT("/:id/default-phone", h.setDefaultPhone)
	group.PUT("/:id/default-sms", h.setDefaultSMS)
}

// setDefaultEmail godoc
// @Summary Set the default email of a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param body body dto.SetDefaultRequest true "Index of the email"
// @Success 200 {object} domain.Contact
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Same update already in flight"
// @Security BearerAuth
// @Router /contacts/{id}/default-email [put]
func (h *contactHandler) setDefaultEmail(c *gin.Context) {
	h.setDefault(c, h.contactService.SetDefaultEmail, "Failed to set default email")
}

// setDefaultPhone godoc
// @Summary Set the default phone of a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param body body dto.SetDefaultRequest true "Index of the phone"
// @Success 200 {object} domain.Contact
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /contacts/{id}/default-phone [put]
func (h *contactHandler) setDefaultPhone(c *gin.Context) {
	h.setDefault(c, h.contactService.SetDefaultPhone, "Failed to set default phone")
}

// setDefaultSMS godoc
// @Summary Set the default SMS number of a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param body body dto.SetDefaultRequest true "Index of the phone"
// @Success 200 {object} domain.Contact
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /contacts/{id}/default-sms [put]
func (h *contactHandler) setDefaultSMS(c *gin.Context) {
	h.setDefault(c, h.contactService.SetDefaultSMS, "Failed to set default SMS number")
}

type setDefaultFunc func(ctx context.Context, id domain.ID, index int) (*domain.Contact, error)

func (h *contactHandler) setDefault(c *gin.Context, set setDefaultFunc, failure string) {
	var req dto.SetDefaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	contact, err := set(c.Request.Context(), domain.ID(c.Param("id")), *req.Index)
	if err != nil {
		respondError(c, err, failure)
		return
	}
	c.JSON(http.StatusOK, contact)
}
