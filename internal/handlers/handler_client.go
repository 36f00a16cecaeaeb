package handlers

import (
	"net/http"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// clientHandler serves the joined client view.
type clientHandler struct {
	viewService portssvc.ClientViewSvc
}

// registerClientRoutes registers the client collection and its view route.
func registerClientRoutes(rg *gin.RouterGroup, clients portssvc.CatalogSvcFacade[domain.Client], views portssvc.ClientViewSvc) {
	h := &clientHandler{viewService: views}

	group := registerCatalogRoutes(rg, "/clients", "client", clients)
	group.GET("/:id/view", h.getClientView)
}

// getClientView godoc
// @Summary Get the client view
// @Description Returns the client joined with its group, staff, services, industry, contacts and links.
// @Description Missing relationships show as "N/A"; only a missing client is an error.
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} domain.ClientView
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/view [get]
func (h *clientHandler) getClientView(c *gin.Context) {
	view, err := h.viewService.ResolveClientView(c.Request.Context(), domain.ID(c.Param("id")))
	if err != nil {
		respondError(c, err, "Failed to load client")
		return
	}
	c.JSON(http.StatusOK, view)
}
