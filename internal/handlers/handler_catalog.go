package handlers

import (
	"net/http"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/Theakashprasad/practice-tool-client/internal/dto"
	"github.com/Theakashprasad/practice-tool-client/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler serves list/detail/create/update/delete for one backend collection.
type catalogHandler[T any] struct {
	service portssvc.CatalogSvcFacade[T]
	noun    string
	present func(T) any
}

// catalogRouteOption configures a catalog handler.
type catalogRouteOption[T any] func(*catalogHandler[T])

// withPresenter converts records before they are written to the response.
func withPresenter[T any](present func(T) any) catalogRouteOption[T] {
	return func(h *catalogHandler[T]) {
		h.present = present
	}
}

// registerCatalogRoutes registers the CRUD routes of a collection under path. noun names one record
// in error messages, e.g. "client group".
func registerCatalogRoutes[T any](rg *gin.RouterGroup, path, noun string, svc portssvc.CatalogSvcFacade[T], opts ...catalogRouteOption[T]) *gin.RouterGroup {
	h := &catalogHandler[T]{service: svc, noun: noun}
	for _, opt := range opts {
		opt(h)
	}

	group := rg.Group(path)
	{
		group.GET("", h.list)
		group.POST("", h.create)
		group.GET("/:id", h.get)
		group.PUT("/:id", h.update)
		group.DELETE("/:id", h.remove)
	}
	return group
}

// list godoc
// @Summary List a collection
// @Description Returns every record of the collection, filtered by a case-insensitive ?search= substring.
// @Tags catalog
// @Produce json
// @Param resource path string true "Collection" Enums(clients, client-groups, industries, service-types, services-subscribed, links, link-types, tools, practices, contacts)
// @Param search query string false "Case-insensitive substring"
// @Success 200 {array} object
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /{resource} [get]
func (h *catalogHandler[T]) list(c *gin.Context) {
	records, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err, "Failed to list "+h.noun+" records")
		return
	}
	if h.present == nil {
		c.JSON(http.StatusOK, records)
		return
	}
	out := make([]any, 0, len(records))
	for _, r := range records {
		out = append(out, h.present(r))
	}
	c.JSON(http.StatusOK, out)
}

// get godoc
// @Summary Get a record
// @Tags catalog
// @Produce json
// @Param resource path string true "Collection" Enums(clients, client-groups, industries, service-types, services-subscribed, links, link-types, tools, practices, contacts)
// @Param id path string true "Record ID"
// @Success 200 {object} object
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /{resource}/{id} [get]
func (h *catalogHandler[T]) get(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), domain.ID(c.Param("id")))
	if err != nil {
		respondError(c, err, "Failed to retrieve "+h.noun)
		return
	}
	h.write(c, http.StatusOK, record)
}

// create godoc
// @Summary Create a record
// @Tags catalog
// @Accept json
// @Produce json
// @Param resource path string true "Collection" Enums(clients, client-groups, industries, service-types, services-subscribed, links, link-types, tools, practices, contacts)
// @Param record body object true "Record fields"
// @Success 201 {object} object
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Same create already in flight"
// @Security BearerAuth
// @Router /{resource} [post]
func (h *catalogHandler[T]) create(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.service.Create(c.Request.Context(), record)
	if err != nil {
		respondError(c, err, "Failed to create "+h.noun)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Record created", "resource", h.noun)
	h.write(c, http.StatusCreated, created)
}

// update godoc
// @Summary Update a record
// @Tags catalog
// @Accept json
// @Produce json
// @Param resource path string true "Collection" Enums(clients, client-groups, industries, service-types, services-subscribed, links, link-types, tools, practices, contacts)
// @Param id path string true "Record ID"
// @Param record body object true "Record fields"
// @Success 200 {object} object
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Same update already in flight"
// @Security BearerAuth
// @Router /{resource}/{id} [put]
func (h *catalogHandler[T]) update(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.service.Update(c.Request.Context(), domain.ID(c.Param("id")), record)
	if err != nil {
		respondError(c, err, "Failed to update "+h.noun)
		return
	}
	h.write(c, http.StatusOK, updated)
}

// remove godoc
// @Summary Delete a record
// @Description Needs ?confirm=2 for contacts, links and services-subscribed and ?confirm=1 otherwise;
// @Description without enough confirmations the response is 428 with the required count.
// @Tags catalog
// @Param resource path string true "Collection" Enums(clients, client-groups, industries, service-types, services-subscribed, links, link-types, tools, practices, contacts)
// @Param id path string true "Record ID"
// @Param confirm query int false "Number of confirmations given"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 428 {object} dto.ConfirmationRequiredResponse
// @Security BearerAuth
// @Router /{resource}/{id} [delete]
func (h *catalogHandler[T]) remove(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), domain.ID(c.Param("id"))); err != nil {
		respondError(c, err, "Failed to delete "+h.noun)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *catalogHandler[T]) write(c *gin.Context, status int, record *T) {
	if record == nil {
		c.JSON(status, dto.ErrorResponse{Error: h.noun + " not returned by backend"})
		return
	}
	if h.present != nil {
		c.JSON(status, h.present(*record))
		return
	}
	c.JSON(status, record)
}
