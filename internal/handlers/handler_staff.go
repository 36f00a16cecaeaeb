package handlers

import (
	"net/http"

	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

func registerStaffRoutes(rg *gin.RouterGroup, staff portssvc.StaffDirectorySvc) {
	rg.GET("/staff-directory", listStaffDirectory(staff))
}

// listStaffDirectory godoc
// @Summary List the staff directory
// @Description Staff users followed by pending invitations; everyone who can fill a staff slot.
// @Tags staff
// @Produce json
// @Success 200 {array} domain.StaffMember
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /staff-directory [get]
func listStaffDirectory(staff portssvc.StaffDirectorySvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		members, err := staff.ListStaffDirectory(c.Request.Context())
		if err != nil {
			respondError(c, err, "Failed to load staff directory")
			return
		}
		c.JSON(http.StatusOK, members)
	}
}
