package handlers

import (
	"net/http"

	"github.com/Theakashprasad/practice-tool-client/cmd/docs"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/Theakashprasad/practice-tool-client/internal/core/services"
	"github.com/Theakashprasad/practice-tool-client/internal/dto"
	"github.com/Theakashprasad/practice-tool-client/internal/middleware"
	"github.com/Theakashprasad/practice-tool-client/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// loginLimiter may be nil, in which case login attempts are not throttled.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	svc *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api/v1")

	// Register public authentication routes
	loginLimit := func(c *gin.Context) { c.Next() }
	if loginLimiter != nil {
		loginLimit = middleware.RateLimit(loginLimiter)
	}
	registerAuthRoutes(api, cfg, svc, loginLimit)

	// Setup API v1 routes with Auth Middleware
	setupAPIV1Routes(api, svc)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the protected /api/v1 routes and delegates to specific entity route registrations
func setupAPIV1Routes(api *gin.RouterGroup, svc *portssvc.ServiceContainer) {
	v1 := api.Group("", middleware.AuthMiddleware(svc.Token, svc.Auth), middleware.Confirmations())

	registerSessionRoutes(v1)
	registerClientRoutes(v1, svc.Clients, svc.ClientView)
	registerContactRoutes(v1, svc.Contact)
	registerInvitationRoutes(v1, svc.Invitation)
	registerStaffRoutes(v1, svc.StaffDirectory)
	registerChatPreferenceRoutes(v1, svc.ChatPreference)

	registerCatalogRoutes(v1, "/"+services.ResourceClientGroups, "client group", svc.ClientGroups)
	registerCatalogRoutes(v1, "/"+services.ResourceIndustries, "industry", svc.Industries)
	registerCatalogRoutes(v1, "/"+services.ResourceServiceTypes, "service type", svc.ServiceTypes)
	registerCatalogRoutes(v1, "/"+services.ResourceServicesSubscribed, "subscribed service", svc.ServicesSubscribed,
		withPresenter(func(s domain.ServiceSubscribed) any { return dto.ToServiceSubscribedResponse(s) }))
	registerCatalogRoutes(v1, "/"+services.ResourceLinks, "link", svc.Links)
	registerCatalogRoutes(v1, "/"+services.ResourceLinkTypes, "link type", svc.LinkTypes)
	registerCatalogRoutes(v1, "/"+services.ResourceTools, "tool", svc.Tools)
	registerCatalogRoutes(v1, "/"+services.ResourcePractices, "practice", svc.Practices)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
