package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/Theakashprasad/practice-tool-client/internal/core/services"
	"github.com/Theakashprasad/practice-tool-client/internal/dto"
	"github.com/Theakashprasad/practice-tool-client/internal/middleware"
	"github.com/Theakashprasad/practice-tool-client/internal/platform/config"
	"github.com/Theakashprasad/practice-tool-client/internal/utils"
	"github.com/gin-gonic/gin"
)

// authHandler handles login, registration and logout.
type authHandler struct {
	authService  portssvc.AuthSvcFacade
	tokenService portssvc.TokenSvcFacade
	secureCookie bool
}

func newAuthHandler(auth portssvc.AuthSvcFacade, token portssvc.TokenSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		authService:  auth,
		tokenService: token,
		secureCookie: cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the public authentication routes. loginLimit throttles login attempts.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, svc *portssvc.ServiceContainer, loginLimit gin.HandlerFunc) {
	h := newAuthHandler(svc.Auth, svc.Token, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", loginLimit, h.login)
		auth.POST("/register", h.register)
		auth.POST("/logout", h.logout)
	}
}

// registerSessionRoutes sets up the authenticated session routes.
func registerSessionRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", currentSession)
}

// login godoc
// @Summary Sign in
// @Description Submits email and password. When the account uses a second factor the response state is
// @Description mfa_setup_required or mfa_challenge_required; repeat the call with mfaToken and that state.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.LoginResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	var (
		flow  *services.LoginFlow
		state services.LoginState
		err   error
	)
	if req.MfaToken != "" {
		resumeState := services.LoginState(req.State)
		if resumeState == "" {
			resumeState = services.LoginStateMfaChallengeRequired
		}
		flow = services.ResumeLoginFlow(h.authService, resumeState, req.ToCredentials())
		state, err = flow.SubmitToken(c.Request.Context(), req.MfaToken, req.Remember)
	} else {
		flow = services.NewLoginFlow(h.authService)
		state, err = flow.Submit(c.Request.Context(), req.ToCredentials())
	}
	if err != nil {
		if statusOf(err) == http.StatusUnauthorized {
			logger.Info("Login rejected", slog.String("email", req.Email))
			c.JSON(http.StatusUnauthorized, dto.LoginResponse{
				State: string(state),
				Error: apperrors.MessageOf(err, "Login failed. Please try again."),
			})
			return
		}
		respondError(c, err, "Login failed. Please try again.")
		return
	}

	resp := dto.LoginResponse{State: string(state)}
	switch state {
	case services.LoginStateAuthenticated:
		session := flow.Session()
		token, expiresAt, err := h.tokenService.IssueSessionToken(session)
		if err != nil {
			logger.Error("Failed to sign session token", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate token"})
			return
		}
		h.setSessionCookie(c, token, expiresAt)
		profile := session.Profile
		resp.Token = token
		resp.ExpiresAt = &expiresAt
		resp.Profile = &profile
		logger.Info("User signed in", slog.String("user_id", profile.ID.String()))
	case services.LoginStateMfaSetupRequired:
		outcome := flow.Outcome()
		enrollment := &dto.MfaEnrollment{Secret: outcome.Secret, OtpauthURL: outcome.OtpauthURL}
		if outcome.OtpauthURL != "" {
			qr, err := utils.QRCodeDataURI(outcome.OtpauthURL)
			if err != nil {
				logger.Warn("Failed to render MFA QR code", slog.String("error", err.Error()))
			} else {
				enrollment.QRCode = qr
			}
		}
		resp.Mfa = enrollment
	}
	c.JSON(http.StatusOK, resp)
}

// register godoc
// @Summary Register a new account
// @Description Creates an account on the practice backend, optionally accepting an invitation.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 "Created"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.authService.Register(c.Request.Context(), req.ToRegistration()); err != nil {
		respondError(c, err, "Failed to register user")
		return
	}
	c.Status(http.StatusCreated)
}

// logout godoc
// @Summary Sign out
// @Description Clears the session. Succeeds even when the session already expired.
// @Tags auth
// @Success 204 "No Content"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	sessionID, ok := middleware.SessionIDFromRequest(c, h.tokenService)
	if ok {
		if err := h.authService.Logout(c.Request.Context(), sessionID); err != nil {
			respondError(c, err, "Failed to sign out")
			return
		}
	}
	h.clearSessionCookie(c)
	c.Status(http.StatusNoContent)
}

// currentSession godoc
// @Summary Current session
// @Description Returns the signed-in user's profile.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func currentSession(c *gin.Context) {
	session, ok := domain.SessionFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not signed in"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *authHandler) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", h.secureCookie, true)
}

func (h *authHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
}
