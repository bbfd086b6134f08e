package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/dto"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a local account and returns a token pair.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse(result))
}

// Login authenticates with email and password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(result))
}

// Refresh re-issues both tokens. RequireRefreshToken has already checked the
// token in the body.
func (h *AuthHandler) Refresh(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), p.UserID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(result))
}

// Logout revokes the caller's cached tokens.
func (h *AuthHandler) Logout(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(c.Request.Context(), p.UserID); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

// ChangePassword verifies the old password, stores the new one and signs the
// caller in again with a fresh pair.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.ChangePassword(c.Request.Context(), p.UserID, req.OldPassword, req.NewPassword)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(result))
}

// Google signs in with a Google ID token or authorization code.
func (h *AuthHandler) Google(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	h.oauthLogin(c, models.ProviderGoogle, req.Credential)
}

// GitHub signs in with a GitHub authorization code.
func (h *AuthHandler) GitHub(c *gin.Context) {
	var req dto.GitHubLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	h.oauthLogin(c, models.ProviderGitHub, req.Code)
}

func (h *AuthHandler) oauthLogin(c *gin.Context, provider models.AuthProvider, credential string) {
	result, err := h.authService.OAuthLogin(c.Request.Context(), provider, credential)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(result))
}
