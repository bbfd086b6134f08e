package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/constants"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
	"github.com/yukikurage/taskboard-api/internal/services"
)

// AccessValidator authenticates bearer access tokens.
type AccessValidator interface {
	ValidateAccess(ctx context.Context, token string) (*services.Principal, error)
}

// RefreshValidator authenticates refresh tokens.
type RefreshValidator interface {
	ValidateRefresh(ctx context.Context, token string) (*services.Principal, error)
}

// RequireAuth checks the Authorization: Bearer header against the token cache
func RequireAuth(validator AccessValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		principal, err := validator.ValidateAccess(c.Request.Context(), token)
		if err != nil {
			apierrors.Respond(c, err)
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// RequireRefreshToken authenticates the refreshToken field of the JSON body.
// The body is restored so the handler can bind it again.
func RequireRefreshToken(validator RefreshValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := peekJSON(c, &body); err != nil || body.RefreshToken == "" {
			apierrors.Unauthorized(c, "refresh token required")
			return
		}

		principal, err := validator.ValidateRefresh(c.Request.Context(), body.RefreshToken)
		if err != nil {
			apierrors.Respond(c, err)
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(constants.ContextKeyUserID)
	return userID, userID != ""
}

// GetPrincipal returns the authenticated caller set by RequireAuth.
func GetPrincipal(c *gin.Context) (services.Principal, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return services.Principal{}, false
	}
	return services.Principal{UserID: userID, Email: c.GetString(constants.ContextKeyUserEmail)}, true
}

func setPrincipal(c *gin.Context, p *services.Principal) {
	c.Set(constants.ContextKeyUserID, p.UserID)
	c.Set(constants.ContextKeyUserEmail, p.Email)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// peekJSON decodes the request body into v and puts the bytes back.
func peekJSON(c *gin.Context, v any) error {
	if c.Request.Body == nil {
		return io.EOF
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if len(raw) == 0 {
		return io.EOF
	}
	return json.Unmarshal(raw, v)
}
