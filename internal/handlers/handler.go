package handlers

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
	"github.com/yukikurage/taskboard-api/internal/middleware"
	"github.com/yukikurage/taskboard-api/internal/services"
	"github.com/yukikurage/taskboard-api/internal/validation"
)

// bindJSON binds the request body and writes a 400 listing every failed
// field when it does not validate.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if messages, ok := validation.Messages(err); ok {
			apierrors.ValidationFailed(c, messages)
		} else {
			apierrors.BadRequest(c, "Invalid request body")
		}
		return false
	}
	return true
}

// principal returns the authenticated caller, answering 401 when absent.
func principal(c *gin.Context) (services.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
	}
	return p, ok
}
