package middleware

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
)

// DashboardGuard resolves dashboards and checks admin membership.
type DashboardGuard interface {
	ResolveDashboardID(id string) (string, error)
	RequireAdmin(dashboardID, userID string) error
}

// RequireDashboardAdmin only lets dashboard admins through. The dashboard is
// taken from the :id path parameter, which may name a column of the dashboard
// or the dashboard itself, else from the body's dashboardId. When both are
// present they must agree.
func RequireDashboardAdmin(guard DashboardGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		var body struct {
			DashboardID string `json:"dashboardId"`
		}
		_ = peekJSON(c, &body)

		dashboardID := body.DashboardID
		if id := c.Param("id"); id != "" {
			resolved, err := guard.ResolveDashboardID(id)
			if err != nil {
				apierrors.Respond(c, err)
				return
			}
			// the checked dashboard must be the one the route acts on
			if dashboardID != "" && dashboardID != resolved {
				apierrors.Forbidden(c, "dashboardId does not match the target resource")
				return
			}
			dashboardID = resolved
		}
		if dashboardID == "" {
			apierrors.Forbidden(c, "dashboard id not specified")
			return
		}

		if err := guard.RequireAdmin(dashboardID, userID); err != nil {
			apierrors.Respond(c, err)
			return
		}
		c.Next()
	}
}
