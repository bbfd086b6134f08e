package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/dto"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
	"github.com/yukikurage/taskboard-api/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// CreateDashboard creates a dashboard with the caller as its admin.
func (h *DashboardHandler) CreateDashboard(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateDashboardRequest
	if !bindJSON(c, &req) {
		return
	}

	dashboard, err := h.dashboardService.Create(req.ToInput(), p.UserID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dashboard)
}

// ListDashboards returns every dashboard the caller is a member of.
func (h *DashboardHandler) ListDashboards(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	dashboards, err := h.dashboardService.ListForUser(p.UserID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboards)
}

// GetDashboard returns the dashboard with its whole board tree.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.dashboardService.Get(c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *DashboardHandler) UpdateDashboard(c *gin.Context) {
	var req dto.UpdateDashboardRequest
	if !bindJSON(c, &req) {
		return
	}

	dashboard, err := h.dashboardService.Update(c.Param("id"), req.ToInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// DeleteDashboard removes the dashboard and everything on it.
// RequireDashboardAdmin runs first.
func (h *DashboardHandler) DeleteDashboard(c *gin.Context) {
	if err := h.dashboardService.Delete(c.Param("id")); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DashboardHandler) ListMembers(c *gin.Context) {
	members, err := h.dashboardService.Members(c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberDTOs(members))
}
