package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/dto"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
	"github.com/yukikurage/taskboard-api/internal/services"
)

type ColumnHandler struct {
	columnService *services.ColumnService
}

func NewColumnHandler(columnService *services.ColumnService) *ColumnHandler {
	return &ColumnHandler{columnService: columnService}
}

// CreateColumn appends a column to a dashboard.
func (h *ColumnHandler) CreateColumn(c *gin.Context) {
	var req dto.CreateColumnRequest
	if !bindJSON(c, &req) {
		return
	}

	column, err := h.columnService.Create(req.ToInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, column)
}

func (h *ColumnHandler) ListColumns(c *gin.Context) {
	columns, err := h.columnService.ListByDashboard(c.Param("dashboardId"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, columns)
}

func (h *ColumnHandler) GetColumn(c *gin.Context) {
	column, err := h.columnService.Get(c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, column)
}

// UpdateOrder rewrites the order of every column of a dashboard at once.
func (h *ColumnHandler) UpdateOrder(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	columns, err := h.columnService.Reorder(req.DashboardID, req.ColumnIDs)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, columns)
}

func (h *ColumnHandler) UpdateColumn(c *gin.Context) {
	var req dto.UpdateColumnRequest
	if !bindJSON(c, &req) {
		return
	}

	column, err := h.columnService.Update(c.Param("id"), req.ToInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, column)
}

// DeleteColumn removes a column and its cards. RequireDashboardAdmin runs first.
func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	if err := h.columnService.Delete(c.Param("id")); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
