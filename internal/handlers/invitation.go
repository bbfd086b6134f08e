package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/dto"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
	"github.com/yukikurage/taskboard-api/internal/services"
)

type InvitationHandler struct {
	invitationService *services.InvitationService
}

func NewInvitationHandler(invitationService *services.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

// CreateInvitation records a pending invitation from the caller.
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateInvitationRequest
	if !bindJSON(c, &req) {
		return
	}

	invitation, err := h.invitationService.Create(req.ToInput(), p)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	invitations, err := h.invitationService.ListByDashboard(c.Param("dashboardId"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, invitations)
}
