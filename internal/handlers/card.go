package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/dto"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
	"github.com/yukikurage/taskboard-api/internal/services"
)

type CardHandler struct {
	cardService *services.CardService
}

func NewCardHandler(cardService *services.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// CreateCard creates a card numbered after the last one on its dashboard.
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req dto.CreateCardRequest
	if !bindJSON(c, &req) {
		return
	}

	card, err := h.cardService.Create(req.ToInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

func (h *CardHandler) ListCards(c *gin.Context) {
	cards, err := h.cardService.ListByColumn(c.Param("columnId"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) GetCard(c *gin.Context) {
	card, err := h.cardService.Get(c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// UpdateCard applies scalar fields and replaces any child collection present
// in the body.
func (h *CardHandler) UpdateCard(c *gin.Context) {
	var req dto.UpdateCardRequest
	if !bindJSON(c, &req) {
		return
	}

	card, err := h.cardService.Update(c.Param("id"), req.ToInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) DeleteCard(c *gin.Context) {
	if err := h.cardService.Delete(c.Param("id")); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CardHandler) ListLabels(c *gin.Context) {
	labels, err := h.cardService.Labels(c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, labels)
}

// ListChecklists returns the card's checklists, each with its items.
func (h *CardHandler) ListChecklists(c *gin.Context) {
	checklists, err := h.cardService.Checklists(c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, checklists)
}

func (h *CardHandler) ListComments(c *gin.Context) {
	comments, err := h.cardService.Comments(c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CardHandler) ListAttachments(c *gin.Context) {
	attachments, err := h.cardService.Attachments(c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, attachments)
}
