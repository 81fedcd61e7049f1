package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"budget-tracker/internal/app"
	"budget-tracker/internal/transport/http/middleware"
	"budget-tracker/internal/transport/http/response"
)

// CardHandler serves one card kind; the router registers it once for debit
// cards and once for credit cards.
type CardHandler struct {
	cardService *app.CardService
	kind        string
}

type CreateCardRequest struct {
	Name    string  `json:"name" binding:"required,max=128"`
	Balance float64 `json:"balance"`
}

type UpdateCardRequest struct {
	Name    string   `json:"name" binding:"max=128"`
	Balance *float64 `json:"balance"`
}

func NewCardHandler(cardService *app.CardService, kind string) *CardHandler {
	return &CardHandler{cardService: cardService, kind: kind}
}

func (h *CardHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	card, err := h.cardService.CreateCard(app.CreateCardInput{
		UserID:  userID,
		Kind:    h.kind,
		Name:    req.Name,
		Balance: req.Balance,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create card failed")
		}
		return
	}

	response.Created(c, card)
}

func (h *CardHandler) List(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	cards, err := h.cardService.ListCards(userID, h.kind)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list cards failed")
		return
	}

	response.OK(c, cards)
}

func (h *CardHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	cardID, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	card, err := h.cardService.UpdateCard(app.UpdateCardInput{
		UserID:  userID,
		CardID:  cardID,
		Name:    req.Name,
		Balance: req.Balance,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrCardNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "update card failed")
		}
		return
	}

	response.OK(c, card)
}

func (h *CardHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	cardID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(userID, cardID); err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrCardNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "delete card failed")
		}
		return
	}

	response.OK(c, gin.H{"deleted_id": cardID})
}

// idParam parses the :id path segment; on failure it writes the 400 itself.
func idParam(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id64 == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid id")
		return 0, false
	}
	return uint(id64), true
}
