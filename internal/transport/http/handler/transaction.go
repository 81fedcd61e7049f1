package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"budget-tracker/internal/app"
	"budget-tracker/internal/repository"
	"budget-tracker/internal/transport/http/middleware"
	"budget-tracker/internal/transport/http/response"
)

type TransactionHandler struct {
	txService *app.TransactionService
}

type CreateTransactionRequest struct {
	Description      string  `json:"description" binding:"required,max=255"`
	Amount           float64 `json:"amount" binding:"required"`
	Merchant         string  `json:"merchant" binding:"required,max=128"`
	BudgetCategoryID *uint   `json:"budget_category_id"`
}

type UpdateTransactionRequest struct {
	Description      string   `json:"description" binding:"max=255"`
	Amount           *float64 `json:"amount"`
	Merchant         string   `json:"merchant" binding:"max=128"`
	BudgetCategoryID *uint    `json:"budget_category_id"`
}

func NewTransactionHandler(txService *app.TransactionService) *TransactionHandler {
	return &TransactionHandler{txService: txService}
}

func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	tx, err := h.txService.CreateTransaction(app.CreateTransactionInput{
		UserID:           userID,
		Description:      req.Description,
		Amount:           req.Amount,
		Merchant:         req.Merchant,
		BudgetCategoryID: req.BudgetCategoryID,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrBudgetNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create transaction failed")
		}
		return
	}

	response.Created(c, tx)
}

func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	filter, err := parseTransactionFilter(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		return
	}

	txs, err := h.txService.ListTransactions(userID, filter, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list transactions failed")
		return
	}

	response.OK(c, gin.H{"transactions": txs})
}

func (h *TransactionHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	txID, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	tx, err := h.txService.UpdateTransaction(app.UpdateTransactionInput{
		UserID:           userID,
		TransactionID:    txID,
		Description:      req.Description,
		Amount:           req.Amount,
		Merchant:         req.Merchant,
		BudgetCategoryID: req.BudgetCategoryID,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrTransactionNotFound), errors.Is(err, app.ErrBudgetNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "update transaction failed")
		}
		return
	}

	response.OK(c, tx)
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	txID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.txService.DeleteTransaction(userID, txID); err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrTransactionNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "delete transaction failed")
		}
		return
	}

	response.OK(c, gin.H{"deleted_id": txID})
}

func parseTransactionFilter(c *gin.Context) (repository.TransactionFilter, error) {
	var filter repository.TransactionFilter

	if raw := c.Query("min_amount"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, errors.New("invalid min_amount")
		}
		filter.MinAmount = &value
	}
	if raw := c.Query("max_amount"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, errors.New("invalid max_amount")
		}
		filter.MaxAmount = &value
	}
	if raw := c.Query("start_date"); raw != "" {
		value, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, errors.New("invalid start_date, expected YYYY-MM-DD")
		}
		filter.StartDate = &value
	}
	if raw := c.Query("end_date"); raw != "" {
		value, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, errors.New("invalid end_date, expected YYYY-MM-DD")
		}
		// Inclusive end of day.
		end := value.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}
	filter.Merchant = c.Query("merchant")
	filter.Description = c.Query("description")

	return filter, nil
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
