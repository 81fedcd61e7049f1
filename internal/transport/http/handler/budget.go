package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"budget-tracker/internal/app"
	"budget-tracker/internal/transport/http/middleware"
	"budget-tracker/internal/transport/http/response"
)

type BudgetHandler struct {
	budgetService *app.BudgetService
}

type CreateBudgetRequest struct {
	Category string  `json:"category" binding:"required,max=128"`
	Limit    float64 `json:"limit" binding:"required,gte=0"`
	Month    string  `json:"month" binding:"required,len=7"`
}

type UpdateBudgetRequest struct {
	Category string   `json:"category" binding:"max=128"`
	Limit    *float64 `json:"limit"`
}

func NewBudgetHandler(budgetService *app.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

func (h *BudgetHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	budget, err := h.budgetService.CreateBudget(app.CreateBudgetInput{
		UserID:   userID,
		Category: req.Category,
		Limit:    req.Limit,
		Month:    req.Month,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput), errors.Is(err, app.ErrInvalidMonth):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create budget category failed")
		}
		return
	}

	response.Created(c, budget)
}

func (h *BudgetHandler) List(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	budgets, err := h.budgetService.ListBudgets(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list budget categories failed")
		return
	}

	response.OK(c, budgets)
}

func (h *BudgetHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	budgetID, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	budget, err := h.budgetService.UpdateBudget(app.UpdateBudgetInput{
		UserID:   userID,
		BudgetID: budgetID,
		Category: req.Category,
		Limit:    req.Limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrBudgetNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "update budget category failed")
		}
		return
	}

	response.OK(c, budget)
}

func (h *BudgetHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	budgetID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.budgetService.DeleteBudget(userID, budgetID); err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrBudgetNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "delete budget category failed")
		}
		return
	}

	response.OK(c, gin.H{"deleted_id": budgetID})
}
