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

type SummaryHandler struct {
	summaryService *app.SummaryService
}

func NewSummaryHandler(summaryService *app.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	summary, err := h.summaryService.GetSummary(userID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			// The token outlived its user; verify-time existence is not
			// guaranteed.
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "fetch summary failed")
		}
		return
	}

	response.OK(c, summary)
}

func (h *SummaryHandler) GetSpendingAnalytics(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	rows, err := h.summaryService.GetSpendingAnalytics(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "fetch spending analytics failed")
		return
	}

	response.OK(c, gin.H{"categories": rows})
}

func (h *SummaryHandler) ListActivity(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	events, err := h.summaryService.ListActivity(userID, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list activity failed")
		return
	}

	response.OK(c, gin.H{"events": events})
}
