package app

import (
	"errors"
	"strings"
	"time"

	"budget-tracker/internal/model"
	"budget-tracker/internal/repository"
)

var (
	ErrBudgetNotFound = errors.New("budget category not found")
	ErrInvalidMonth   = errors.New("month must be in YYYY-MM format")
)

type BudgetService struct {
	budgetRepo *repository.BudgetRepository
	cache      SummaryInvalidator
	publisher  ActivityPublisher
}

type CreateBudgetInput struct {
	UserID   uint
	Category string
	Limit    float64
	Month    string
}

type UpdateBudgetInput struct {
	UserID   uint
	BudgetID uint
	Category string
	Limit    *float64
}

func NewBudgetService(budgetRepo *repository.BudgetRepository, cache SummaryInvalidator, publisher ActivityPublisher) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo, cache: cache, publisher: publisher}
}

func (s *BudgetService) CreateBudget(input CreateBudgetInput) (*model.BudgetCategory, error) {
	category := strings.TrimSpace(input.Category)
	if input.UserID == 0 || category == "" || input.Limit < 0 {
		return nil, ErrInvalidInput
	}
	if _, err := time.Parse("2006-01", input.Month); err != nil {
		return nil, ErrInvalidMonth
	}

	budget := &model.BudgetCategory{
		UserID:   input.UserID,
		Category: category,
		Limit:    input.Limit,
		Month:    input.Month,
	}
	if err := s.budgetRepo.Create(budget); err != nil {
		return nil, err
	}
	recordMutation(s.cache, s.publisher, input.UserID, model.ActionCreated, "budget", budget.ID)
	return budget, nil
}

func (s *BudgetService) ListBudgets(userID uint) ([]model.BudgetCategory, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.budgetRepo.ListByUserID(userID)
}

func (s *BudgetService) UpdateBudget(input UpdateBudgetInput) (*model.BudgetCategory, error) {
	if input.UserID == 0 || input.BudgetID == 0 {
		return nil, ErrInvalidInput
	}

	budget, err := s.budgetRepo.GetByIDAndUserID(input.BudgetID, input.UserID)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, ErrBudgetNotFound
	}

	if category := strings.TrimSpace(input.Category); category != "" {
		budget.Category = category
	}
	if input.Limit != nil {
		if *input.Limit < 0 {
			return nil, ErrInvalidInput
		}
		budget.Limit = *input.Limit
	}
	if err := s.budgetRepo.Update(budget); err != nil {
		return nil, err
	}
	recordMutation(s.cache, s.publisher, input.UserID, model.ActionUpdated, "budget", budget.ID)
	return budget, nil
}

func (s *BudgetService) DeleteBudget(userID, budgetID uint) error {
	if userID == 0 || budgetID == 0 {
		return ErrInvalidInput
	}

	budget, err := s.budgetRepo.GetByIDAndUserID(budgetID, userID)
	if err != nil {
		return err
	}
	if budget == nil {
		return ErrBudgetNotFound
	}
	if err := s.budgetRepo.DeleteByIDAndUserID(budgetID, userID); err != nil {
		return err
	}
	recordMutation(s.cache, s.publisher, userID, model.ActionDeleted, "budget", budgetID)
	return nil
}
