package app

import (
	"context"
	"errors"

	"budget-tracker/internal/model"
	"budget-tracker/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// SummaryCache holds a user's assembled summary between mutations.
type SummaryCache interface {
	GetSummary(ctx context.Context, userID uint) (*model.UserSummary, bool, error)
	SetSummary(ctx context.Context, userID uint, summary *model.UserSummary) error
	DeleteSummary(ctx context.Context, userID uint) error
}

type SummaryService struct {
	userRepo     *repository.UserRepository
	cardRepo     *repository.CardRepository
	budgetRepo   *repository.BudgetRepository
	txRepo       *repository.TransactionRepository
	activityRepo *repository.ActivityRepository
	cache        SummaryCache
}

func NewSummaryService(
	userRepo *repository.UserRepository,
	cardRepo *repository.CardRepository,
	budgetRepo *repository.BudgetRepository,
	txRepo *repository.TransactionRepository,
	activityRepo *repository.ActivityRepository,
	cache SummaryCache,
) *SummaryService {
	return &SummaryService{
		userRepo:     userRepo,
		cardRepo:     cardRepo,
		budgetRepo:   budgetRepo,
		txRepo:       txRepo,
		activityRepo: activityRepo,
		cache:        cache,
	}
}

// GetSummary assembles the user's cards, transactions and budgets. The cached
// copy is used when present; a miss rebuilds it from the store and refills
// the cache best effort.
func (s *SummaryService) GetSummary(userID uint) (*model.UserSummary, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	ctx := context.Background()
	if s.cache != nil {
		if cached, hit, cacheErr := s.cache.GetSummary(ctx, userID); cacheErr == nil && hit {
			return cached, nil
		}
	}

	debitCards, err := s.cardRepo.ListByUserIDAndKind(userID, model.CardKindDebit)
	if err != nil {
		return nil, err
	}
	creditCards, err := s.cardRepo.ListByUserIDAndKind(userID, model.CardKindCredit)
	if err != nil {
		return nil, err
	}
	transactions, err := s.txRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	budgets, err := s.budgetRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}

	summary := &model.UserSummary{
		DebitCards:   debitCards,
		CreditCards:  creditCards,
		Transactions: transactions,
		Budgets:      budgets,
	}
	if s.cache != nil {
		_ = s.cache.SetSummary(ctx, userID, summary)
	}
	return summary, nil
}

// CategorySpending is one row of the spending analytics: how much was spent
// against a budget category's limit.
type CategorySpending struct {
	BudgetCategoryID uint    `json:"budget_category_id,omitempty"`
	Category         string  `json:"category"`
	Limit            float64 `json:"limit"`
	Spent            float64 `json:"spent"`
}

// GetSpendingAnalytics returns spent-vs-limit per budget category.
func (s *SummaryService) GetSpendingAnalytics(userID uint) ([]CategorySpending, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}

	budgets, err := s.budgetRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.txRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	return SpendingByCategory(budgets, transactions), nil
}

// SpendingByCategory aggregates transaction amounts per budget category, in
// budget order. Transactions without a category land in a trailing
// "Uncategorized" row with a zero limit; the row only appears when such
// transactions exist.
func SpendingByCategory(budgets []model.BudgetCategory, transactions []model.Transaction) []CategorySpending {
	spent := make(map[uint]float64)
	var uncategorized float64
	var hasUncategorized bool

	for _, tx := range transactions {
		if tx.BudgetCategoryID != nil {
			spent[*tx.BudgetCategoryID] += tx.Amount
		} else {
			uncategorized += tx.Amount
			hasUncategorized = true
		}
	}

	rows := make([]CategorySpending, 0, len(budgets)+1)
	for _, budget := range budgets {
		rows = append(rows, CategorySpending{
			BudgetCategoryID: budget.ID,
			Category:         budget.Category,
			Limit:            budget.Limit,
			Spent:            spent[budget.ID],
		})
	}
	if hasUncategorized {
		rows = append(rows, CategorySpending{
			Category: "Uncategorized",
			Spent:    uncategorized,
		})
	}
	return rows
}

// ListActivity returns the user's most recent persisted activity events.
func (s *SummaryService) ListActivity(userID uint, limit int) ([]model.ActivityEvent, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.activityRepo.ListRecentByUserID(userID, limit)
}
