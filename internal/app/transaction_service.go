package app

import (
	"errors"
	"strings"

	"budget-tracker/internal/model"
	"budget-tracker/internal/repository"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionService struct {
	txRepo     *repository.TransactionRepository
	budgetRepo *repository.BudgetRepository
	cache      SummaryInvalidator
	publisher  ActivityPublisher
}

type CreateTransactionInput struct {
	UserID           uint
	Description      string
	Amount           float64
	Merchant         string
	BudgetCategoryID *uint
}

type UpdateTransactionInput struct {
	UserID           uint
	TransactionID    uint
	Description      string
	Amount           *float64
	Merchant         string
	BudgetCategoryID *uint
}

func NewTransactionService(
	txRepo *repository.TransactionRepository,
	budgetRepo *repository.BudgetRepository,
	cache SummaryInvalidator,
	publisher ActivityPublisher,
) *TransactionService {
	return &TransactionService{txRepo: txRepo, budgetRepo: budgetRepo, cache: cache, publisher: publisher}
}

func (s *TransactionService) CreateTransaction(input CreateTransactionInput) (*model.Transaction, error) {
	description := strings.TrimSpace(input.Description)
	merchant := strings.TrimSpace(input.Merchant)
	if input.UserID == 0 || description == "" || merchant == "" {
		return nil, ErrInvalidInput
	}
	if err := s.checkCategory(input.UserID, input.BudgetCategoryID); err != nil {
		return nil, err
	}

	tx := &model.Transaction{
		UserID:           input.UserID,
		BudgetCategoryID: input.BudgetCategoryID,
		Description:      description,
		Amount:           input.Amount,
		Merchant:         merchant,
	}
	if err := s.txRepo.Create(tx); err != nil {
		return nil, err
	}
	recordMutation(s.cache, s.publisher, input.UserID, model.ActionCreated, "transaction", tx.ID)
	return tx, nil
}

func (s *TransactionService) ListTransactions(userID uint, filter repository.TransactionFilter, page, limit int) ([]model.Transaction, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.txRepo.ListPage(userID, filter, page, limit)
}

func (s *TransactionService) UpdateTransaction(input UpdateTransactionInput) (*model.Transaction, error) {
	if input.UserID == 0 || input.TransactionID == 0 {
		return nil, ErrInvalidInput
	}

	tx, err := s.txRepo.GetByIDAndUserID(input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}

	if description := strings.TrimSpace(input.Description); description != "" {
		tx.Description = description
	}
	if merchant := strings.TrimSpace(input.Merchant); merchant != "" {
		tx.Merchant = merchant
	}
	if input.Amount != nil {
		tx.Amount = *input.Amount
	}
	if input.BudgetCategoryID != nil {
		if err := s.checkCategory(input.UserID, input.BudgetCategoryID); err != nil {
			return nil, err
		}
		tx.BudgetCategoryID = input.BudgetCategoryID
	}
	if err := s.txRepo.Update(tx); err != nil {
		return nil, err
	}
	recordMutation(s.cache, s.publisher, input.UserID, model.ActionUpdated, "transaction", tx.ID)
	return tx, nil
}

func (s *TransactionService) DeleteTransaction(userID, txID uint) error {
	if userID == 0 || txID == 0 {
		return ErrInvalidInput
	}

	tx, err := s.txRepo.GetByIDAndUserID(txID, userID)
	if err != nil {
		return err
	}
	if tx == nil {
		return ErrTransactionNotFound
	}
	if err := s.txRepo.DeleteByIDAndUserID(txID, userID); err != nil {
		return err
	}
	recordMutation(s.cache, s.publisher, userID, model.ActionDeleted, "transaction", txID)
	return nil
}

// checkCategory verifies that a referenced budget category exists and belongs
// to the user. A nil id means the transaction is uncategorized, which is fine.
func (s *TransactionService) checkCategory(userID uint, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	if *categoryID == 0 {
		return ErrInvalidInput
	}
	budget, err := s.budgetRepo.GetByIDAndUserID(*categoryID, userID)
	if err != nil {
		return err
	}
	if budget == nil {
		return ErrBudgetNotFound
	}
	return nil
}
