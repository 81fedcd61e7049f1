package app

import (
	"errors"
	"strings"

	"budget-tracker/internal/model"
	"budget-tracker/internal/repository"
)

var ErrCardNotFound = errors.New("card not found")

type CardService struct {
	cardRepo  *repository.CardRepository
	cache     SummaryInvalidator
	publisher ActivityPublisher
}

type CreateCardInput struct {
	UserID  uint
	Kind    string
	Name    string
	Balance float64
}

type UpdateCardInput struct {
	UserID  uint
	CardID  uint
	Name    string
	Balance *float64
}

func NewCardService(cardRepo *repository.CardRepository, cache SummaryInvalidator, publisher ActivityPublisher) *CardService {
	return &CardService{cardRepo: cardRepo, cache: cache, publisher: publisher}
}

func (s *CardService) CreateCard(input CreateCardInput) (*model.Card, error) {
	name := strings.TrimSpace(input.Name)
	if input.UserID == 0 || name == "" {
		return nil, ErrInvalidInput
	}
	if input.Kind != model.CardKindDebit && input.Kind != model.CardKindCredit {
		return nil, ErrInvalidInput
	}

	card := &model.Card{
		UserID:  input.UserID,
		Kind:    input.Kind,
		Name:    name,
		Balance: input.Balance,
	}
	if err := s.cardRepo.Create(card); err != nil {
		return nil, err
	}
	recordMutation(s.cache, s.publisher, input.UserID, model.ActionCreated, "card", card.ID)
	return card, nil
}

func (s *CardService) ListCards(userID uint, kind string) ([]model.Card, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.cardRepo.ListByUserIDAndKind(userID, kind)
}

func (s *CardService) UpdateCard(input UpdateCardInput) (*model.Card, error) {
	if input.UserID == 0 || input.CardID == 0 {
		return nil, ErrInvalidInput
	}

	card, err := s.cardRepo.GetByIDAndUserID(input.CardID, input.UserID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		card.Name = name
	}
	if input.Balance != nil {
		card.Balance = *input.Balance
	}
	if err := s.cardRepo.Update(card); err != nil {
		return nil, err
	}
	recordMutation(s.cache, s.publisher, input.UserID, model.ActionUpdated, "card", card.ID)
	return card, nil
}

func (s *CardService) DeleteCard(userID, cardID uint) error {
	if userID == 0 || cardID == 0 {
		return ErrInvalidInput
	}

	card, err := s.cardRepo.GetByIDAndUserID(cardID, userID)
	if err != nil {
		return err
	}
	if card == nil {
		return ErrCardNotFound
	}
	if err := s.cardRepo.DeleteByIDAndUserID(cardID, userID); err != nil {
		return err
	}
	recordMutation(s.cache, s.publisher, userID, model.ActionDeleted, "card", cardID)
	return nil
}
