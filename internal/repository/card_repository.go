package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"budget-tracker/internal/model"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) Create(card *model.Card) error {
	if err := r.db.Create(card).Error; err != nil {
		return fmt.Errorf("create card failed: %w", err)
	}
	return nil
}

func (r *CardRepository) ListByUserIDAndKind(userID uint, kind string) ([]model.Card, error) {
	var cards []model.Card
	if err := r.db.Where("user_id = ? AND kind = ?", userID, kind).Order("created_at ASC").Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("list cards failed: %w", err)
	}
	return cards, nil
}

func (r *CardRepository) GetByIDAndUserID(cardID, userID uint) (*model.Card, error) {
	var card model.Card
	if err := r.db.Where("id = ? AND user_id = ?", cardID, userID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get card failed: %w", err)
	}
	return &card, nil
}

func (r *CardRepository) Update(card *model.Card) error {
	if err := r.db.Save(card).Error; err != nil {
		return fmt.Errorf("update card failed: %w", err)
	}
	return nil
}

func (r *CardRepository) DeleteByIDAndUserID(cardID, userID uint) error {
	if err := r.db.Where("id = ? AND user_id = ?", cardID, userID).Delete(&model.Card{}).Error; err != nil {
		return fmt.Errorf("delete card failed: %w", err)
	}
	return nil
}
