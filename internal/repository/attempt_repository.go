package repository

import (
	"restaurant_storefront/internal/models"

	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *models.CheckoutAttempt) error
	GetByRef(attemptRef string) (*models.CheckoutAttempt, error)
	GetByCartID(cartID string) ([]models.CheckoutAttempt, error)
	Update(attempt *models.CheckoutAttempt) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *models.CheckoutAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) GetByRef(attemptRef string) (*models.CheckoutAttempt, error) {
	var attempt models.CheckoutAttempt
	err := r.db.Where("attempt_ref = ?", attemptRef).First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) GetByCartID(cartID string) ([]models.CheckoutAttempt, error) {
	var attempts []models.CheckoutAttempt
	err := r.db.Where("cart_id = ?", cartID).Order("created_at desc").Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) Update(attempt *models.CheckoutAttempt) error {
	return r.db.Save(attempt).Error
}
