package repository

import (
	"restaurant_storefront/internal/models"

	"gorm.io/gorm"
)

type ReconciliationRepository interface {
	Create(record *models.PaymentReconciliation) error
	GetByID(id uint) (*models.PaymentReconciliation, error)
	GetUnresolved() ([]models.PaymentReconciliation, error)
	MarkResolved(id uint) error
}

type reconciliationRepository struct {
	db *gorm.DB
}

func NewReconciliationRepository(db *gorm.DB) ReconciliationRepository {
	return &reconciliationRepository{db: db}
}

func (r *reconciliationRepository) Create(record *models.PaymentReconciliation) error {
	return r.db.Create(record).Error
}

func (r *reconciliationRepository) GetByID(id uint) (*models.PaymentReconciliation, error) {
	var record models.PaymentReconciliation
	err := r.db.First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *reconciliationRepository) GetUnresolved() ([]models.PaymentReconciliation, error) {
	var records []models.PaymentReconciliation
	err := r.db.Where("resolved = ?", false).Order("created_at desc").Find(&records).Error
	return records, err
}

func (r *reconciliationRepository) MarkResolved(id uint) error {
	return r.db.Model(&models.PaymentReconciliation{}).Where("id = ?", id).Update("resolved", true).Error
}
