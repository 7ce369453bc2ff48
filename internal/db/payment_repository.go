package db

import (
	"context"
	"errors"

	"github.com/jmcallejas/pasanaku/internal/models"
	"gorm.io/gorm"
)

// PaymentRepository persists per-round contributions.
type PaymentRepository struct {
	database *gorm.DB
}

func NewPaymentRepository(database *gorm.DB) *PaymentRepository {
	return &PaymentRepository{database: database}
}

func (repo *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if err := repo.database.WithContext(ctx).Create(payment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrPaymentExists
		}
		return err
	}
	return nil
}

func (repo *PaymentRepository) FindByPayerAndRound(ctx context.Context, payerID, roundID string) (models.Payment, error) {
	var payment models.Payment
	if err := repo.database.WithContext(ctx).
		Where("payer_id = ? AND round_id = ?", payerID, roundID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Payment{}, models.ErrPaymentNotFound
		}
		return models.Payment{}, err
	}
	return payment, nil
}

func (repo *PaymentRepository) ListByRound(ctx context.Context, roundID string) ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	if err := repo.database.WithContext(ctx).
		Where("round_id = ?", roundID).
		Order("created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
