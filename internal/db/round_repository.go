package db

import (
	"context"
	"errors"

	"github.com/jmcallejas/pasanaku/internal/models"
	"gorm.io/gorm"
)

// RoundRepository persists rotation rounds.
type RoundRepository struct {
	database *gorm.DB
}

func NewRoundRepository(database *gorm.DB) *RoundRepository {
	return &RoundRepository{database: database}
}

func (repo *RoundRepository) Create(ctx context.Context, round *models.Round) error {
	return repo.database.WithContext(ctx).Create(round).Error
}

func (repo *RoundRepository) FindByID(ctx context.Context, roundID string) (models.Round, error) {
	var round models.Round
	if err := repo.database.WithContext(ctx).First(&round, "id = ?", roundID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Round{}, models.ErrRoundNotFound
		}
		return models.Round{}, err
	}
	return round, nil
}

func (repo *RoundRepository) ListByGroup(ctx context.Context, groupID string) ([]models.Round, error) {
	rounds := make([]models.Round, 0)
	if err := repo.database.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("turn_number ASC").
		Find(&rounds).Error; err != nil {
		return nil, err
	}
	return rounds, nil
}

func (repo *RoundRepository) Save(ctx context.Context, round *models.Round) error {
	return repo.database.WithContext(ctx).Save(round).Error
}
