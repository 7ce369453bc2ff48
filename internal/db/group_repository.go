package db

import (
	"context"
	"errors"

	"github.com/jmcallejas/pasanaku/internal/models"
	"gorm.io/gorm"
)

// GroupRepository persists Pasanaku groups.
type GroupRepository struct {
	database *gorm.DB
}

func NewGroupRepository(database *gorm.DB) *GroupRepository {
	return &GroupRepository{database: database}
}

func (repo *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	return repo.database.WithContext(ctx).Create(group).Error
}

func (repo *GroupRepository) FindByID(ctx context.Context, groupID string) (models.Group, error) {
	var group models.Group
	if err := repo.database.WithContext(ctx).First(&group, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Group{}, models.ErrGroupNotFound
		}
		return models.Group{}, err
	}
	return group, nil
}

func (repo *GroupRepository) ListByStatus(ctx context.Context, status string) ([]models.Group, error) {
	groups := make([]models.Group, 0)
	if err := repo.database.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (repo *GroupRepository) Save(ctx context.Context, group *models.Group) error {
	return repo.database.WithContext(ctx).Save(group).Error
}

func (repo *GroupRepository) Delete(ctx context.Context, groupID string) error {
	return repo.database.WithContext(ctx).Delete(&models.Group{}, "id = ?", groupID).Error
}
