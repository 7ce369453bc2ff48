package db

import (
	"context"
	"errors"

	"github.com/jmcallejas/pasanaku/internal/models"
	"gorm.io/gorm"
)

// MemberRepository persists group memberships.
type MemberRepository struct {
	database *gorm.DB
}

func NewMemberRepository(database *gorm.DB) *MemberRepository {
	return &MemberRepository{database: database}
}

func (repo *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	if err := repo.database.WithContext(ctx).Create(member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrAlreadyMember
		}
		return err
	}
	return nil
}

func (repo *MemberRepository) FindByID(ctx context.Context, memberID string) (models.Member, error) {
	var member models.Member
	if err := repo.database.WithContext(ctx).First(&member, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Member{}, models.ErrMemberNotFound
		}
		return models.Member{}, err
	}
	return member, nil
}

// FindByUserAndGroup matches any membership row for the pair,
// whatever its status.
func (repo *MemberRepository) FindByUserAndGroup(ctx context.Context, userID, groupID string) (models.Member, error) {
	var member models.Member
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Member{}, models.ErrMemberNotFound
		}
		return models.Member{}, err
	}
	return member, nil
}

func (repo *MemberRepository) ListByGroup(ctx context.Context, groupID string) ([]models.Member, error) {
	members := make([]models.Member, 0)
	if err := repo.database.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (repo *MemberRepository) CountActive(ctx context.Context, groupID string) (int64, error) {
	var count int64
	if err := repo.database.WithContext(ctx).Model(&models.Member{}).
		Where("group_id = ? AND status = ?", groupID, models.MemberStatusActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *MemberRepository) Delete(ctx context.Context, memberID string) error {
	return repo.database.WithContext(ctx).Delete(&models.Member{}, "id = ?", memberID).Error
}
