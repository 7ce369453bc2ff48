package services

import (
	"context"
	"fmt"

	"github.com/jmcallejas/pasanaku/internal/models"
)

// GroupRepository is the persistence surface the group use cases need.
type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	FindByID(ctx context.Context, groupID string) (models.Group, error)
	ListByStatus(ctx context.Context, status string) ([]models.Group, error)
	Save(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, groupID string) error
}

// GroupService implements the group use cases. Every mutation verifies
// the requester is the group's host; existence is resolved before
// authorization.
type GroupService struct {
	groups GroupRepository
}

func NewGroupService(groups GroupRepository) *GroupService {
	return &GroupService{groups: groups}
}

// Create opens a new group with the requester as host.
func (s *GroupService) Create(ctx context.Context, group models.Group, hostID string) (models.Group, error) {
	if group.Frequency == "" {
		group.Frequency = models.FrequencyMonthly
	}
	if !models.ValidFrequency(group.Frequency) {
		return models.Group{}, fmt.Errorf("%w: %q", models.ErrInvalidFrequency, group.Frequency)
	}
	group.HostID = hostID
	group.Status = models.GroupStatusActive
	if err := s.groups.Create(ctx, &group); err != nil {
		return models.Group{}, fmt.Errorf("create group: %w", err)
	}
	return group, nil
}

// ListActive returns every group still accepting activity.
func (s *GroupService) ListActive(ctx context.Context) ([]models.Group, error) {
	return s.groups.ListByStatus(ctx, models.GroupStatusActive)
}

// Get resolves a group by id.
func (s *GroupService) Get(ctx context.Context, groupID string) (models.Group, error) {
	return s.groups.FindByID(ctx, groupID)
}

// GroupPatch carries the optional fields of a partial group update.
type GroupPatch struct {
	Name            *string
	Description     *string
	AmountPerMember *float64
	Frequency       *string
	MaxMembers      *int
}

// Update applies a partial update; host only.
func (s *GroupService) Update(ctx context.Context, groupID string, patch GroupPatch, requesterID string) (models.Group, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return models.Group{}, err
	}
	if group.HostID != requesterID {
		return models.Group{}, models.ErrNotHost
	}

	if patch.Name != nil {
		group.Name = *patch.Name
	}
	if patch.Description != nil {
		group.Description = *patch.Description
	}
	if patch.AmountPerMember != nil {
		group.AmountPerMember = *patch.AmountPerMember
	}
	if patch.Frequency != nil {
		if !models.ValidFrequency(*patch.Frequency) {
			return models.Group{}, fmt.Errorf("%w: %q", models.ErrInvalidFrequency, *patch.Frequency)
		}
		group.Frequency = *patch.Frequency
	}
	if patch.MaxMembers != nil {
		group.MaxMembers = *patch.MaxMembers
	}

	if err := s.groups.Save(ctx, &group); err != nil {
		return models.Group{}, fmt.Errorf("save group: %w", err)
	}
	return group, nil
}

// Delete removes a group; host only.
func (s *GroupService) Delete(ctx context.Context, groupID, requesterID string) error {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.HostID != requesterID {
		return models.ErrNotHost
	}
	return s.groups.Delete(ctx, groupID)
}
