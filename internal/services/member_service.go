package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmcallejas/pasanaku/internal/models"
)

// MemberRepository is the persistence surface the membership use cases
// need.
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	FindByID(ctx context.Context, memberID string) (models.Member, error)
	FindByUserAndGroup(ctx context.Context, userID, groupID string) (models.Member, error)
	ListByGroup(ctx context.Context, groupID string) ([]models.Member, error)
	CountActive(ctx context.Context, groupID string) (int64, error)
	Delete(ctx context.Context, memberID string) error
}

// MemberService implements group membership administration.
type MemberService struct {
	members MemberRepository
	groups  GroupRepository
}

func NewMemberService(members MemberRepository, groups GroupRepository) *MemberService {
	return &MemberService{members: members, groups: groups}
}

// Add admits a user into a group. Host only; the group must have room
// and the user must not already hold a membership row, whatever its
// status. Admission auto-confirms: no pending-invite workflow.
//
// The capacity and duplicate checks are read-then-write; the unique
// (group_id, user_id) index backstops concurrent admissions.
func (s *MemberService) Add(ctx context.Context, groupID, userID, requesterID string) (models.Member, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return models.Member{}, err
	}
	if group.HostID != requesterID {
		return models.Member{}, models.ErrNotHost
	}

	activeCount, err := s.members.CountActive(ctx, groupID)
	if err != nil {
		return models.Member{}, fmt.Errorf("count members: %w", err)
	}
	if activeCount >= int64(group.MaxMembers) {
		return models.Member{}, models.ErrGroupFull
	}

	if _, err := s.members.FindByUserAndGroup(ctx, userID, groupID); err == nil {
		return models.Member{}, models.ErrAlreadyMember
	} else if !errors.Is(err, models.ErrMemberNotFound) {
		return models.Member{}, fmt.Errorf("check membership: %w", err)
	}

	member := models.Member{
		GroupID: groupID,
		UserID:  userID,
	}
	member.Confirm()
	if err := s.members.Create(ctx, &member); err != nil {
		return models.Member{}, err
	}
	return member, nil
}

// List returns every membership of a group.
func (s *MemberService) List(ctx context.Context, groupID string) ([]models.Member, error) {
	if _, err := s.groups.FindByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.members.ListByGroup(ctx, groupID)
}

// Remove deletes a membership; host only.
func (s *MemberService) Remove(ctx context.Context, groupID, memberID, requesterID string) error {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.HostID != requesterID {
		return models.ErrNotHost
	}
	if _, err := s.members.FindByID(ctx, memberID); err != nil {
		return err
	}
	return s.members.Delete(ctx, memberID)
}
