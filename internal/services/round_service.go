package services

import (
	"context"
	"fmt"

	"github.com/jmcallejas/pasanaku/internal/models"
)

// RoundRepository is the persistence surface the round use cases need.
type RoundRepository interface {
	Create(ctx context.Context, round *models.Round) error
	FindByID(ctx context.Context, roundID string) (models.Round, error)
	ListByGroup(ctx context.Context, groupID string) ([]models.Round, error)
	Save(ctx context.Context, round *models.Round) error
}

// RoundService implements round creation and host-driven status
// transitions.
type RoundService struct {
	rounds RoundRepository
	groups GroupRepository
}

func NewRoundService(rounds RoundRepository, groups GroupRepository) *RoundService {
	return &RoundService{rounds: rounds, groups: groups}
}

// Create opens a new round inside a group; host only.
func (s *RoundService) Create(ctx context.Context, groupID string, round models.Round, requesterID string) (models.Round, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return models.Round{}, err
	}
	if group.HostID != requesterID {
		return models.Round{}, models.ErrNotHost
	}

	round.GroupID = groupID
	round.Status = models.RoundStatusPending
	if err := s.rounds.Create(ctx, &round); err != nil {
		return models.Round{}, fmt.Errorf("create round: %w", err)
	}
	return round, nil
}

// List returns every round of a group.
func (s *RoundService) List(ctx context.Context, groupID string) ([]models.Round, error) {
	if _, err := s.groups.FindByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.rounds.ListByGroup(ctx, groupID)
}

// Get resolves a round by id within a group. A round belonging to a
// different group is reported as missing.
func (s *RoundService) Get(ctx context.Context, groupID, roundID string) (models.Round, error) {
	if _, err := s.groups.FindByID(ctx, groupID); err != nil {
		return models.Round{}, err
	}
	round, err := s.rounds.FindByID(ctx, roundID)
	if err != nil {
		return models.Round{}, err
	}
	if round.GroupID != groupID {
		return models.Round{}, models.ErrRoundNotFound
	}
	return round, nil
}

// UpdateStatus moves a round to the named state; host only. Any
// recognized target is applied from any source state: the lifecycle
// deliberately carries no legality matrix.
func (s *RoundService) UpdateStatus(ctx context.Context, groupID, roundID, status, requesterID string) (models.Round, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return models.Round{}, err
	}
	if group.HostID != requesterID {
		return models.Round{}, models.ErrNotHost
	}
	round, err := s.rounds.FindByID(ctx, roundID)
	if err != nil {
		return models.Round{}, err
	}

	if !models.ValidRoundStatus(status) {
		return models.Round{}, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	switch status {
	case models.RoundStatusInProgress:
		round.Start()
	case models.RoundStatusCompleted:
		round.Complete()
	case models.RoundStatusSkipped:
		round.Skip()
	case models.RoundStatusPending:
		// recognized but applies no transition
	}

	if err := s.rounds.Save(ctx, &round); err != nil {
		return models.Round{}, fmt.Errorf("save round: %w", err)
	}
	return round, nil
}
