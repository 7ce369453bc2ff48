package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmcallejas/pasanaku/internal/models"
)

// PaymentRepository is the persistence surface the payment use cases
// need.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByPayerAndRound(ctx context.Context, payerID, roundID string) (models.Payment, error)
	ListByRound(ctx context.Context, roundID string) ([]models.Payment, error)
}

// PaymentService implements per-round contribution registration.
type PaymentService struct {
	payments PaymentRepository
	rounds   RoundRepository
}

func NewPaymentService(payments PaymentRepository, rounds RoundRepository) *PaymentService {
	return &PaymentService{payments: payments, rounds: rounds}
}

// Register records a payer's contribution for a round and confirms it
// immediately, stamping paid_at. At most one payment exists per
// (payer, round); the round's own status does not gate registration.
//
// The duplicate check is read-then-write; the unique (round_id,
// payer_id) index backstops concurrent registrations.
func (s *PaymentService) Register(ctx context.Context, roundID, payerID string, amount float64) (models.Payment, error) {
	if _, err := s.rounds.FindByID(ctx, roundID); err != nil {
		return models.Payment{}, err
	}

	if _, err := s.payments.FindByPayerAndRound(ctx, payerID, roundID); err == nil {
		return models.Payment{}, models.ErrPaymentExists
	} else if !errors.Is(err, models.ErrPaymentNotFound) {
		return models.Payment{}, fmt.Errorf("check payment: %w", err)
	}

	payment := models.Payment{
		RoundID: roundID,
		PayerID: payerID,
		Amount:  amount,
	}
	payment.Confirm(time.Now().UTC())
	if err := s.payments.Create(ctx, &payment); err != nil {
		return models.Payment{}, fmt.Errorf("create payment: %w", err)
	}
	return payment, nil
}

// List returns every payment registered against a round.
func (s *PaymentService) List(ctx context.Context, roundID string) ([]models.Payment, error) {
	if _, err := s.rounds.FindByID(ctx, roundID); err != nil {
		return nil, err
	}
	return s.payments.ListByRound(ctx, roundID)
}
