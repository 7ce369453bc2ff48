package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
	PaymentStatusLate      = "late"
	PaymentStatusMissed    = "missed"
)

// Payment records a member's contribution for one round. At most one
// payment exists per (round_id, payer_id).
type Payment struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	RoundID   string     `gorm:"size:36;not null;uniqueIndex:idx_payments_round_payer" json:"round_id"`
	PayerID   string     `gorm:"size:36;not null;uniqueIndex:idx_payments_round_payer" json:"payer_id"`
	Amount    float64    `gorm:"not null" json:"amount"`
	Status    string     `gorm:"size:16;not null;default:pending" json:"status"`
	PaidAt    *time.Time `json:"paid_at"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}

func (p *Payment) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Confirm marks the payment received, stamping paid_at.
func (p *Payment) Confirm(paidAt time.Time) {
	p.Status = PaymentStatusConfirmed
	p.PaidAt = &paidAt
}

// MarkLate records a payment received after the round's due date.
// Not reached by any current use case; kept for parity with the
// payment lifecycle.
func (p *Payment) MarkLate(paidAt time.Time) {
	p.Status = PaymentStatusLate
	p.PaidAt = &paidAt
}

// MarkMissed records that the contribution was never made.
func (p *Payment) MarkMissed() {
	p.Status = PaymentStatusMissed
}
