package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoundStatusPending    = "pending"
	RoundStatusInProgress = "in_progress"
	RoundStatusCompleted  = "completed"
	RoundStatusSkipped    = "skipped"
)

// Round is one turn of the rotation: the collection period in which
// one beneficiary member receives the pooled total.
type Round struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	GroupID       string    `gorm:"size:36;not null;index" json:"group_id"`
	BeneficiaryID string    `gorm:"size:36;not null" json:"beneficiary_id"`
	TurnNumber    int       `gorm:"not null" json:"turn_number"`
	DueDate       time.Time `gorm:"not null" json:"due_date"`
	TotalAmount   float64   `gorm:"not null" json:"total_amount"`
	Status        string    `gorm:"size:16;not null;default:pending" json:"status"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

func (r *Round) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Start opens the collection period.
func (r *Round) Start() {
	r.Status = RoundStatusInProgress
}

// Complete records that the pot was delivered.
func (r *Round) Complete() {
	r.Status = RoundStatusCompleted
}

// Skip marks the beneficiary as skipped for this turn.
func (r *Round) Skip() {
	r.Status = RoundStatusSkipped
}

// ValidRoundStatus reports whether value names a known round state.
func ValidRoundStatus(value string) bool {
	switch value {
	case RoundStatusPending, RoundStatusInProgress, RoundStatusCompleted, RoundStatusSkipped:
		return true
	}
	return false
}
