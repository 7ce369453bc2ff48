package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GroupStatusActive    = "active"
	GroupStatusCompleted = "completed"
	GroupStatusCancelled = "cancelled"
)

const (
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

// Group is the aggregate root of a Pasanaku savings circle: members
// contribute AmountPerMember each period and one member receives the
// pot per round.
type Group struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Description     string    `gorm:"size:500;not null;default:''" json:"description"`
	HostID          string    `gorm:"size:36;not null;index" json:"host_id"`
	AmountPerMember float64   `gorm:"not null" json:"amount_per_member"`
	Frequency       string    `gorm:"size:16;not null;default:monthly" json:"frequency"`
	MaxMembers      int       `gorm:"not null" json:"max_members"`
	Status          string    `gorm:"size:16;not null;default:active" json:"status"`
	StartDate       time.Time `gorm:"not null" json:"start_date"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

func (g *Group) BeforeCreate(*gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// Cancel marks the group cancelled; terminal.
func (g *Group) Cancel() {
	g.Status = GroupStatusCancelled
}

// Complete marks the group completed after all rounds finish; terminal.
func (g *Group) Complete() {
	g.Status = GroupStatusCompleted
}

// IsActive reports whether the group can still accept activity.
func (g *Group) IsActive() bool {
	return g.Status == GroupStatusActive
}

// ValidFrequency reports whether value is a known contribution period.
func ValidFrequency(value string) bool {
	switch value {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}
