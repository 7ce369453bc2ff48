package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MemberStatusPending = "pending"
	MemberStatusActive  = "active"
	MemberStatusRemoved = "removed"
)

// Member is the join-relationship between a user and a group, distinct
// from the user identity itself. (group_id, user_id) is unique.
type Member struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	GroupID    string    `gorm:"size:36;not null;uniqueIndex:idx_members_group_user" json:"group_id"`
	UserID     string    `gorm:"size:36;not null;uniqueIndex:idx_members_group_user" json:"user_id"`
	TurnNumber *int      `json:"turn_number"`
	Status     string    `gorm:"size:16;not null;default:pending" json:"status"`
	JoinedAt   time.Time `gorm:"not null;autoCreateTime" json:"joined_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (m *Member) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Confirm activates the membership. Admission auto-confirms, so the
// pending state is never produced by any current use case.
func (m *Member) Confirm() {
	m.Status = MemberStatusActive
}

// Remove marks the membership removed.
func (m *Member) Remove() {
	m.Status = MemberStatusRemoved
}
