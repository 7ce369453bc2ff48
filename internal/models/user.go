// Package models contains the persistent domain entities.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleHost   = "host"
	RolePlayer = "player"
)

// User is an authenticated participant. The password hash is never
// serialized.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	FullName     string    `gorm:"size:100;not null" json:"full_name"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone        string    `gorm:"size:20;not null" json:"phone"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"size:16;not null;default:player" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Deactivate soft-disables the account; user rows are never hard
// purged by the normal flow.
func (u *User) Deactivate() {
	u.IsActive = false
}

func (u *User) Activate() {
	u.IsActive = true
}
