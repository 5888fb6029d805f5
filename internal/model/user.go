package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of roles a user can hold.
type Role string

const (
	// RoleClient is a restaurant owner.
	RoleClient Role = "CLIENT"
	// RoleSuperadmin can administer every restaurant.
	RoleSuperadmin Role = "SUPERADMIN"
)

// User represents an authenticated user in the system.
// Created on first successful login for an email; the role may only be
// upgraded from CLIENT to SUPERADMIN, never downgraded.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Avatar    *string   `json:"avatar,omitempty" gorm:"size:512"`
	Role      Role      `json:"role" gorm:"size:20;not null;default:'CLIENT'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets the UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
