package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffUser is an account allowed to change inventory records and use the
// admin site.
type StaffUser struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Username     string     `gorm:"size:150;not null;uniqueIndex" json:"username"`
	PasswordHash string     `gorm:"not null" json:"-"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

func (StaffUser) TableName() string {
	return "staff_users"
}

func (u *StaffUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u StaffUser) PrimaryKey() uuid.UUID {
	return u.ID
}

func (u StaffUser) String() string {
	return u.Username
}
