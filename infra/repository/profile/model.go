package profile

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile represents a client profile record. One profile per user; the
// access code is the secondary secret checked at login.
type Profile struct {
	gorm.Model
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	FirstName  string    `gorm:"size:100"`
	LastName   string    `gorm:"size:100"`
	FullName   string    `gorm:"size:200"`
	Email      string    `gorm:"index;size:255"`
	Phone      string    `gorm:"size:32"`
	Address    string    `gorm:"size:255"`
	City       string    `gorm:"size:100"`
	State      string    `gorm:"size:100"`
	ZipCode    string    `gorm:"size:16"`
	Country    string    `gorm:"size:100"`
	AccessCode string    `gorm:"index;size:32;not null"`
}

// TableName specifies the table name for the Profile model.
func (Profile) TableName() string {
	return "profiles"
}
