package user

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a login identity record in the database.
type User struct {
	gorm.Model
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null;size:255" validate:"required,email"`
	Password string    `gorm:"not null" validate:"required,min=6"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
