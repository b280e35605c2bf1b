package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to create a new login identity.
type UserCreate struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email" validate:"required,email"`
	Password string    `json:"password,omitempty" validate:"required,min=6"`
}

// UserRead represents a read-optimized view of a login identity.
type UserRead struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
