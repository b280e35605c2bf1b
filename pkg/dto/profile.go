package dto

import (
	"time"

	"github.com/google/uuid"
)

// ProfileCreate represents the data needed to create a client profile.
type ProfileCreate struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email" validate:"required,email"`
	Phone      string    `json:"phone_number"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	ZipCode    string    `json:"zip_code"`
	Country    string    `json:"country"`
	AccessCode string    `json:"access_code"`
}

// ProfileUpdate represents the fields the update utility may change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

// ProfileRead represents a read-optimized view of a client profile.
type ProfileRead struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone_number"`
	Address    string    `json:"address,omitempty"`
	City       string    `json:"city,omitempty"`
	State      string    `json:"state,omitempty"`
	ZipCode    string    `json:"zip_code,omitempty"`
	Country    string    `json:"country,omitempty"`
	AccessCode string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
