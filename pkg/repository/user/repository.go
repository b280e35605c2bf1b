package user

import (
	"context"

	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for login identities.
type Repository interface {
	// Create inserts a new user record from a DTO.
	Create(ctx context.Context, create *dto.UserCreate) error

	// Get retrieves a user by its ID. Returns nil when no user exists.
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)

	// GetByEmail retrieves a user by email. Returns nil when no user exists.
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
