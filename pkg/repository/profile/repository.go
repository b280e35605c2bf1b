package profile

import (
	"context"

	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for client profiles.
type Repository interface {
	// Create inserts a new profile record from a DTO.
	Create(ctx context.Context, create *dto.ProfileCreate) error

	// Get retrieves a profile by its ID. Returns nil when none exists.
	Get(ctx context.Context, id uuid.UUID) (*dto.ProfileRead, error)

	// GetByUserID retrieves the profile owned by the given user.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*dto.ProfileRead, error)

	// ExistsByAccessCode reports whether any profile holds the given access
	// code. The login flow gates on this before the password check.
	ExistsByAccessCode(ctx context.Context, code string) (bool, error)

	// Search finds profiles whose user_id or email contains the query,
	// case-insensitively.
	Search(ctx context.Context, query string) ([]*dto.ProfileRead, error)

	// List retrieves all profiles.
	List(ctx context.Context) ([]*dto.ProfileRead, error)

	// Update updates an existing profile by its ID using a DTO.
	Update(ctx context.Context, id uuid.UUID, update *dto.ProfileUpdate) error
}
