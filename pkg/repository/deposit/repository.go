package deposit

import (
	"context"
	"time"

	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for mobile check deposits.
type Repository interface {
	// Create inserts a new deposit record from a DTO.
	Create(ctx context.Context, create *dto.DepositCreate) error

	// Get retrieves a deposit by its ID. Returns nil when none exists.
	Get(ctx context.Context, id uuid.UUID) (*dto.DepositRead, error)

	// ListByUser retrieves all deposits for the given user, most recent
	// submitted_at first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.DepositRead, error)

	// Review sets the review outcome and reviewed_at timestamp of a deposit.
	Review(ctx context.Context, id uuid.UUID, status domain.DepositStatus, reviewedAt time.Time) error
}
