package account

import (
	"context"

	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	"github.com/google/uuid"
)

// Repository defines data access for accounts.
type Repository interface {
	// Create inserts a new account record from a DTO.
	Create(ctx context.Context, create *dto.AccountCreate) error

	// Get retrieves an account by its ID. Returns nil when none exists.
	Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)

	// ListByUser retrieves all accounts owned by the given user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error)

	// UpdateBalance sets the balance of an account, in cents.
	UpdateBalance(ctx context.Context, id uuid.UUID, balance money.Amount) error
}
