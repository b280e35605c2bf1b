package transaction

import (
	"context"

	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for ledger entries.
type Repository interface {
	// Create inserts a new transaction record from a DTO.
	Create(ctx context.Context, create *dto.TransactionCreate) error

	// Get retrieves a transaction by its ID. Returns nil when none exists.
	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error)

	// ListByUser retrieves all transactions for the given user, most recent
	// transaction_date first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error)

	// ListPendingByUser retrieves the user's Pending transactions, most
	// recent transaction_date first.
	ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error)

	// UpdateStatus sets the status of a transaction.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error
}
