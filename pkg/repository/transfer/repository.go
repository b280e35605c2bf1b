package transfer

import (
	"context"

	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for outgoing transfers.
type Repository interface {
	// Create inserts a new transfer record from a DTO.
	Create(ctx context.Context, create *dto.TransferCreate) error

	// Get retrieves a transfer by its ID. Returns nil when none exists.
	Get(ctx context.Context, id uuid.UUID) (*dto.TransferRead, error)

	// ListByUser retrieves all transfers for the given user, most recent
	// first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.TransferRead, error)
}
