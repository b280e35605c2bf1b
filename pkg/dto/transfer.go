package dto

import (
	"time"

	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	"github.com/google/uuid"
)

// TransferCreate represents the data needed to record an outgoing transfer.
type TransferCreate struct {
	ID                     uuid.UUID             `json:"id"`
	UserID                 uuid.UUID             `json:"user_id"`
	SourceAccountID        uuid.UUID             `json:"source_account_id"`
	RecipientName          string                `json:"recipient_name"`
	RecipientAccountNumber string                `json:"recipient_account_number"`
	RecipientRoutingNumber string                `json:"recipient_routing_number"`
	Amount                 money.Amount          `json:"amount"`
	Memo                   string                `json:"memo,omitempty"`
	Status                 domain.TransferStatus `json:"status"`
}

// TransferRead represents a read-optimized view of an outgoing transfer.
type TransferRead struct {
	ID                     uuid.UUID             `json:"id"`
	UserID                 uuid.UUID             `json:"user_id"`
	SourceAccountID        uuid.UUID             `json:"source_account_id"`
	RecipientName          string                `json:"recipient_name"`
	RecipientAccountNumber string                `json:"recipient_account_number"`
	RecipientRoutingNumber string                `json:"recipient_routing_number"`
	Amount                 money.Amount          `json:"-"`
	AmountUSD              float64               `json:"amount"`
	Memo                   string                `json:"memo,omitempty"`
	Status                 domain.TransferStatus `json:"status"`
	CreatedAt              time.Time             `json:"created_at"`
}
