package dto

import (
	"time"

	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	"github.com/google/uuid"
)

// TransactionCreate represents the data needed to record a ledger entry.
type TransactionCreate struct {
	ID                uuid.UUID                `json:"id"`
	AccountID         uuid.UUID                `json:"account_id"`
	UserID            uuid.UUID                `json:"user_id"`
	TransactionDate   time.Time                `json:"transaction_date"`
	Description       string                   `json:"description"`
	Amount            money.Amount             `json:"amount"`
	Type              domain.TransactionType   `json:"type"`
	Status            domain.TransactionStatus `json:"status"`
	RelatedDepositID  *uuid.UUID               `json:"related_deposit_id,omitempty"`
	RelatedTransferID *uuid.UUID               `json:"related_transfer_id,omitempty"`
}

// TransactionRead represents a read-optimized view of a ledger entry.
type TransactionRead struct {
	ID                uuid.UUID                `json:"id"`
	AccountID         uuid.UUID                `json:"account_id"`
	UserID            uuid.UUID                `json:"user_id"`
	TransactionDate   time.Time                `json:"transaction_date"`
	Description       string                   `json:"description"`
	Amount            money.Amount             `json:"-"`
	AmountUSD         float64                  `json:"amount"`
	Type              domain.TransactionType   `json:"type"`
	Status            domain.TransactionStatus `json:"status"`
	RelatedDepositID  *uuid.UUID               `json:"related_deposit_id,omitempty"`
	RelatedTransferID *uuid.UUID               `json:"related_transfer_id,omitempty"`
}
