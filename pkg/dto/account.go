package dto

import (
	"time"

	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	"github.com/google/uuid"
)

// AccountCreate represents the data needed to open an account.
type AccountCreate struct {
	ID            uuid.UUID          `json:"id"`
	UserID        uuid.UUID          `json:"user_id"`
	AccountType   domain.AccountType `json:"account_type"`
	AccountNumber string             `json:"account_number"`
	RoutingNumber string             `json:"routing_number"`
	Balance       money.Amount       `json:"balance"`
}

// AccountRead represents a read-optimized view of an account. Balance is in
// cents; BalanceUSD is the dollar figure serialized to clients.
type AccountRead struct {
	ID            uuid.UUID          `json:"id"`
	UserID        uuid.UUID          `json:"user_id"`
	AccountType   domain.AccountType `json:"account_type"`
	AccountNumber string             `json:"account_number"`
	RoutingNumber string             `json:"routing_number"`
	Balance       money.Amount       `json:"-"`
	BalanceUSD    float64            `json:"balance"`
	CreatedAt     time.Time          `json:"created_at"`
}
