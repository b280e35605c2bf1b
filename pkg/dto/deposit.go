package dto

import (
	"time"

	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	"github.com/google/uuid"
)

// DepositCreate represents the data needed to record a mobile check deposit.
type DepositCreate struct {
	ID            uuid.UUID            `json:"id"`
	UserID        uuid.UUID            `json:"user_id"`
	AccountID     uuid.UUID            `json:"account_id"`
	Amount        money.Amount         `json:"amount"`
	FrontImageURL string               `json:"front_image_url"`
	BackImageURL  string               `json:"back_image_url"`
	Status        domain.DepositStatus `json:"status"`
	SubmittedAt   time.Time            `json:"submitted_at"`
}

// DepositRead represents a read-optimized view of a mobile check deposit.
type DepositRead struct {
	ID            uuid.UUID            `json:"id"`
	UserID        uuid.UUID            `json:"user_id"`
	AccountID     uuid.UUID            `json:"account_id"`
	Amount        money.Amount         `json:"-"`
	AmountUSD     float64              `json:"amount"`
	FrontImageURL string               `json:"front_image_url"`
	BackImageURL  string               `json:"back_image_url"`
	Status        domain.DepositStatus `json:"status"`
	SubmittedAt   time.Time            `json:"submitted_at"`
	ReviewedAt    *time.Time           `json:"reviewed_at,omitempty"`
}
