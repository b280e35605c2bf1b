package transaction

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction represents a ledger entry. Amount is stored in cents and is
// always positive; Type carries the direction.
type Transaction struct {
	gorm.Model
	ID                uuid.UUID  `gorm:"type:uuid;primary_key"`
	AccountID         uuid.UUID  `gorm:"type:uuid;index;not null"`
	UserID            uuid.UUID  `gorm:"type:uuid;index;not null"`
	TransactionDate   time.Time  `gorm:"index;not null"`
	Description       string     `gorm:"size:255;not null"`
	Amount            int64      `gorm:"not null"`
	Type              string     `gorm:"size:16;not null"`
	Status            string     `gorm:"size:16;index;not null"`
	RelatedDepositID  *uuid.UUID `gorm:"type:uuid"`
	RelatedTransferID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
