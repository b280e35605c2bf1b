package transfer

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transfer represents an outgoing transfer request. Amount is stored in
// cents.
type Transfer struct {
	gorm.Model
	ID                     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID                 uuid.UUID `gorm:"type:uuid;index;not null"`
	SourceAccountID        uuid.UUID `gorm:"type:uuid;index;not null"`
	RecipientName          string    `gorm:"size:100;not null"`
	RecipientAccountNumber string    `gorm:"size:32;not null"`
	RecipientRoutingNumber string    `gorm:"size:16;not null"`
	Amount                 int64     `gorm:"not null"`
	Memo                   string    `gorm:"size:255"`
	Status                 string    `gorm:"size:16;index;not null"`
}

// TableName specifies the table name for the Transfer model.
func (Transfer) TableName() string {
	return "transfers"
}
