package account

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account represents a client bank account record. Balance is stored in
// cents.
type Account struct {
	gorm.Model
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null"`
	AccountType   string    `gorm:"size:32;not null"`
	AccountNumber string    `gorm:"size:32;uniqueIndex;not null"`
	RoutingNumber string    `gorm:"size:16;not null"`
	Balance       int64     `gorm:"not null;default:0"`
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
