package deposit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deposit represents a mobile check deposit awaiting review. Amount is
// stored in cents.
type Deposit struct {
	gorm.Model
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null"`
	AccountID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount        int64     `gorm:"not null"`
	FrontImageURL string    `gorm:"size:512;not null"`
	BackImageURL  string    `gorm:"size:512;not null"`
	Status        string    `gorm:"size:16;index;not null"`
	SubmittedAt   time.Time `gorm:"not null"`
	ReviewedAt    *time.Time
}

// TableName specifies the table name for the Deposit model.
func (Deposit) TableName() string {
	return "deposits"
}
