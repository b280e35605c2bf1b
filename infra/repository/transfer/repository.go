package transfer

import (
	"context"
	"errors"

	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	"github.com/gibraltarbank/gibraltar/pkg/repository/transfer"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New returns a GORM-backed transfer repository.
func New(db *gorm.DB) transfer.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.TransferCreate,
) error {
	t := &Transfer{
		ID:                     create.ID,
		UserID:                 create.UserID,
		SourceAccountID:        create.SourceAccountID,
		RecipientName:          create.RecipientName,
		RecipientAccountNumber: create.RecipientAccountNumber,
		RecipientRoutingNumber: create.RecipientRoutingNumber,
		Amount:                 create.Amount,
		Memo:                   create.Memo,
		Status:                 string(create.Status),
	}
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.TransferRead, error) {
	var t Transfer
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&t), nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.TransferRead, error) {
	var transfers []Transfer
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&transfers).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.TransferRead, 0, len(transfers))
	for i := range transfers {
		result = append(result, mapModelToDTO(&transfers[i]))
	}
	return result, nil
}

func mapModelToDTO(t *Transfer) *dto.TransferRead {
	return &dto.TransferRead{
		ID:                     t.ID,
		UserID:                 t.UserID,
		SourceAccountID:        t.SourceAccountID,
		RecipientName:          t.RecipientName,
		RecipientAccountNumber: t.RecipientAccountNumber,
		RecipientRoutingNumber: t.RecipientRoutingNumber,
		Amount:                 t.Amount,
		AmountUSD:              money.ToFloat(t.Amount),
		Memo:                   t.Memo,
		Status:                 domain.TransferStatus(t.Status),
		CreatedAt:              t.CreatedAt,
	}
}
