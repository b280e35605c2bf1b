package transaction

import (
	"context"
	"errors"

	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	"github.com/gibraltarbank/gibraltar/pkg/repository/transaction"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New returns a GORM-backed transaction repository.
func New(db *gorm.DB) transaction.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.TransactionCreate,
) error {
	t := &Transaction{
		ID:                create.ID,
		AccountID:         create.AccountID,
		UserID:            create.UserID,
		TransactionDate:   create.TransactionDate,
		Description:       create.Description,
		Amount:            create.Amount,
		Type:              string(create.Type),
		Status:            string(create.Status),
		RelatedDepositID:  create.RelatedDepositID,
		RelatedTransferID: create.RelatedTransferID,
	}
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.TransactionRead, error) {
	var t Transaction
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
) ([]*dto.TransactionRead, error) {
	var transactions []Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("transaction_date desc").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return mapModelsToDTOs(transactions), nil
}

func (r *repository) ListPendingByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.TransactionRead, error) {
	var transactions []Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(domain.StatusPending)).
		Order("transaction_date desc").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return mapModelsToDTOs(transactions), nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.TransactionStatus,
) error {
	return r.db.WithContext(ctx).Model(&Transaction{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func mapModelsToDTOs(transactions []Transaction) []*dto.TransactionRead {
	result := make([]*dto.TransactionRead, 0, len(transactions))
	for i := range transactions {
		result = append(result, mapModelToDTO(&transactions[i]))
	}
	return result
}

func mapModelToDTO(t *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:                t.ID,
		AccountID:         t.AccountID,
		UserID:            t.UserID,
		TransactionDate:   t.TransactionDate,
		Description:       t.Description,
		Amount:            t.Amount,
		AmountUSD:         money.ToFloat(t.Amount),
		Type:              domain.TransactionType(t.Type),
		Status:            domain.TransactionStatus(t.Status),
		RelatedDepositID:  t.RelatedDepositID,
		RelatedTransferID: t.RelatedTransferID,
	}
}
