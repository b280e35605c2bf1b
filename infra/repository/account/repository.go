package account

import (
	"context"
	"errors"

	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	"github.com/gibraltarbank/gibraltar/pkg/repository/account"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New returns a GORM-backed account repository.
func New(db *gorm.DB) account.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.AccountCreate,
) error {
	a := &Account{
		ID:            create.ID,
		UserID:        create.UserID,
		AccountType:   string(create.AccountType),
		AccountNumber: create.AccountNumber,
		RoutingNumber: create.RoutingNumber,
		Balance:       create.Balance,
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.AccountRead, error) {
	var a Account
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&a), nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.AccountRead, error) {
	var accounts []Account
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.AccountRead, 0, len(accounts))
	for i := range accounts {
		result = append(result, mapModelToDTO(&accounts[i]))
	}
	return result, nil
}

func (r *repository) UpdateBalance(
	ctx context.Context,
	id uuid.UUID,
	balance money.Amount,
) error {
	return r.db.WithContext(ctx).Model(&Account{}).
		Where("id = ?", id).
		Update("balance", balance).Error
}

func mapModelToDTO(a *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:            a.ID,
		UserID:        a.UserID,
		AccountType:   domain.AccountType(a.AccountType),
		AccountNumber: a.AccountNumber,
		RoutingNumber: a.RoutingNumber,
		Balance:       a.Balance,
		BalanceUSD:    money.ToFloat(a.Balance),
		CreatedAt:     a.CreatedAt,
	}
}
