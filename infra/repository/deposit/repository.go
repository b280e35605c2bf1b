package deposit

import (
	"context"
	"errors"
	"time"

	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	"github.com/gibraltarbank/gibraltar/pkg/repository/deposit"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New returns a GORM-backed deposit repository.
func New(db *gorm.DB) deposit.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.DepositCreate,
) error {
	d := &Deposit{
		ID:            create.ID,
		UserID:        create.UserID,
		AccountID:     create.AccountID,
		Amount:        create.Amount,
		FrontImageURL: create.FrontImageURL,
		BackImageURL:  create.BackImageURL,
		Status:        string(create.Status),
		SubmittedAt:   create.SubmittedAt,
	}
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.DepositRead, error) {
	var d Deposit
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&d), nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.DepositRead, error) {
	var deposits []Deposit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at desc").
		Find(&deposits).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.DepositRead, 0, len(deposits))
	for i := range deposits {
		result = append(result, mapModelToDTO(&deposits[i]))
	}
	return result, nil
}

func (r *repository) Review(
	ctx context.Context,
	id uuid.UUID,
	status domain.DepositStatus,
	reviewedAt time.Time,
) error {
	return r.db.WithContext(ctx).Model(&Deposit{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      string(status),
			"reviewed_at": reviewedAt,
		}).Error
}

func mapModelToDTO(d *Deposit) *dto.DepositRead {
	return &dto.DepositRead{
		ID:            d.ID,
		UserID:        d.UserID,
		AccountID:     d.AccountID,
		Amount:        d.Amount,
		AmountUSD:     money.ToFloat(d.Amount),
		FrontImageURL: d.FrontImageURL,
		BackImageURL:  d.BackImageURL,
		Status:        domain.DepositStatus(d.Status),
		SubmittedAt:   d.SubmittedAt,
		ReviewedAt:    d.ReviewedAt,
	}
}
