// Package deposit implements mobile check deposit submission. Deposits are
// held pending until the back office approves them.
package deposit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	"github.com/gibraltarbank/gibraltar/pkg/repository"
	"github.com/google/uuid"
)

// depositDescription is the ledger entry text for every check deposit.
const depositDescription = "Mobile Check Deposit"

// CheckImage is one side of a check as uploaded by the client.
type CheckImage struct {
	Filename string
	Content  []byte
}

// Input carries a deposit request.
type Input struct {
	AccountID  string
	Amount     string
	FrontImage *CheckImage
	BackImage  *CheckImage
}

// FieldErrors maps input field names to their first validation message.
type FieldErrors map[string]string

// Service implements deposit validation and submission.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Uploads
	logger *slog.Logger
}

// New creates a deposit service.
func New(
	uow repository.UnitOfWork,
	cfg *config.Uploads,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Validate checks every field and returns all failures at once.
func Validate(input *Input) FieldErrors {
	errs := FieldErrors{}

	amount := strings.TrimSpace(input.Amount)
	if amount == "" {
		errs["amount"] = "Amount is required."
	} else if _, err := money.ParseAmount(amount); err != nil {
		errs["amount"] = "Enter a valid amount greater than zero."
	}

	if strings.TrimSpace(input.AccountID) == "" {
		errs["account_id"] = "Please select an account."
	}

	if input.FrontImage == nil || len(input.FrontImage.Content) == 0 {
		errs["front_image"] = "Front image of check is required."
	}
	if input.BackImage == nil || len(input.BackImage.Content) == 0 {
		errs["back_image"] = "Back image of check is required."
	}

	return errs
}

// Submit stores both check images and records the deposit with a pending
// credit ledger entry, atomically. The account balance is credited only
// when the back office completes the transaction.
func (s *Service) Submit(
	ctx context.Context,
	userID uuid.UUID,
	input *Input,
) (result *dto.DepositRead, fieldErrs FieldErrors, err error) {
	log := s.logger.With("handler", "Submit", "user_id", userID)

	if fieldErrs = Validate(input); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	accountID, err := uuid.Parse(strings.TrimSpace(input.AccountID))
	if err != nil {
		return nil, nil, domain.ErrAccountNotFound
	}
	acct, err := s.uow.Accounts().Get(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	if acct == nil || acct.UserID != userID {
		return nil, nil, domain.ErrAccountNotFound
	}

	amount, err := money.ParseAmount(strings.TrimSpace(input.Amount))
	if err != nil {
		return nil, FieldErrors{
			"amount": "Enter a valid amount greater than zero.",
		}, nil
	}

	depositID := uuid.New()
	frontURL, err := s.saveImage(depositID, "front", input.FrontImage)
	if err != nil {
		log.Error("front image save failed", "error", err)
		return nil, nil, err
	}
	backURL, err := s.saveImage(depositID, "back", input.BackImage)
	if err != nil {
		log.Error("back image save failed", "error", err)
		return nil, nil, err
	}

	now := time.Now().UTC()
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := uow.Deposits().Create(ctx, &dto.DepositCreate{
			ID:            depositID,
			UserID:        userID,
			AccountID:     accountID,
			Amount:        amount,
			FrontImageURL: frontURL,
			BackImageURL:  backURL,
			Status:        domain.DepositPending,
			SubmittedAt:   now,
		}); err != nil {
			return err
		}
		return uow.Transactions().Create(ctx, &dto.TransactionCreate{
			ID:               uuid.New(),
			AccountID:        accountID,
			UserID:           userID,
			TransactionDate:  now,
			Description:      depositDescription,
			Amount:           amount,
			Type:             domain.TransactionCredit,
			Status:           domain.StatusPending,
			RelatedDepositID: &depositID,
		})
	})
	if err != nil {
		log.Error("deposit submission failed", "error", err)
		return nil, nil, err
	}

	result, err = s.uow.Deposits().Get(ctx, depositID)
	if err != nil {
		return nil, nil, err
	}
	log.Info("deposit submitted", "deposit_id", depositID, "amount", amount)
	return result, nil, nil
}

// Deposits returns the client's deposit history, most recent first.
func (s *Service) Deposits(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.DepositRead, error) {
	return s.uow.Deposits().ListByUser(ctx, userID)
}

// saveImage writes one check side under the uploads directory and returns
// its stored path.
func (s *Service) saveImage(
	depositID uuid.UUID,
	side string,
	image *CheckImage,
) (string, error) {
	dir := filepath.Join(s.cfg.Dir, "deposits")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	ext := filepath.Ext(image.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("%s_%s%s", depositID, side, ext)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, image.Content, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
