// Package transfer implements the two-step external transfer flow:
// validate and preview first, then submit.
package transfer

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	"github.com/gibraltarbank/gibraltar/pkg/repository"
	"github.com/gibraltarbank/gibraltar/pkg/service/account"
	"github.com/google/uuid"
)

// EstimatedArrival is the delivery window quoted on the confirmation step.
const EstimatedArrival = "1-2 Business Days"

var (
	lettersAndSpaces = regexp.MustCompile(`^[A-Za-z ]+$`)
	digitsOnly       = regexp.MustCompile(`^[0-9]+$`)
)

// Input carries a transfer request as submitted by the client.
type Input struct {
	SourceAccountID string `json:"source_account_id"`
	RecipientName   string `json:"recipient_name"`
	AccountNumber   string `json:"account_number"`
	RoutingNumber   string `json:"routing_number"`
	Amount          string `json:"amount"`
	Memo            string `json:"memo"`
}

// FieldErrors maps input field names to their first validation message.
type FieldErrors map[string]string

// Preview is the confirmation recap shown before submission.
type Preview struct {
	RecipientName     string `json:"recipient_name"`
	AccountNumberLast string `json:"account_number_last4"`
	RoutingNumber     string `json:"routing_number"`
	AmountFormatted   string `json:"amount"`
	Memo              string `json:"memo,omitempty"`
	SourceAccount     string `json:"source_account"`
	EstimatedArrival  string `json:"estimated_arrival"`
}

// Service implements transfer validation, preview and submission.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a transfer service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Validate checks every field and returns all failures at once. An empty
// map means the input is acceptable.
func Validate(input *Input) FieldErrors {
	errs := FieldErrors{}

	name := strings.TrimSpace(input.RecipientName)
	switch {
	case name == "":
		errs["recipient_name"] = "Recipient name is required."
	case !lettersAndSpaces.MatchString(name):
		errs["recipient_name"] = "Only letters are allowed."
	}

	accountNumber := strings.TrimSpace(input.AccountNumber)
	switch {
	case accountNumber == "":
		errs["account_number"] = "Account number is required."
	case !digitsOnly.MatchString(accountNumber):
		errs["account_number"] = "Only numbers are allowed."
	case len(accountNumber) < 8 || len(accountNumber) > 17:
		errs["account_number"] = "Account number must be between 8 and 17 digits."
	}

	routingNumber := strings.TrimSpace(input.RoutingNumber)
	switch {
	case routingNumber == "":
		errs["routing_number"] = "Routing number is required."
	case !digitsOnly.MatchString(routingNumber):
		errs["routing_number"] = "Only numbers are allowed."
	case len(routingNumber) != 9:
		errs["routing_number"] = "Routing number must be 9 digits."
	}

	amount := strings.TrimSpace(input.Amount)
	if amount == "" {
		errs["amount"] = "Amount is required."
	} else if _, err := money.ParseAmount(amount); err != nil {
		errs["amount"] = "Enter a valid amount greater than zero."
	}

	if strings.TrimSpace(input.SourceAccountID) == "" {
		errs["source_account"] = "Please select an account."
	}

	return errs
}

// PreviewTransfer validates the input and builds the confirmation recap.
// Validation failures are returned as FieldErrors with a nil Preview.
func (s *Service) PreviewTransfer(
	ctx context.Context,
	userID uuid.UUID,
	input *Input,
) (*Preview, FieldErrors, error) {
	if errs := Validate(input); len(errs) > 0 {
		return nil, errs, nil
	}

	src, err := s.sourceAccount(ctx, userID, input.SourceAccountID)
	if err != nil {
		return nil, nil, err
	}

	amount, err := money.ParseAmount(strings.TrimSpace(input.Amount))
	if err != nil {
		return nil, FieldErrors{
			"amount": "Enter a valid amount greater than zero.",
		}, nil
	}

	accountNumber := strings.TrimSpace(input.AccountNumber)
	return &Preview{
		RecipientName:     strings.TrimSpace(input.RecipientName),
		AccountNumberLast: account.MaskAccountNumber(accountNumber),
		RoutingNumber:     strings.TrimSpace(input.RoutingNumber),
		AmountFormatted:   money.FormatUSD(amount),
		Memo:              strings.TrimSpace(input.Memo),
		SourceAccount:     account.MaskAccountNumber(src.AccountNumber),
		EstimatedArrival:  EstimatedArrival,
	}, nil, nil
}

// Submit records a confirmed transfer. It creates the transfer row and a
// pending debit ledger entry atomically; the account balance is untouched
// until back office review completes the transaction.
func (s *Service) Submit(
	ctx context.Context,
	userID uuid.UUID,
	input *Input,
) (result *dto.TransferRead, fieldErrs FieldErrors, err error) {
	log := s.logger.With("handler", "Submit", "user_id", userID)

	if fieldErrs = Validate(input); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	src, err := s.sourceAccount(ctx, userID, input.SourceAccountID)
	if err != nil {
		return nil, nil, err
	}

	amount, err := money.ParseAmount(strings.TrimSpace(input.Amount))
	if err != nil {
		return nil, FieldErrors{
			"amount": "Enter a valid amount greater than zero.",
		}, nil
	}
	if amount > src.Balance {
		return nil, nil, domain.ErrInsufficientFunds
	}

	recipient := strings.TrimSpace(input.RecipientName)
	memo := strings.TrimSpace(input.Memo)
	description := "Transfer to " + recipient
	if memo != "" {
		description += " - " + memo
	}

	transferID := uuid.New()
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := uow.Transfers().Create(ctx, &dto.TransferCreate{
			ID:                     transferID,
			UserID:                 userID,
			SourceAccountID:        src.ID,
			RecipientName:          recipient,
			RecipientAccountNumber: strings.TrimSpace(input.AccountNumber),
			RecipientRoutingNumber: strings.TrimSpace(input.RoutingNumber),
			Amount:                 amount,
			Memo:                   memo,
			Status:                 domain.TransferPending,
		}); err != nil {
			return err
		}
		return uow.Transactions().Create(ctx, &dto.TransactionCreate{
			ID:                uuid.New(),
			AccountID:         src.ID,
			UserID:            userID,
			TransactionDate:   time.Now().UTC(),
			Description:       description,
			Amount:            amount,
			Type:              domain.TransactionDebit,
			Status:            domain.StatusPending,
			RelatedTransferID: &transferID,
		})
	})
	if err != nil {
		log.Error("transfer submission failed", "error", err)
		return nil, nil, err
	}

	result, err = s.uow.Transfers().Get(ctx, transferID)
	if err != nil {
		return nil, nil, err
	}
	log.Info("transfer submitted",
		"transfer_id", transferID, "amount", amount)
	return result, nil, nil
}

// sourceAccount resolves and ownership-checks the funding account.
func (s *Service) sourceAccount(
	ctx context.Context,
	userID uuid.UUID,
	rawID string,
) (*dto.AccountRead, error) {
	accountID, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	src, err := s.uow.Accounts().Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if src == nil || src.UserID != userID {
		return nil, domain.ErrAccountNotFound
	}
	return src, nil
}
