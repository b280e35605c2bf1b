// Package account serves the dashboard reads: profile, accounts,
// transaction history and aggregate balance.
package account

import (
	"context"
	"log/slog"

	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	"github.com/gibraltarbank/gibraltar/pkg/repository"
	"github.com/google/uuid"
)

// TransactionsPageSize is the fixed page size of the dashboard's
// transaction history.
const TransactionsPageSize = 6

// Service implements the dashboard read operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates an account service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Profile returns the authenticated client's profile.
func (s *Service) Profile(
	ctx context.Context,
	userID uuid.UUID,
) (*dto.ProfileRead, error) {
	profile, err := s.uow.Profiles().GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("profile lookup failed", "user_id", userID, "error", err)
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

// Accounts returns all accounts owned by the client, numbers masked.
func (s *Service) Accounts(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.AccountRead, error) {
	accounts, err := s.uow.Accounts().ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("account list failed", "user_id", userID, "error", err)
		return nil, err
	}
	for _, a := range accounts {
		a.AccountNumber = MaskAccountNumber(a.AccountNumber)
	}
	return accounts, nil
}

// Account returns one account by id, enforcing ownership. The number is
// masked.
func (s *Service) Account(
	ctx context.Context,
	userID, accountID uuid.UUID,
) (*dto.AccountRead, error) {
	account, err := s.uow.Accounts().Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.UserID != userID {
		return nil, domain.ErrAccountNotFound
	}
	account.AccountNumber = MaskAccountNumber(account.AccountNumber)
	return account, nil
}

// TransactionsPage is one page of a client's transaction history.
type TransactionsPage struct {
	Transactions []*dto.TransactionRead `json:"transactions"`
	Page         int                    `json:"page"`
	PageSize     int                    `json:"page_size"`
	TotalCount   int                    `json:"total_count"`
	TotalPages   int                    `json:"total_pages"`
}

// Transactions returns one page of the client's history, most recent first.
// Page numbering starts at 1; out-of-range pages return an empty list.
func (s *Service) Transactions(
	ctx context.Context,
	userID uuid.UUID,
	page int,
) (*TransactionsPage, error) {
	if page < 1 {
		page = 1
	}
	all, err := s.uow.Transactions().ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("transaction list failed", "user_id", userID, "error", err)
		return nil, err
	}

	total := len(all)
	totalPages := (total + TransactionsPageSize - 1) / TransactionsPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * TransactionsPageSize
	if start > total {
		start = total
	}
	end := start + TransactionsPageSize
	if end > total {
		end = total
	}

	return &TransactionsPage{
		Transactions: all[start:end],
		Page:         page,
		PageSize:     TransactionsPageSize,
		TotalCount:   total,
		TotalPages:   totalPages,
	}, nil
}

// TransactionsAll returns the client's entire history, most recent first.
// The statement export uses this instead of the paginated view.
func (s *Service) TransactionsAll(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.TransactionRead, error) {
	return s.uow.Transactions().ListByUser(ctx, userID)
}

// Transaction returns one ledger entry by id, enforcing ownership.
func (s *Service) Transaction(
	ctx context.Context,
	userID, transactionID uuid.UUID,
) (*dto.TransactionRead, error) {
	txn, err := s.uow.Transactions().Get(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil || txn.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}
	return txn, nil
}

// TotalBalance sums the client's account balances, in cents.
func (s *Service) TotalBalance(
	ctx context.Context,
	userID uuid.UUID,
) (money.Amount, error) {
	accounts, err := s.uow.Accounts().ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	var total money.Amount
	for _, a := range accounts {
		total += a.Balance
	}
	return total, nil
}

// MaskAccountNumber hides all but the last four digits.
func MaskAccountNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "••••" + number[len(number)-4:]
}
