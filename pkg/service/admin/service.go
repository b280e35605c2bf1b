// Package admin implements the back office update utility: profile search
// and edits, balance adjustments, and pending transaction review.
package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	"github.com/gibraltarbank/gibraltar/pkg/repository"
	"github.com/google/uuid"
)

// Service implements the update utility operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates an admin service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// SearchProfiles matches profiles by user id or email substring. An empty
// query lists every profile.
func (s *Service) SearchProfiles(
	ctx context.Context,
	query string,
) ([]*dto.ProfileRead, error) {
	if query == "" {
		return s.uow.Profiles().List(ctx)
	}
	return s.uow.Profiles().Search(ctx, query)
}

// UserDetail is everything the utility shows for one client.
type UserDetail struct {
	Profile             *dto.ProfileRead       `json:"profile"`
	Accounts            []*dto.AccountRead     `json:"accounts"`
	PendingTransactions []*dto.TransactionRead `json:"pending_transactions"`
}

// Detail loads a client's profile, accounts and pending transactions.
func (s *Service) Detail(
	ctx context.Context,
	profileID uuid.UUID,
) (*UserDetail, error) {
	profile, err := s.uow.Profiles().Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	accounts, err := s.uow.Accounts().ListByUser(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	pending, err := s.uow.Transactions().ListPendingByUser(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	return &UserDetail{
		Profile:             profile,
		Accounts:            accounts,
		PendingTransactions: pending,
	}, nil
}

// UpdateProfile applies a partial profile edit.
func (s *Service) UpdateProfile(
	ctx context.Context,
	profileID uuid.UUID,
	update *dto.ProfileUpdate,
) (*dto.ProfileRead, error) {
	log := s.logger.With("handler", "UpdateProfile", "profile_id", profileID)

	profile, err := s.uow.Profiles().Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	if err = s.uow.Profiles().Update(ctx, profileID, update); err != nil {
		log.Error("profile update failed", "error", err)
		return nil, err
	}
	log.Info("profile updated")
	return s.uow.Profiles().Get(ctx, profileID)
}

// UpdateBalance sets an account balance outright. Negative balances are
// refused.
func (s *Service) UpdateBalance(
	ctx context.Context,
	accountID uuid.UUID,
	balance money.Amount,
) (*dto.AccountRead, error) {
	log := s.logger.With("handler", "UpdateBalance", "account_id", accountID)

	if balance < 0 {
		return nil, domain.ErrNegativeBalance
	}
	acct, err := s.uow.Accounts().Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, domain.ErrAccountNotFound
	}

	if err = s.uow.Accounts().UpdateBalance(ctx, accountID, balance); err != nil {
		log.Error("balance update failed", "error", err)
		return nil, err
	}
	log.Info("balance updated", "balance", balance)
	return s.uow.Accounts().Get(ctx, accountID)
}

// UpdateTransactionStatus sets a transaction's status. Completing a pending
// check deposit entry additionally credits the account and approves the
// related deposit; all three writes share one transaction boundary.
func (s *Service) UpdateTransactionStatus(
	ctx context.Context,
	transactionID uuid.UUID,
	status domain.TransactionStatus,
) (*dto.TransactionRead, error) {
	log := s.logger.With(
		"handler", "UpdateTransactionStatus",
		"transaction_id", transactionID, "status", status,
	)

	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txn, err := uow.Transactions().Get(ctx, transactionID)
		if err != nil {
			return err
		}
		if txn == nil {
			return domain.ErrTransactionNotFound
		}

		if err := uow.Transactions().UpdateStatus(
			ctx, transactionID, status,
		); err != nil {
			return err
		}

		// Credit only on the Pending to Completed edge.
		if status != domain.StatusCompleted ||
			txn.Status != domain.StatusPending || !isDepositEntry(txn) {
			return nil
		}

		acct, err := uow.Accounts().Get(ctx, txn.AccountID)
		if err != nil {
			return err
		}
		if acct == nil {
			return domain.ErrAccountNotFound
		}
		if err := uow.Accounts().UpdateBalance(
			ctx, acct.ID, acct.Balance+txn.Amount,
		); err != nil {
			return err
		}

		if txn.RelatedDepositID != nil {
			return uow.Deposits().Review(
				ctx, *txn.RelatedDepositID,
				domain.DepositApproved, time.Now().UTC(),
			)
		}
		return nil
	})
	if err != nil {
		log.Error("status update failed", "error", err)
		return nil, err
	}

	log.Info("transaction status updated")
	return s.uow.Transactions().Get(ctx, transactionID)
}

// isDepositEntry reports whether completing the entry should credit the
// account: either an explicit Deposit entry or the credit half of a mobile
// check deposit.
func isDepositEntry(txn *dto.TransactionRead) bool {
	if txn.Type == domain.TransactionDeposit {
		return true
	}
	return txn.Type == domain.TransactionCredit && txn.RelatedDepositID != nil
}
