// Package domain holds the closed enumerations and sentinel errors shared
// across the application.
package domain

import "errors"

// AccountType enumerates the kinds of accounts a client can hold.
type AccountType string

const (
	AccountChecking AccountType = "Checking"
	AccountBusiness AccountType = "Business"
	AccountSavings  AccountType = "Savings"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountChecking, AccountBusiness, AccountSavings:
		return true
	}
	return false
}

// TransactionType enumerates the direction of a ledger entry.
type TransactionType string

const (
	TransactionCredit  TransactionType = "Credit"
	TransactionDebit   TransactionType = "Debit"
	TransactionDeposit TransactionType = "Deposit"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionCredit, TransactionDebit, TransactionDeposit:
		return true
	}
	return false
}

// TransactionStatus enumerates the review state of a transaction.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "Pending"
	StatusCompleted TransactionStatus = "Completed"
	StatusFailed    TransactionStatus = "Failed"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// DepositStatus enumerates the review state of a mobile check deposit.
type DepositStatus string

const (
	DepositPending  DepositStatus = "Pending"
	DepositApproved DepositStatus = "Approved"
	DepositRejected DepositStatus = "Rejected"
)

// TransferStatus enumerates the state of an outgoing transfer.
type TransferStatus string

const (
	TransferPending   TransferStatus = "Pending"
	TransferCompleted TransferStatus = "Completed"
	TransferFailed    TransferStatus = "Failed"
)

var (
	ErrUserUnauthorized    = errors.New("invalid credentials or access code")
	ErrUserExists          = errors.New("a user with this email already exists")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDepositNotFound     = errors.New("deposit not found")
	ErrInsufficientFunds   = errors.New("insufficient funds in the selected account")
	ErrInvalidAmount       = errors.New("enter a valid amount greater than zero")
	ErrInvalidStatus       = errors.New("unknown transaction status")
	ErrNegativeBalance     = errors.New("please enter a valid balance amount")
	ErrChatNotFound        = errors.New("chat session not found")
	ErrChatLimitReached    = errors.New("maximum message limit reached")
)
