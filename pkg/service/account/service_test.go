package account

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/gibraltarbank/gibraltar/internal/fixtures"
	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskAccountNumber(t *testing.T) {
	assert.Equal(t, "••••3210", MaskAccountNumber("9876543210"))
	assert.Equal(t, "1234", MaskAccountNumber("1234"))
	assert.Equal(t, "42", MaskAccountNumber("42"))
}

func TestAccounts_MasksNumbers(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	client := fixtures.SeedClient(t, uow, 123456)
	svc := New(uow, slog.Default())

	accounts, err := svc.Accounts(context.Background(), client.UserID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "••••3210", accounts[0].AccountNumber)
	assert.Equal(t, int64(123456), accounts[0].Balance)
	assert.InDelta(t, 1234.56, accounts[0].BalanceUSD, 1e-9)
}

func TestAccount_EnforcesOwnership(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	owner := fixtures.SeedClient(t, uow, 0)
	other := fixtures.SeedClient(t, uow, 0)
	svc := New(uow, slog.Default())

	_, err := svc.Account(context.Background(), other.UserID, owner.AccountID)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestTransactions_PaginatesNewestFirst(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	client := fixtures.SeedClient(t, uow, 0)
	svc := New(uow, slog.Default())
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		fixtures.SeedTransaction(t, uow, client, int64(100*(i+1)),
			domain.TransactionCredit, domain.StatusCompleted,
			base.Add(time.Duration(i)*time.Hour))
	}

	page1, err := svc.Transactions(ctx, client.UserID, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, page1.PageSize)
	assert.Equal(t, 8, page1.TotalCount)
	assert.Equal(t, 2, page1.TotalPages)
	require.Len(t, page1.Transactions, 6)
	// Newest entry (the 8th seeded) comes first.
	assert.Equal(t, int64(800), page1.Transactions[0].Amount)

	page2, err := svc.Transactions(ctx, client.UserID, 2)
	require.NoError(t, err)
	require.Len(t, page2.Transactions, 2)
	assert.Equal(t, int64(100), page2.Transactions[1].Amount)

	page3, err := svc.Transactions(ctx, client.UserID, 3)
	require.NoError(t, err)
	assert.Empty(t, page3.Transactions)
}

func TestTransactions_EmptyHistory(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	client := fixtures.SeedClient(t, uow, 0)
	svc := New(uow, slog.Default())

	page, err := svc.Transactions(context.Background(), client.UserID, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Transactions)
	assert.Equal(t, 1, page.TotalPages)
}

func TestTransaction_EnforcesOwnership(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	owner := fixtures.SeedClient(t, uow, 0)
	other := fixtures.SeedClient(t, uow, 0)
	svc := New(uow, slog.Default())

	txID := fixtures.SeedTransaction(t, uow, owner, 500,
		domain.TransactionDebit, domain.StatusPending, time.Now().UTC())

	_, err := svc.Transaction(context.Background(), other.UserID, txID)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	got, err := svc.Transaction(context.Background(), owner.UserID, txID)
	require.NoError(t, err)
	assert.Equal(t, txID, got.ID)
}

func TestTotalBalance_SumsAccounts(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	client := fixtures.SeedClient(t, uow, 250000)
	svc := New(uow, slog.Default())

	total, err := svc.TotalBalance(context.Background(), client.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(250000), total)
}

func TestProfile_NotFound(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	client := fixtures.SeedClient(t, uow, 0)
	svc := New(uow, slog.Default())

	p, err := svc.Profile(context.Background(), client.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Avery Sterling", p.FullName)

	_, err = svc.Profile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
