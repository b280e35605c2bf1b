package transfer

import (
	"context"
	"log/slog"
	"testing"

	"github.com/gibraltarbank/gibraltar/internal/fixtures"
	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput(accountID string) *Input {
	return &Input{
		SourceAccountID: accountID,
		RecipientName:   "Jane Doe",
		AccountNumber:   "12345678",
		RoutingNumber:   "021000021",
		Amount:          "100.50",
		Memo:            "rent",
	}
}

func TestValidate_AllFieldsMissing(t *testing.T) {
	errs := Validate(&Input{})
	assert.Equal(t, "Recipient name is required.", errs["recipient_name"])
	assert.Equal(t, "Account number is required.", errs["account_number"])
	assert.Equal(t, "Routing number is required.", errs["routing_number"])
	assert.Equal(t, "Amount is required.", errs["amount"])
	assert.Equal(t, "Please select an account.", errs["source_account"])
}

func TestValidate_FieldRules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Input)
		field   string
		message string
	}{
		{
			"digits in recipient name",
			func(in *Input) { in.RecipientName = "Jane D03" },
			"recipient_name", "Only letters are allowed.",
		},
		{
			"letters in account number",
			func(in *Input) { in.AccountNumber = "1234567a" },
			"account_number", "Only numbers are allowed.",
		},
		{
			"account number too short",
			func(in *Input) { in.AccountNumber = "1234567" },
			"account_number",
			"Account number must be between 8 and 17 digits.",
		},
		{
			"account number too long",
			func(in *Input) { in.AccountNumber = "123456789012345678" },
			"account_number",
			"Account number must be between 8 and 17 digits.",
		},
		{
			"routing number wrong length",
			func(in *Input) { in.RoutingNumber = "12345678" },
			"routing_number", "Routing number must be 9 digits.",
		},
		{
			"routing number non numeric",
			func(in *Input) { in.RoutingNumber = "02100002a" },
			"routing_number", "Only numbers are allowed.",
		},
		{
			"zero amount",
			func(in *Input) { in.Amount = "0" },
			"amount", "Enter a valid amount greater than zero.",
		},
		{
			"negative amount",
			func(in *Input) { in.Amount = "-10" },
			"amount", "Enter a valid amount greater than zero.",
		},
		{
			"non numeric amount",
			func(in *Input) { in.Amount = "ten" },
			"amount", "Enter a valid amount greater than zero.",
		},
		{
			"amount beyond cents range",
			func(in *Input) { in.Amount = "1e20" },
			"amount", "Enter a valid amount greater than zero.",
		},
		{
			"huge literal amount",
			func(in *Input) { in.Amount = "99999999999999999999" },
			"amount", "Enter a valid amount greater than zero.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput(uuid.NewString())
			tc.mutate(in)
			errs := Validate(in)
			assert.Equal(t, tc.message, errs[tc.field])
			assert.Len(t, errs, 1)
		})
	}
}

func TestValidate_AcceptsBoundaryLengths(t *testing.T) {
	in := validInput(uuid.NewString())
	in.AccountNumber = "12345678" // 8 digits
	assert.Empty(t, Validate(in))
	in.AccountNumber = "12345678901234567" // 17 digits
	assert.Empty(t, Validate(in))
}

func TestPreviewTransfer(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	client := fixtures.SeedClient(t, uow, 50000)
	svc := New(uow, slog.Default())

	preview, fieldErrs, err := svc.PreviewTransfer(
		context.Background(), client.UserID,
		validInput(client.AccountID.String()))
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, preview)

	assert.Equal(t, "Jane Doe", preview.RecipientName)
	assert.Equal(t, "••••5678", preview.AccountNumberLast)
	assert.Equal(t, "$100.50", preview.AmountFormatted)
	assert.Equal(t, "••••3210", preview.SourceAccount)
	assert.Equal(t, "1-2 Business Days", preview.EstimatedArrival)
}

func TestSubmit_CreatesPendingDebitWithoutTouchingBalance(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	client := fixtures.SeedClient(t, uow, 50000)
	svc := New(uow, slog.Default())
	ctx := context.Background()

	result, fieldErrs, err := svc.Submit(
		ctx, client.UserID, validInput(client.AccountID.String()))
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, result)
	assert.Equal(t, domain.TransferPending, result.Status)
	assert.Equal(t, int64(10050), result.Amount)

	transactions, err := uow.Transactions().ListByUser(ctx, client.UserID)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	txn := transactions[0]
	assert.Equal(t, domain.TransactionDebit, txn.Type)
	assert.Equal(t, domain.StatusPending, txn.Status)
	assert.Equal(t, "Transfer to Jane Doe - rent", txn.Description)
	require.NotNil(t, txn.RelatedTransferID)
	assert.Equal(t, result.ID, *txn.RelatedTransferID)

	// Submission never debits the account; review does that later.
	acct, err := uow.Accounts().Get(ctx, client.AccountID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), acct.Balance)
}

func TestSubmit_DescriptionWithoutMemo(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	client := fixtures.SeedClient(t, uow, 50000)
	svc := New(uow, slog.Default())
	ctx := context.Background()

	in := validInput(client.AccountID.String())
	in.Memo = ""
	_, fieldErrs, err := svc.Submit(ctx, client.UserID, in)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	transactions, err := uow.Transactions().ListByUser(ctx, client.UserID)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Transfer to Jane Doe", transactions[0].Description)
}

func TestSubmit_InsufficientFunds(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	client := fixtures.SeedClient(t, uow, 5000)
	svc := New(uow, slog.Default())
	ctx := context.Background()

	_, _, err := svc.Submit(
		ctx, client.UserID, validInput(client.AccountID.String()))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	transactions, err := uow.Transactions().ListByUser(ctx, client.UserID)
	require.NoError(t, err)
	assert.Empty(t, transactions)
	transfers, err := uow.Transfers().ListByUser(ctx, client.UserID)
	require.NoError(t, err)
	assert.Empty(t, transfers)
}

func TestSubmit_RejectsForeignAccount(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	owner := fixtures.SeedClient(t, uow, 50000)
	other := fixtures.SeedClient(t, uow, 50000)
	svc := New(uow, slog.Default())

	_, _, err := svc.Submit(
		context.Background(), other.UserID,
		validInput(owner.AccountID.String()))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestSubmit_InvalidInputWritesNothing(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	client := fixtures.SeedClient(t, uow, 50000)
	svc := New(uow, slog.Default())
	ctx := context.Background()

	in := validInput(client.AccountID.String())
	in.Amount = "-1"
	_, fieldErrs, err := svc.Submit(ctx, client.UserID, in)
	require.NoError(t, err)
	assert.Equal(t,
		"Enter a valid amount greater than zero.", fieldErrs["amount"])

	transfers, err := uow.Transfers().ListByUser(ctx, client.UserID)
	require.NoError(t, err)
	assert.Empty(t, transfers)
}
