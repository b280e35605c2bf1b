package statement_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/gibraltarbank/gibraltar/internal/fixtures"
	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/service/account"
	"github.com/gibraltarbank/gibraltar/pkg/service/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	generated := time.Date(2025, time.March, 9, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "statement_2025-03-09.pdf", statement.Filename(generated))
}

func TestRender_ProducesPDF(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	client := fixtures.SeedClient(t, uow, 500000)
	for i := 0; i < 3; i++ {
		fixtures.SeedTransaction(t, uow, client, 2500,
			domain.TransactionDebit, domain.StatusCompleted,
			time.Now().UTC().Add(-time.Duration(i)*time.Hour))
	}

	accounts := account.New(uow, slog.Default())
	svc := statement.New(accounts, &config.Statement{
		BankName:     "Gibraltar Private Bank & Trust",
		AddressLine1: "400 Arthur Godfrey Road, Suite 506",
		AddressLine2: "Miami Beach, FL 33140",
	}, slog.Default())

	pdf, err := svc.Render(context.Background(), client.UserID)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRender_EmptyHistory(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	client := fixtures.SeedClient(t, uow, 0)

	accounts := account.New(uow, slog.Default())
	svc := statement.New(accounts, &config.Statement{
		BankName: "Gibraltar Private Bank & Trust",
	}, slog.Default())

	pdf, err := svc.Render(context.Background(), client.UserID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
