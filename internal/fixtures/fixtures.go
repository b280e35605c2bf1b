// Package fixtures provides shared test scaffolding: an isolated in-memory
// database and pre-seeded clients.
package fixtures

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	infra_repository "github.com/gibraltarbank/gibraltar/infra/repository"
	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	"github.com/gibraltarbank/gibraltar/pkg/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory SQLite database with the full schema.
// Each call gets its own database, so tests stay isolated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := infra_repository.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// NewTestUoW returns a unit of work over a fresh test database.
func NewTestUoW(t *testing.T) repository.UnitOfWork {
	t.Helper()
	return infra_repository.NewUoW(NewTestDB(t))
}

var accountSeq uint64

// Client is a fully provisioned test user.
type Client struct {
	UserID    uuid.UUID
	ProfileID uuid.UUID
	AccountID uuid.UUID

	Email      string
	Password   string
	AccessCode string
}

// SeedClient inserts a user, profile and checking account with the given
// balance in cents.
func SeedClient(
	t *testing.T,
	uow repository.UnitOfWork,
	balance money.Amount,
) *Client {
	t.Helper()
	ctx := context.Background()

	client := &Client{
		UserID:     uuid.New(),
		ProfileID:  uuid.New(),
		AccountID:  uuid.New(),
		Email:      fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		Password:   "correct horse battery",
		AccessCode: "GPBT2024",
	}

	// Account numbers are unique per database; keep the "3210" suffix so
	// masked-number assertions stay stable across seeded clients.
	accountNumber := fmt.Sprintf(
		"%06d3210", atomic.AddUint64(&accountSeq, 1)%1000000)

	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(client.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := uow.Users().Create(ctx, &dto.UserCreate{
		ID:       client.UserID,
		Email:    client.Email,
		Password: string(hashed),
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if err := uow.Profiles().Create(ctx, &dto.ProfileCreate{
		ID:         client.ProfileID,
		UserID:     client.UserID,
		FirstName:  "Avery",
		LastName:   "Sterling",
		FullName:   "Avery Sterling",
		Email:      client.Email,
		Phone:      "305-555-0147",
		City:       "Miami Beach",
		State:      "FL",
		Country:    "US",
		AccessCode: client.AccessCode,
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	if err := uow.Accounts().Create(ctx, &dto.AccountCreate{
		ID:            client.AccountID,
		UserID:        client.UserID,
		AccountType:   domain.AccountChecking,
		AccountNumber: accountNumber,
		RoutingNumber: "067014822",
		Balance:       balance,
	}); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return client
}

// SeedTransaction inserts one ledger entry for the client.
func SeedTransaction(
	t *testing.T,
	uow repository.UnitOfWork,
	client *Client,
	amount money.Amount,
	txType domain.TransactionType,
	status domain.TransactionStatus,
	date time.Time,
) uuid.UUID {
	t.Helper()
	id := uuid.New()
	if err := uow.Transactions().Create(context.Background(), &dto.TransactionCreate{
		ID:              id,
		AccountID:       client.AccountID,
		UserID:          client.UserID,
		TransactionDate: date,
		Description:     "Seeded entry",
		Amount:          amount,
		Type:            txType,
		Status:          status,
	}); err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
	return id
}
