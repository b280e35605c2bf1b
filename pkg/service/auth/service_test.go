package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/gibraltarbank/gibraltar/internal/fixtures"
	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, *fixtures.Client) {
	t.Helper()
	uow := fixtures.NewTestUoW(t)
	client := fixtures.SeedClient(t, uow, 10000)
	cfg := &config.Jwt{Secret: "test-secret", Expiry: time.Hour}
	return New(uow, cfg, slog.Default()), client
}

func TestLogin_Success(t *testing.T) {
	svc, client := newService(t)
	user, err := svc.Login(context.Background(),
		client.Email, client.Password, client.AccessCode)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, client.UserID, user.ID)
}

func TestLogin_RejectsUnknownAccessCode(t *testing.T) {
	svc, client := newService(t)
	user, err := svc.Login(context.Background(),
		client.Email, client.Password, "WRONGCODE")
	assert.ErrorIs(t, err, domain.ErrUserUnauthorized)
	assert.Nil(t, user)
}

func TestLogin_RejectsWrongPassword(t *testing.T) {
	svc, client := newService(t)
	user, err := svc.Login(context.Background(),
		client.Email, "not the password", client.AccessCode)
	assert.ErrorIs(t, err, domain.ErrUserUnauthorized)
	assert.Nil(t, user)
}

func TestLogin_RejectsUnknownEmail(t *testing.T) {
	svc, client := newService(t)
	user, err := svc.Login(context.Background(),
		"nobody@example.com", client.Password, client.AccessCode)
	assert.ErrorIs(t, err, domain.ErrUserUnauthorized)
	assert.Nil(t, user)
}

func TestLogin_AccessCodeFromAnotherProfilePasses(t *testing.T) {
	// The gate only checks that some profile holds the code; the password
	// check still binds the login to the right user.
	uow := fixtures.NewTestUoW(t)
	a := fixtures.SeedClient(t, uow, 0)
	b := fixtures.SeedClient(t, uow, 0)
	svc := New(uow,
		&config.Jwt{Secret: "test-secret", Expiry: time.Hour},
		slog.Default())

	user, err := svc.Login(
		context.Background(), a.Email, a.Password, b.AccessCode)
	require.NoError(t, err)
	assert.Equal(t, a.UserID, user.ID)
}

func TestSignup_ProvisionsUserProfileAndAccount(t *testing.T) {
	uow := fixtures.NewTestUoW(t)
	svc := New(uow,
		&config.Jwt{Secret: "test-secret", Expiry: time.Hour},
		slog.Default())
	ctx := context.Background()

	result, err := svc.Signup(ctx, &SignupInput{
		Email:     "new.client@example.com",
		Password:  "a strong passphrase",
		FirstName: "Morgan",
		LastName:  "Reyes",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.AccessCode, 8)
	assert.Equal(t, "Morgan Reyes", result.Profile.FullName)

	accounts, err := uow.Accounts().ListByUser(ctx, result.User.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, domain.AccountChecking, accounts[0].AccountType)
	assert.Equal(t, int64(0), accounts[0].Balance)

	// The generated code gates login immediately.
	user, err := svc.Login(ctx,
		"new.client@example.com", "a strong passphrase", result.AccessCode)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, user.ID)
}

func TestSignup_RejectsDuplicateEmail(t *testing.T) {
	svc, client := newService(t)
	_, err := svc.Signup(context.Background(), &SignupInput{
		Email:     client.Email,
		Password:  "whatever else",
		FirstName: "Dup",
		LastName:  "User",
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	svc, client := newService(t)
	ctx := context.Background()

	user, err := svc.Login(ctx,
		client.Email, client.Password, client.AccessCode)
	require.NoError(t, err)

	signed, err := svc.GenerateToken(user)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	id, err := CurrentUserID(parsed)
	require.NoError(t, err)
	assert.Equal(t, client.UserID, id)
}
