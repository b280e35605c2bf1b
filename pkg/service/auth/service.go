// Package auth implements signup, login and token handling. Login requires
// both a valid email/password pair and a recognized client access code.
package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/gibraltarbank/gibraltar/pkg/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps the bcrypt cost constant on the failure paths so a login
// attempt against an unknown email takes as long as one against a known
// email with a wrong password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service implements authentication and account provisioning.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

// New creates an auth service.
func New(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// SignupInput carries the fields collected at enrollment.
type SignupInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone_number"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

// SignupResult is returned to a newly enrolled client. The access code is
// shown exactly once, at enrollment.
type SignupResult struct {
	User       *dto.UserRead    `json:"user"`
	Profile    *dto.ProfileRead `json:"profile"`
	AccessCode string           `json:"access_code"`
}

// Signup enrolls a new client: a user record, a profile with a freshly
// generated access code, and one Checking account, created atomically.
func (s *Service) Signup(
	ctx context.Context,
	input *SignupInput,
) (result *SignupResult, err error) {
	log := s.logger.With("handler", "Signup", "email", input.Email)
	log.Debug("enrolling client")

	exists, err := s.uow.Users().ExistsByEmail(ctx, input.Email)
	if err != nil {
		log.Error("enrollment lookup failed", "error", err)
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(input.Password), bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	userID := uuid.New()
	accessCode, err := generateAccessCode()
	if err != nil {
		return nil, err
	}
	accountNumber, err := randomDigits(10)
	if err != nil {
		return nil, err
	}

	profileCreate := &dto.ProfileCreate{
		ID:         uuid.New(),
		UserID:     userID,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		FullName:   strings.TrimSpace(input.FirstName + " " + input.LastName),
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		City:       input.City,
		State:      input.State,
		ZipCode:    input.ZipCode,
		Country:    input.Country,
		AccessCode: accessCode,
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := uow.Users().Create(ctx, &dto.UserCreate{
			ID:       userID,
			Email:    input.Email,
			Password: string(hashed),
		}); err != nil {
			return err
		}
		if err := uow.Profiles().Create(ctx, profileCreate); err != nil {
			return err
		}
		return uow.Accounts().Create(ctx, &dto.AccountCreate{
			ID:            uuid.New(),
			UserID:        userID,
			AccountType:   domain.AccountChecking,
			AccountNumber: accountNumber,
			RoutingNumber: defaultRoutingNumber,
			Balance:       0,
		})
	})
	if err != nil {
		log.Error("enrollment failed", "error", err)
		return nil, err
	}

	user, err := s.uow.Users().Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.uow.Profiles().GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	log.Info("client enrolled", "user_id", userID)
	return &SignupResult{
		User:       user,
		Profile:    profile,
		AccessCode: accessCode,
	}, nil
}

// Login authenticates a client. The access code must belong to some profile
// before the password is even considered; every failure reports the same
// error so callers cannot distinguish which factor was wrong.
func (s *Service) Login(
	ctx context.Context,
	email, password, accessCode string,
) (user *dto.UserRead, err error) {
	log := s.logger.With("handler", "Login", "email", email)
	log.Debug("authenticating client")

	codeOK, err := s.uow.Profiles().ExistsByAccessCode(ctx, accessCode)
	if err != nil {
		log.Error("access code lookup failed", "error", err)
		return nil, err
	}

	user, err = s.uow.Users().GetByEmail(ctx, email)
	if err != nil {
		log.Error("user lookup failed", "error", err)
		return nil, err
	}

	hash := dummyHash
	if user != nil {
		hash = user.HashedPassword
	}
	passwordOK := bcrypt.CompareHashAndPassword(
		[]byte(hash), []byte(password),
	) == nil

	if !codeOK || user == nil || !passwordOK {
		log.Warn("login rejected")
		return nil, domain.ErrUserUnauthorized
	}

	log.Info("client authenticated", "user_id", user.ID)
	return user, nil
}

// GenerateToken issues a signed HS256 token for the given user.
func (s *Service) GenerateToken(user *dto.UserRead) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = user.ID.String()
	claims["email"] = user.Email
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	return token.SignedString([]byte(s.cfg.Secret))
}

// CurrentUserID extracts the authenticated user id from a verified token.
func CurrentUserID(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domain.ErrUserUnauthorized
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, domain.ErrUserUnauthorized
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrUserUnauthorized
	}
	return id, nil
}

// defaultRoutingNumber is the institution's single ABA routing number.
const defaultRoutingNumber = "067014822"

const accessCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generateAccessCode returns an 8-character code drawn from an alphabet
// without easily confused characters.
func generateAccessCode() (string, error) {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		n, err := rand.Int(
			rand.Reader, big.NewInt(int64(len(accessCodeAlphabet))),
		)
		if err != nil {
			return "", err
		}
		b.WriteByte(accessCodeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

func randomDigits(n int) (string, error) {
	var b strings.Builder
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%d", d.Int64())
	}
	return b.String(), nil
}
