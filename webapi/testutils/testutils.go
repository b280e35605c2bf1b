// Package testutils provides the shared suite for webapi tests: an
// in-memory SQLite database behind the full Fiber app.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	infra_repository "github.com/gibraltarbank/gibraltar/infra/repository"
	"github.com/gibraltarbank/gibraltar/internal/fixtures"
	"github.com/gibraltarbank/gibraltar/pkg/app"
	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/webapi"
	"github.com/gibraltarbank/gibraltar/webapi/common"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

// APITestSuite wires the full HTTP surface against an in-memory database.
type APITestSuite struct {
	suite.Suite
	App     *fiber.App
	Backend *app.App
}

// TestConfig returns the configuration the suite runs with. The rate limit
// is high enough that tests never trip it.
func TestConfig(uploadsDir string) *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:    &config.Log{Format: "text"},
		DB:     &config.DB{},
		Auth: &config.Auth{
			Jwt: &config.Jwt{Secret: "test-secret", Expiry: time.Hour},
		},
		RateLimit: &config.RateLimit{
			MaxRequests: 10000, Window: time.Minute},
		Uploads: &config.Uploads{Dir: uploadsDir},
		Support: &config.Support{
			MaxMessages: 20,
			TypingDelay: time.Millisecond,
			AgentName:   "Sarah",
		},
		Statement: &config.Statement{
			BankName:     "Gibraltar Private Bank & Trust",
			AddressLine1: "400 Arthur Godfrey Road, Suite 506",
			AddressLine2: "Miami Beach, FL 33140",
		},
	}
}

// SetupTest builds a fresh database and app for every test.
func (s *APITestSuite) SetupTest() {
	db := fixtures.NewTestDB(s.T())
	deps := &app.Deps{
		Uow:    infra_repository.NewUoW(db),
		Logger: slog.Default(),
	}
	s.Backend = app.New(deps, TestConfig(s.T().TempDir()))
	s.App = webapi.SetupApp(s.Backend)
	log.SetOutput(io.Discard)
}

// MakeRequest performs one JSON request against the app under test.
func (s *APITestSuite) MakeRequest(
	method, path, body, token string,
) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.App.Test(req, 1000000)
	s.Require().NoError(err)
	return resp
}

// Client is an enrolled test client with its login factors.
type Client struct {
	Email      string
	Password   string
	AccessCode string
}

// EnrollClient creates a client through POST /auth/signup and captures the
// one-time access code from the response.
func (s *APITestSuite) EnrollClient() *Client {
	client := &Client{
		Email:    fmt.Sprintf("client_%d@example.com", time.Now().UnixNano()),
		Password: "correct horse battery",
	}
	body := fmt.Sprintf(
		`{"email":%q,"password":%q,"first_name":"Avery","last_name":"Sterling"}`,
		client.Email, client.Password,
	)
	resp := s.MakeRequest("POST", "/auth/signup", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	var response common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	data, ok := response.Data.(map[string]any)
	s.Require().True(ok, "signup response data should be an object")
	client.AccessCode, ok = data["access_code"].(string)
	s.Require().True(ok, "signup response should carry the access code")
	return client
}

// LoginClient logs the client in over HTTP and returns the JWT token.
func (s *APITestSuite) LoginClient(client *Client) string {
	body := fmt.Sprintf(
		`{"email":%q,"password":%q,"access_code":%q}`,
		client.Email, client.Password, client.AccessCode,
	)
	resp := s.MakeRequest("POST", "/auth/login", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var response common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	data, ok := response.Data.(map[string]any)
	s.Require().True(ok)
	token, ok := data["token"].(string)
	s.Require().True(ok)
	s.Require().NotEmpty(token)
	return token
}
