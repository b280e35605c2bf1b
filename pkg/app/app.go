// Package app assembles the services from their shared dependencies.
package app

import (
	"log/slog"

	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/pkg/repository"
	accountsvc "github.com/gibraltarbank/gibraltar/pkg/service/account"
	adminsvc "github.com/gibraltarbank/gibraltar/pkg/service/admin"
	authsvc "github.com/gibraltarbank/gibraltar/pkg/service/auth"
	depositsvc "github.com/gibraltarbank/gibraltar/pkg/service/deposit"
	statementsvc "github.com/gibraltarbank/gibraltar/pkg/service/statement"
	supportsvc "github.com/gibraltarbank/gibraltar/pkg/service/support"
	transfersvc "github.com/gibraltarbank/gibraltar/pkg/service/transfer"
)

// Deps contains the shared dependencies every service is built from.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
}

// App holds the constructed services and configuration.
type App struct {
	Deps   *Deps
	Config *config.App

	AuthService      *authsvc.Service
	AccountService   *accountsvc.Service
	TransferService  *transfersvc.Service
	DepositService   *depositsvc.Service
	SupportService   *supportsvc.Service
	StatementService *statementsvc.Service
	AdminService     *adminsvc.Service
}

// New wires every service.
func New(deps *Deps, cfg *config.App) *App {
	app := &App{Deps: deps, Config: cfg}

	app.AuthService = authsvc.New(deps.Uow, cfg.Auth.Jwt, deps.Logger)
	app.AccountService = accountsvc.New(deps.Uow, deps.Logger)
	app.TransferService = transfersvc.New(deps.Uow, deps.Logger)
	app.DepositService = depositsvc.New(deps.Uow, cfg.Uploads, deps.Logger)
	app.SupportService = supportsvc.New(cfg.Support, deps.Logger)
	app.StatementService = statementsvc.New(
		app.AccountService, cfg.Statement, deps.Logger)
	app.AdminService = adminsvc.New(deps.Uow, deps.Logger)
	return app
}
