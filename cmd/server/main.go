package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gibraltarbank/gibraltar/infra/initializer"
	"github.com/gibraltarbank/gibraltar/pkg/app"
	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/webapi"
)

// @title Gibraltar Private Bank & Trust API
// @version 1.0.0
// @description Client web application API for Gibraltar Private Bank & Trust
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	application := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(application)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return fiberApp.Listen(addr)
}
