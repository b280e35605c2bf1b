// Package initializer builds the application's shared dependencies:
// logger, database connection, schema and unit of work.
package initializer

import (
	"fmt"

	"github.com/gibraltarbank/gibraltar/infra"
	infra_repository "github.com/gibraltarbank/gibraltar/infra/repository"
	"github.com/gibraltarbank/gibraltar/pkg/app"
	"github.com/gibraltarbank/gibraltar/pkg/config"
)

// InitializeDependencies initializes all the application dependencies.
func InitializeDependencies(cfg *config.App) (deps *app.Deps, err error) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = infra_repository.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	deps.Uow = infra_repository.NewUoW(db)

	logger.Info("dependencies initialized", "env", cfg.Env)
	return deps, nil
}
