// Package initializer wires process-wide dependencies at startup.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/banking/infra"
	clientrepo "github.com/amirasaad/banking/infra/repository/client"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/repository"
	"gorm.io/gorm"
)

// Deps holds the dependencies shared by all requests for the lifetime of the
// process.
type Deps struct {
	DB     *gorm.DB
	Repo   repository.ClientRepository
	Logger *slog.Logger
}

// InitializeDependencies sets up the logger, opens the store connection and
// runs schema migration.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := clientrepo.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Deps{
		DB:     db,
		Repo:   clientrepo.New(db),
		Logger: logger,
	}, nil
}
