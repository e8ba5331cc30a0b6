package main

import (
	"fmt"

	"github.com/amirasaad/banking/infra/initializer"
	"github.com/amirasaad/banking/pkg/config"
	clientsvc "github.com/amirasaad/banking/pkg/service/client"
	"github.com/amirasaad/banking/webapi"
	"github.com/charmbracelet/log"
)

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

	svc := clientsvc.New(deps.Repo, deps.Logger)
	app := webapi.New(svc, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server", "env", cfg.Env, "address", addr)

	return app.Listen(addr)
}
