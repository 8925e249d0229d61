package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/service/auth"
	"github.com/phrazzld/tasks-api/internal/store"
)

// healthChecker reports whether the backing database is reachable.
type healthChecker interface {
	PingContext(ctx context.Context) error
}

// appDependencies is everything the router needs. newApplication fills it
// from a real database; tests fill it with mocks.
type appDependencies struct {
	config      *config.Config
	logger      *slog.Logger
	db          healthChecker
	jwtService  auth.JWTService
	userService service.UserService
	taskService service.TaskService
}

// application owns the server's long-lived dependencies.
type application struct {
	appDependencies
	sqlDB *sql.DB
}

// newApplication wires stores and services on top of db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	userStore := postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, logger)
	taskStore := postgres.NewPostgresTaskStore(db, logger)

	deps, err := buildDependencies(cfg, logger, db, db, userStore, taskStore)
	if err != nil {
		return nil, err
	}

	return &application{appDependencies: *deps, sqlDB: db}, nil
}

// buildDependencies creates the auth and domain services over the given stores.
func buildDependencies(
	cfg *config.Config,
	logger *slog.Logger,
	health healthChecker,
	txs store.TxBeginner,
	userStore store.UserStore,
	taskStore store.TaskStore,
) (*appDependencies, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	verifier, err := auth.NewBcryptVerifier(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create password verifier: %w", err)
	}

	userService, err := service.NewUserService(userStore, txs, verifier, cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	taskService, err := service.NewTaskService(taskStore, txs, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	return &appDependencies{
		config:      cfg,
		logger:      logger,
		db:          health,
		jwtService:  jwtService,
		userService: userService,
		taskService: taskService,
	}, nil
}

// Run serves HTTP until ctx is canceled, then shuts down and releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	router := app.setupRouter()
	return startHTTPServer(ctx, router, app.config.Server.Port, app.logger)
}

func (app *application) cleanup() {
	if app.sqlDB == nil {
		return
	}
	if err := app.sqlDB.Close(); err != nil {
		app.logger.Error("Failed to close database connection", "error", err)
		return
	}
	app.logger.Info("Database connection closed")
}
