package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
)

// loadAppConfig loads the application configuration from the environment,
// an optional .env file and an optional config.yaml.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfig records non-secret configuration once the logger is set up.
func logConfig(cfg *config.Config, logger *slog.Logger) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"request_timeout_seconds", cfg.Server.RequestTimeoutSeconds,
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"bcrypt_cost", cfg.Auth.BcryptCost)
	logger.Debug("Database configuration", "url_present", cfg.Database.URL != "")
	logger.Debug("Auth configuration", "jwt_secret_present", cfg.Auth.JWTSecret != "")
}
