package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/service/auth"
	"github.com/phrazzld/tasks-api/internal/store"
)

// UserService provides registration, login and identity operations.
type UserService interface {
	// Register creates a user with the "user" role. The email is normalized
	// before the uniqueness check. Returns store.ErrEmailExists when the
	// email is taken, or domain validation errors.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Verify checks an email and password pair. Returns
	// ErrInvalidCredentials when either is wrong.
	Verify(ctx context.Context, email, password string) (*domain.User, error)

	// Identify resolves the identity behind a validated token.
	// Returns store.ErrUserNotFound when the user no longer exists.
	Identify(ctx context.Context, userID uuid.UUID) (domain.Identity, error)

	// GetUser retrieves a user by their ID
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type userServiceImpl struct {
	userStore         store.UserStore
	db                store.TxBeginner
	verifier          auth.PasswordVerifier
	minPasswordLength int
	logger            *slog.Logger
}

// NewUserService creates a new UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(
	userStore store.UserStore,
	db store.TxBeginner,
	verifier auth.PasswordVerifier,
	cfg config.AuthConfig,
	logger *slog.Logger,
) (UserService, error) {
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", nil)
	}
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", nil)
	}
	if verifier == nil {
		return nil, domain.NewValidationError("verifier", "cannot be nil", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore:         userStore,
		db:                db,
		verifier:          verifier,
		minPasswordLength: cfg.PasswordMinLength,
		logger:            logger.With(slog.String("component", "user_service")),
	}, nil
}

// Register implements UserService.Register
func (s *userServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(name, email, password)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(password, s.minPasswordLength); err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		_, err := txStore.GetByEmail(ctx, user.Email)
		switch {
		case err == nil:
			return store.ErrEmailExists
		case !errors.Is(err, store.ErrUserNotFound):
			return err
		}

		return txStore.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) || errors.Is(err, domain.ErrValidation) {
			log.Debug("registration rejected", slog.String("reason", err.Error()))
			return nil, err
		}
		log.Error("failed to register user", slog.String("error", err.Error()))
		return nil, NewServiceError("user", "register", err)
	}

	user.Password = ""
	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Verify implements UserService.Verify
func (s *userServiceImpl) Verify(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.verifier.CompareDummy(password)
			log.Debug("login failed: unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user for login", slog.String("error", err.Error()))
		return nil, NewServiceError("user", "verify", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login failed: password mismatch", slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Identify implements UserService.Identify
func (s *userServiceImpl) Identify(ctx context.Context, userID uuid.UUID) (domain.Identity, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to identify user",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
			return domain.Identity{}, NewServiceError("user", "identify", err)
		}
		return domain.Identity{}, err
	}
	return user.Identity(), nil
}

// GetUser implements UserService.GetUser
func (s *userServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			return nil, NewServiceError("user", "get", err)
		}
		return nil, err
	}
	return user, nil
}

// Authorize returns nil when identity's role is one of roles, and a
// *ForbiddenError otherwise.
func Authorize(identity domain.Identity, roles ...domain.Role) error {
	if slices.Contains(roles, identity.Role) {
		return nil
	}
	return &ForbiddenError{Role: identity.Role}
}
