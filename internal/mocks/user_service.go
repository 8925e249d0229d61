package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
)

// MockUserService implements service.UserService for testing.
// Methods without a function field return zero values.
type MockUserService struct {
	RegisterFn func(ctx context.Context, name, email, password string) (*domain.User, error)
	VerifyFn   func(ctx context.Context, email, password string) (*domain.User, error)
	IdentifyFn func(ctx context.Context, userID uuid.UUID) (domain.Identity, error)
	GetUserFn  func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

var _ service.UserService = (*MockUserService)(nil)

// Register implements service.UserService
func (m *MockUserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, name, email, password)
	}
	return nil, nil
}

// Verify implements service.UserService
func (m *MockUserService) Verify(ctx context.Context, email, password string) (*domain.User, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, email, password)
	}
	return nil, nil
}

// Identify implements service.UserService
func (m *MockUserService) Identify(ctx context.Context, userID uuid.UUID) (domain.Identity, error) {
	if m.IdentifyFn != nil {
		return m.IdentifyFn(ctx, userID)
	}
	return domain.Identity{}, nil
}

// GetUser implements service.UserService
func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return nil, nil
}
