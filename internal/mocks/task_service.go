package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
)

// MockTaskService implements service.TaskService for testing.
// Methods without a function field return zero values.
type MockTaskService struct {
	ListFn   func(ctx context.Context, ownerID uuid.UUID, params service.TaskListParams) (*service.TaskPage, error)
	CreateFn func(ctx context.Context, ownerID uuid.UUID, input service.CreateTaskInput) (*domain.Task, error)
	UpdateFn func(ctx context.Context, ownerID, taskID uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)
	DeleteFn func(ctx context.Context, ownerID, taskID uuid.UUID) error
}

var _ service.TaskService = (*MockTaskService)(nil)

// List implements service.TaskService
func (m *MockTaskService) List(
	ctx context.Context,
	ownerID uuid.UUID,
	params service.TaskListParams,
) (*service.TaskPage, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID, params)
	}
	return &service.TaskPage{}, nil
}

// Create implements service.TaskService
func (m *MockTaskService) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	input service.CreateTaskInput,
) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, ownerID, input)
	}
	return nil, nil
}

// Update implements service.TaskService
func (m *MockTaskService) Update(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ownerID, taskID, patch)
	}
	return nil, nil
}

// Delete implements service.TaskService
func (m *MockTaskService) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, taskID)
	}
	return nil
}
