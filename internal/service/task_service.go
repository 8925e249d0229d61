package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// CreateTaskInput carries the fields a client may set on a new task.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    domain.Priority
	Completed   bool
}

// TaskService provides the task use cases. Every operation acts on behalf
// of ownerID and can only see or change that owner's tasks.
type TaskService interface {
	// List returns one page of ownerID's tasks filtered by params.
	List(ctx context.Context, ownerID uuid.UUID, params TaskListParams) (*TaskPage, error)

	// Create adds a task owned by ownerID.
	Create(ctx context.Context, ownerID uuid.UUID, input CreateTaskInput) (*domain.Task, error)

	// Update applies patch to the task. Returns ErrTaskNotFound when the
	// task does not exist or belongs to someone else.
	Update(ctx context.Context, ownerID, taskID uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes the task. Returns ErrTaskNotFound when the task does
	// not exist or belongs to someone else.
	Delete(ctx context.Context, ownerID, taskID uuid.UUID) error
}

type taskServiceImpl struct {
	taskStore store.TaskStore
	db        store.TxBeginner
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(taskStore store.TaskStore, db store.TxBeginner, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", nil)
	}
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &taskServiceImpl{
		taskStore: taskStore,
		db:        db,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// List implements TaskService.List
func (s *taskServiceImpl) List(ctx context.Context, ownerID uuid.UUID, params TaskListParams) (*TaskPage, error) {
	q := BuildTaskQuery(ownerID, params)

	tasks, total, err := s.taskStore.List(ctx, q)
	if err != nil {
		return nil, NewServiceError("task", "list", err)
	}

	return &TaskPage{
		Tasks: tasks,
		Total: total,
		Page:  PageOf(q),
		Limit: q.Limit,
		Pages: PageCount(total, q.Limit),
	}, nil
}

// Create implements TaskService.Create
func (s *taskServiceImpl) Create(ctx context.Context, ownerID uuid.UUID, input CreateTaskInput) (*domain.Task, error) {
	task, err := domain.NewTask(ownerID, input.Title, input.Description, input.Priority, input.Completed)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, NewServiceError("task", "create", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", ownerID.String()))
	return task, nil
}

// Update implements TaskService.Update
func (s *taskServiceImpl) Update(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	var updated *domain.Task

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.taskStore.WithTx(tx)

		task, err := txStore.GetForOwner(ctx, taskID, ownerID)
		if err != nil {
			return err
		}
		if err := task.Apply(patch); err != nil {
			return err
		}
		if err := txStore.Update(ctx, task); err != nil {
			return err
		}
		updated = task
		return nil
	})
	if err != nil {
		return nil, s.mapTaskError(ctx, "update", taskID, err)
	}

	return updated, nil
}

// Delete implements TaskService.Delete
func (s *taskServiceImpl) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.taskStore.WithTx(tx)

		if _, err := txStore.GetForOwner(ctx, taskID, ownerID); err != nil {
			return err
		}
		return txStore.DeleteForOwner(ctx, taskID, ownerID)
	})
	if err != nil {
		return s.mapTaskError(ctx, "delete", taskID, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("task deleted",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", ownerID.String()))
	return nil
}

// mapTaskError turns store errors from a mutation into service errors.
func (s *taskServiceImpl) mapTaskError(ctx context.Context, op string, taskID uuid.UUID, err error) error {
	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return ErrTaskNotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, store.ErrInvalidID):
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Error("task mutation failed",
		slog.String("operation", op),
		slog.String("task_id", taskID.String()),
		slog.String("error", err.Error()))
	return NewServiceError("task", op, err)
}
