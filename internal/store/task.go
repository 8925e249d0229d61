package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskQuery is a typed filter specification for listing tasks.
// Nil pointer fields are not filtered on.
type TaskQuery struct {
	// OwnerID restricts results to one user's tasks. Always set.
	OwnerID uuid.UUID

	Completed *bool
	Priority  *domain.Priority

	// Search is matched case-insensitively as a literal substring of the
	// title or the description.
	Search *string

	Limit  int
	Offset int
}

// TaskStore defines the interface for task data persistence.
// Every read and write other than Create is scoped to an owner, so a task
// belonging to another user is indistinguishable from a missing one.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetForOwner retrieves the task with id owned by ownerID.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error)

	// List returns one page of tasks matching q ordered newest first, and
	// the total number of matches before pagination.
	List(ctx context.Context, q TaskQuery) ([]*domain.Task, int, error)

	// Update persists the mutable fields of task (title, description,
	// completed, priority, updated_at). The row is matched on both ID and
	// UserID.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	Update(ctx context.Context, task *domain.Task) error

	// DeleteForOwner removes the task with id owned by ownerID.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
