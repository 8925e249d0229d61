package mocks

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// The in-memory default mirrors the PostgreSQL adapter: every read and
// write is owner-scoped and List orders newest first.
type MockTaskStore struct {
	CreateFn         func(ctx context.Context, task *domain.Task) error
	GetForOwnerFn    func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error)
	ListFn           func(ctx context.Context, q store.TaskQuery) ([]*domain.Task, int, error)
	UpdateFn         func(ctx context.Context, task *domain.Task) error
	DeleteForOwnerFn func(ctx context.Context, id, ownerID uuid.UUID) error

	// LastQuery is the most recent query passed to List.
	LastQuery store.TaskQuery

	mu    sync.Mutex
	tasks map[uuid.UUID]domain.Task
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a mock store seeded with tasks.
func NewMockTaskStore(tasks ...*domain.Task) *MockTaskStore {
	m := &MockTaskStore{tasks: make(map[uuid.UUID]domain.Task)}
	for _, t := range tasks {
		m.tasks[t.ID] = *t
	}
	return m
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	if err := task.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[task.ID] = *task
	return nil
}

// GetForOwner implements the TaskStore interface
func (m *MockTaskStore) GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error) {
	if m.GetForOwnerFn != nil {
		return m.GetForOwnerFn(ctx, id, ownerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok || task.UserID != ownerID {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

// List implements the TaskStore interface
func (m *MockTaskStore) List(ctx context.Context, q store.TaskQuery) ([]*domain.Task, int, error) {
	m.mu.Lock()
	m.LastQuery = q
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx, q)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []*domain.Task
	for _, task := range m.tasks {
		if matches(task, q) {
			t := task
			matched = append(matched, &t)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() > matched[j].ID.String()
	})

	total := len(matched)
	start := min(q.Offset, total)
	end := min(start+q.Limit, total)
	return append([]*domain.Task{}, matched[start:end]...), total, nil
}

func matches(task domain.Task, q store.TaskQuery) bool {
	if task.UserID != q.OwnerID {
		return false
	}
	if q.Completed != nil && task.Completed != *q.Completed {
		return false
	}
	if q.Priority != nil && task.Priority != *q.Priority {
		return false
	}
	if q.Search != nil && *q.Search != "" {
		term := strings.ToLower(*q.Search)
		if !strings.Contains(strings.ToLower(task.Title), term) &&
			!strings.Contains(strings.ToLower(task.Description), term) {
			return false
		}
	}
	return true
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	if err := task.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return store.ErrTaskNotFound
	}
	m.tasks[task.ID] = *task
	return nil
}

// DeleteForOwner implements the TaskStore interface
func (m *MockTaskStore) DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	if m.DeleteForOwnerFn != nil {
		return m.DeleteForOwnerFn(ctx, id, ownerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok || task.UserID != ownerID {
		return store.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

// WithTx implements the TaskStore interface. The mock ignores the
// transaction and returns itself.
func (m *MockTaskStore) WithTx(*sql.Tx) store.TaskStore {
	return m
}

// Get returns a copy of the stored task regardless of owner.
func (m *MockTaskStore) Get(id uuid.UUID) (domain.Task, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	task, ok := m.tasks[id]
	return task, ok
}
