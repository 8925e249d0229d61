package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Field length limits for tasks.
const (
	TitleMaxLength       = 100
	DescriptionMaxLength = 500
)

// Priority ranks a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"

	DefaultPriority = PriorityMedium
)

// IsValid reports whether p is one of low, medium or high.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a unit of work owned by exactly one user. The owner is fixed at
// creation and never changes.
type Task struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates a task owned by userID. Title and description are
// trimmed; an empty priority becomes DefaultPriority.
func NewTask(userID uuid.UUID, title, description string, priority Priority, completed bool) (*Task, error) {
	if priority == "" {
		priority = DefaultPriority
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Completed:   completed,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns ValidationErrors listing every field that failed.
func (t *Task) Validate() error {
	var errs ValidationErrors

	if t.ID == uuid.Nil {
		errs = append(errs, NewValidationError("id", "is required", ErrInvalidID))
	}
	if t.UserID == uuid.Nil {
		errs = append(errs, NewValidationError("user_id", "is required", ErrInvalidID))
	}

	titleLen := utf8.RuneCountInString(t.Title)
	if titleLen == 0 {
		errs = append(errs, NewValidationError("title", "is required", nil))
	} else if titleLen > TitleMaxLength {
		errs = append(errs, NewValidationError("title", "must be between 1 and 100 characters", nil))
	}

	if utf8.RuneCountInString(t.Description) > DescriptionMaxLength {
		errs = append(errs, NewValidationError("description", "must be at most 500 characters", nil))
	}

	if !t.Priority.IsValid() {
		errs = append(errs, NewValidationError("priority", "must be one of: low, medium, high", nil))
	}

	return errs.orNil()
}

// TaskPatch is a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	Completed   *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil && p.Completed == nil
}

// Apply updates t in place with the fields set in p, re-validates it and
// bumps UpdatedAt. On validation failure t is left unchanged.
func (t *Task) Apply(p TaskPatch) error {
	updated := *t

	if p.Title != nil {
		updated.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		updated.Description = strings.TrimSpace(*p.Description)
	}
	if p.Priority != nil {
		updated.Priority = *p.Priority
	}
	if p.Completed != nil {
		updated.Completed = *p.Completed
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	updated.UpdatedAt = time.Now().UTC()
	*t = updated
	return nil
}
