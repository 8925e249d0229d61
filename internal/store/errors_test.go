package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		notFound  bool
		duplicate bool
	}{
		{name: "nil error"},
		{name: "generic error", err: errors.New("some error")},
		{name: "ErrNotFound", err: ErrNotFound, notFound: true},
		{name: "ErrUserNotFound", err: ErrUserNotFound, notFound: true},
		{name: "wrapped ErrTaskNotFound", err: fmt.Errorf("load task: %w", ErrTaskNotFound), notFound: true},
		{name: "ErrDuplicate", err: ErrDuplicate, duplicate: true},
		{name: "wrapped ErrEmailExists", err: fmt.Errorf("create user: %w", ErrEmailExists), duplicate: true},
		{
			name:      "store error wrapping ErrEmailExists",
			err:       NewStoreError("user", "create", "email taken", ErrEmailExists),
			duplicate: true,
		},
		{name: "ErrInvalidEntity", err: ErrInvalidEntity},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.notFound, IsNotFoundError(tt.err), "IsNotFoundError")
			assert.Equal(t, tt.duplicate, IsDuplicateError(tt.err), "IsDuplicateError")
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("database connection failed")
	err := NewStoreError("task", "update", "database error", cause)

	assert.Equal(t, "update operation on task failed: database error: database connection failed", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("task", "list", "bad filter", nil)
	assert.Equal(t, "list operation on task failed: bad filter", bare.Error())
	assert.Nil(t, bare.Unwrap())
}

func TestEntityErrorsWrapGenericSentinels(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrTaskNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)
	assert.NotErrorIs(t, ErrTaskNotFound, ErrUserNotFound)
}
