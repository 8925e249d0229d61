package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/service/auth"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "domain validation",
			err:        domain.NewValidationError("title", "is required", nil),
			wantStatus: http.StatusBadRequest,
			wantMsg:    MsgInvalidData,
		},
		{
			name:       "malformed body",
			err:        fmt.Errorf("%w: unexpected EOF", shared.ErrMalformedBody),
			wantStatus: http.StatusBadRequest,
			wantMsg:    MsgInvalidFormat,
		},
		{
			name:       "email exists",
			err:        store.NewStoreError("user", "create", "email taken", store.ErrEmailExists),
			wantStatus: http.StatusBadRequest,
			wantMsg:    MsgUserExists,
		},
		{
			name:       "invalid path id",
			err:        domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID),
			wantStatus: http.StatusBadRequest,
			wantMsg:    MsgInvalidID,
		},
		{
			name:       "database rejected id",
			err:        fmt.Errorf("get task: %w", store.ErrInvalidID),
			wantStatus: http.StatusBadRequest,
			wantMsg:    MsgInvalidID,
		},
		{
			name:       "invalid credentials",
			err:        service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    MsgInvalidCredentials,
		},
		{
			name:       "missing token",
			err:        auth.ErrMissingToken,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    MsgTokenRequired,
		},
		{
			name:       "expired token",
			err:        auth.ErrExpiredToken,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    MsgInvalidToken,
		},
		{
			name:       "forbidden role",
			err:        &service.ForbiddenError{Role: domain.RoleUser},
			wantStatus: http.StatusForbidden,
			wantMsg:    "Role user is not allowed to perform this action",
		},
		{
			name:       "task not found",
			err:        service.ErrTaskNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    MsgTaskNotFound,
		},
		{
			name:       "user not found",
			err:        fmt.Errorf("lookup: %w", store.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    MsgUserNotFound,
		},
		{
			name:       "deadline exceeded",
			err:        service.NewServiceError("task", "list", context.DeadlineExceeded),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    MsgTimeout,
		},
		{
			name:       "unknown error",
			err:        errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    MsgInternal,
		},
		{
			name:       "nil error",
			err:        nil,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    MsgInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantStatus, MapErrorToStatusCode(tt.err))
			assert.Equal(t, tt.wantMsg, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestValidationFieldErrors(t *testing.T) {
	t.Parallel()

	t.Run("struct tags", func(t *testing.T) {
		t.Parallel()

		err := shared.ValidateRequest(&CreateTaskRequest{Priority: "urgent"})

		fields := ValidationFieldErrors(err)
		assert.ElementsMatch(t, []shared.FieldError{
			{Field: "title", Message: "is required"},
			{Field: "priority", Message: "must be one of: low, medium, high"},
		}, fields)
	})

	t.Run("domain errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("create: %w", domain.ValidationErrors{
			domain.NewValidationError("title", "is required", nil),
			domain.NewValidationError("description", "must be at most 500 characters", nil),
		})

		assert.Equal(t, []shared.FieldError{
			{Field: "title", Message: "is required"},
			{Field: "description", Message: "must be at most 500 characters"},
		}, ValidationFieldErrors(err))
	})

	t.Run("single domain error", func(t *testing.T) {
		t.Parallel()

		err := domain.NewValidationError("password", "is too short", nil)

		assert.Equal(t, []shared.FieldError{{Field: "password", Message: "is too short"}}, ValidationFieldErrors(err))
	})

	t.Run("not a validation error", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, ValidationFieldErrors(errors.New("boom")))
	})
}

func TestHandleAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation attaches field errors",
			err:        domain.NewValidationError("title", "is required", nil),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Invalid data","errors":[{"field":"title","message":"is required"}]}`,
		},
		{
			name:       "invalid id has no field list",
			err:        domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Resource not found - invalid ID"}`,
		},
		{
			name:       "internal error is hidden",
			err:        errors.New(`pq: relation "tasks" does not exist`),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			w := httptest.NewRecorder()

			HandleAPIError(w, req, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHandleAPIErrorIncludesTraceID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req = req.WithContext(shared.SetTraceID(req.Context()))
	w := httptest.NewRecorder()

	HandleAPIError(w, req, service.ErrTaskNotFound)

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, shared.GetTraceID(req.Context()), resp.TraceID)
	assert.Equal(t, MsgTaskNotFound, resp.Message)
}
