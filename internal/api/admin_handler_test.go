package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/mocks"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminHandlerGetUser(t *testing.T) {
	t.Parallel()

	admin := testIdentity()
	admin.Role = domain.RoleAdmin
	target := registeredUser("Bea", "bea@example.com")

	userService := &mocks.MockUserService{
		GetUserFn: func(_ context.Context, id uuid.UUID) (*domain.User, error) {
			if id == target.ID {
				return target, nil
			}
			return nil, store.ErrUserNotFound
		},
	}
	handler := NewAdminHandler(userService)

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		handler.GetUser(w, newRequest(t, http.MethodGet, "/api/admin/users/"+target.ID.String(), nil,
			asIdentity(admin), withURLParam("id", target.ID.String())))

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[UserEnvelope](t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, target.ID, resp.Data.ID)
		assert.Equal(t, "bea@example.com", resp.Data.Email)
		assert.NotContains(t, w.Body.String(), "hashed", "credential is never serialized")
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		id := uuid.New().String()
		w := httptest.NewRecorder()
		handler.GetUser(w, newRequest(t, http.MethodGet, "/api/admin/users/"+id, nil,
			asIdentity(admin), withURLParam("id", id)))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"User not found"}`, w.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		handler.GetUser(w, newRequest(t, http.MethodGet, "/api/admin/users/xyz", nil,
			asIdentity(admin), withURLParam("id", "xyz")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
