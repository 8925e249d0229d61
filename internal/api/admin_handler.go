package api

import (
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/service"
)

// AdminHandler serves role-gated user administration. Routes using it must
// sit behind middleware.RequireRole(domain.RoleAdmin).
type AdminHandler struct {
	userService service.UserService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(userService service.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// GetUser handles GET /api/admin/users/{id}.
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	_, userID, ok := handleIdentityAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserEnvelope{
		Success: true,
		Data:    userResponseFromIdentity(user.Identity()),
	})
}
