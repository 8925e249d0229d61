package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
)

// requestBody is implemented by request payloads that trim their fields
// before validation.
type requestBody interface {
	normalize()
}

// decodeAndValidate decodes the JSON body into req, normalizes it and runs
// struct tag validation. On failure it writes the error response and
// returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req requestBody) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		HandleAPIError(w, r, err)
		return false
	}
	req.normalize()
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err)
		return false
	}
	return true
}

// getPathUUID extracts a UUID from the URL path parameters. A missing or
// malformed value wraps domain.ErrInvalidID.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}
	return id, nil
}

// requireIdentity returns the authenticated identity, writing a 401 when
// the request was not authenticated.
func requireIdentity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Warn("identity not found in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized)
		return domain.Identity{}, false
	}
	return identity, true
}

// handleIdentityAndPathUUID extracts both the identity and a UUID path
// parameter, writing an error response if either is missing or invalid.
func handleIdentityAndPathUUID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
) (domain.Identity, uuid.UUID, bool) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return domain.Identity{}, uuid.Nil, false
	}

	pathID, err := getPathUUID(r, paramName)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Debug("invalid path parameter",
				slog.String("param_name", paramName),
				slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err)
		return domain.Identity{}, uuid.Nil, false
	}
	return identity, pathID, true
}
