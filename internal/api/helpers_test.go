package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// testIdentity returns a regular user's identity.
func testIdentity() domain.Identity {
	return domain.Identity{
		ID:    uuid.New(),
		Name:  "Ana",
		Email: "ana@example.com",
		Role:  domain.RoleUser,
	}
}

// requestOption customizes a test request.
type requestOption func(*http.Request) *http.Request

// asIdentity authenticates the request as identity.
func asIdentity(identity domain.Identity) requestOption {
	return func(r *http.Request) *http.Request {
		return r.WithContext(shared.WithIdentity(r.Context(), identity))
	}
}

// withURLParam sets a chi URL parameter on the request.
func withURLParam(key, value string) requestOption {
	return func(r *http.Request) *http.Request {
		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			rctx = chi.NewRouteContext()
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
		}
		rctx.URLParams.Add(key, value)
		return r
	}
}

// newRequest builds a request. body may be nil, a raw string, or any value
// to be JSON encoded.
func newRequest(t *testing.T, method, target string, body interface{}, opts ...requestOption) *http.Request {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		req = opt(req)
	}
	return req
}

// decodeBody decodes the recorder body into a T.
func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	return out
}
