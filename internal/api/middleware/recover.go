package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/tasks-api/internal/api"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
)

// Recoverer turns a handler panic into a JSON 500 response and logs the
// stack. http.ErrAbortHandler is re-panicked so the server can abort the
// connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContextOrDefault(r.Context(), slog.Default()).Error("panic recovered",
				slog.String("panic", fmt.Sprint(rec)),
				slog.String("stack", string(debug.Stack())))

			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, api.MsgInternal,
				fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
