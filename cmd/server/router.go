package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/tasks-api/internal/api"
	"github.com/phrazzld/tasks-api/internal/api/middleware"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
)

const (
	welcomeMessage     = "Welcome to the tasks API"
	healthCheckTimeout = 2 * time.Second
)

// setupRouter creates the chi router with the global middleware stack and
// all API routes.
func (deps *appDependencies) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.TraceMiddleware(deps.logger))
	r.Use(middleware.Recoverer)
	r.Use(chimw.Timeout(time.Duration(deps.config.Server.RequestTimeoutSeconds) * time.Second))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithError(w, req, http.StatusNotFound,
			fmt.Sprintf("Route %s not found", req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithError(w, req, http.StatusMethodNotAllowed,
			fmt.Sprintf("Method %s not allowed on %s", req.Method, req.URL.Path))
	})

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithJSON(w, req, http.StatusOK, api.MessageResponse{
			Success: true,
			Message: welcomeMessage,
		})
	})
	r.Get("/health", deps.healthHandler)

	authMiddleware := middleware.NewAuthMiddleware(deps.jwtService, deps.userService)
	authHandler := api.NewAuthHandler(deps.userService, deps.jwtService)
	taskHandler := api.NewTaskHandler(deps.taskService, deps.logger)
	adminHandler := api.NewAdminHandler(deps.userService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)

			r.Get("/tasks", taskHandler.List)
			r.Post("/tasks", taskHandler.Create)
			r.Put("/tasks/{id}", taskHandler.Update)
			r.Delete("/tasks/{id}", taskHandler.Delete)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleAdmin))
				r.Get("/admin/users/{id}", adminHandler.GetUser)
			})
		})
	})

	return r
}

func (deps *appDependencies) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := deps.db.PingContext(ctx); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Service unavailable", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
