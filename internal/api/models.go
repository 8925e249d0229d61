package api

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
)

// RegisterRequest defines the payload for the user registration endpoint.
// The minimum password length is configuration and checked by the service.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

func (r *RegisterRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Completed   *bool  `json:"completed"`
}

func (r *CreateTaskRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateTaskRequest) input() service.CreateTaskInput {
	in := service.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    domain.Priority(r.Priority),
	}
	if r.Completed != nil {
		in.Completed = *r.Completed
	}
	return in
}

// UpdateTaskRequest defines the payload for updating a task. Absent fields
// are left unchanged; a present but empty title is rejected.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Completed   *bool   `json:"completed"`
}

func (r *UpdateTaskRequest) normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		r.Description = &d
	}
}

func (r *UpdateTaskRequest) patch() domain.TaskPatch {
	p := domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
	if r.Priority != nil {
		pr := domain.Priority(*r.Priority)
		p.Priority = &pr
	}
	return p
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

func userResponseFromIdentity(id domain.Identity) UserResponse {
	return UserResponse{ID: id.ID, Name: id.Name, Email: id.Email, Role: id.Role}
}

// AuthResponse defines the successful response for register and login.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    UserResponse `json:"data"`
	Token   string       `json:"token"`
}

// UserEnvelope wraps a single user.
type UserEnvelope struct {
	Success bool         `json:"success"`
	Data    UserResponse `json:"data"`
}

// MessageResponse is a success envelope with only a message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TaskResponse is the public view of a task.
type TaskResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Completed   bool            `json:"completed"`
	Priority    domain.Priority `json:"priority"`
	User        uuid.UUID       `json:"user"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    t.Priority,
		User:        t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TaskListResponse is one page of tasks with its paging metadata.
type TaskListResponse struct {
	Success bool           `json:"success"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	Total   int            `json:"total"`
	Pages   int            `json:"pages"`
	Count   int            `json:"count"`
	Data    []TaskResponse `json:"data"`
}

func taskPageToResponse(p *service.TaskPage) TaskListResponse {
	data := make([]TaskResponse, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		data = append(data, taskToResponse(t))
	}
	return TaskListResponse{
		Success: true,
		Page:    p.Page,
		Limit:   p.Limit,
		Total:   p.Total,
		Pages:   p.Pages,
		Count:   len(data),
		Data:    data,
	}
}
