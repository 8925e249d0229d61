package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// Sentinel errors returned by services. Callers check them with errors.Is.
var (
	// ErrInvalidCredentials is returned by Verify for both an unknown email
	// and a wrong password, so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTaskNotFound is returned when a task does not exist or is owned by
	// another user. The two cases are deliberately indistinguishable.
	ErrTaskNotFound = errors.New("task not found")

	// ErrForbidden is returned when an identity's role is not allowed to
	// perform an action. See ForbiddenError.
	ErrForbidden = errors.New("forbidden")
)

// ForbiddenError reports the role that was refused. It matches ErrForbidden.
type ForbiddenError struct {
	Role domain.Role
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("role %s is not allowed to perform this action", e.Role)
}

// Is makes errors.Is(err, ErrForbidden) true.
func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}

// ServiceError wraps an unexpected failure with the operation it occurred in.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

// NewServiceError creates a ServiceError.
func NewServiceError(service, operation string, err error) *ServiceError {
	return &ServiceError{Service: service, Operation: operation, Err: err}
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s service %s failed: %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
