package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/service/auth"
	"github.com/phrazzld/tasks-api/internal/store"
)

// Safe messages returned to clients.
const (
	MsgInvalidData        = "Invalid data"
	MsgInvalidFormat      = "Invalid request format"
	MsgUserExists         = "User already exists"
	MsgInvalidID          = "Resource not found - invalid ID"
	MsgInvalidCredentials = "Invalid credentials"
	MsgTokenRequired      = "Not authorized, token required"
	MsgInvalidToken       = "Invalid token"
	MsgTaskNotFound       = "Task not found"
	MsgUserNotFound       = "User not found"
	MsgTimeout            = "Request timed out"
	MsgInternal           = "Internal server error"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. Order
// matters: an invalid path ID is also a validation error.
func MapErrorToStatusCode(err error) int {
	var forbidden *service.ForbiddenError

	switch {
	case err == nil:
		return http.StatusInternalServerError

	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidID),
		errors.Is(err, shared.ErrMalformedBody),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrEmailExists),
		isValidatorError(err):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.As(err, &forbidden), errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden

	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err. It never
// includes err's own text.
func GetSafeErrorMessage(err error) string {
	var forbidden *service.ForbiddenError

	switch {
	case err == nil:
		return MsgInternal

	case errors.Is(err, domain.ErrInvalidID), errors.Is(err, store.ErrInvalidID):
		return MsgInvalidID
	case errors.Is(err, shared.ErrMalformedBody):
		return MsgInvalidFormat
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		isValidatorError(err):
		return MsgInvalidData
	case errors.Is(err, store.ErrEmailExists):
		return MsgUserExists

	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, domain.ErrUnauthorized):
		return MsgTokenRequired
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return MsgInvalidToken

	case errors.As(err, &forbidden):
		return fmt.Sprintf("Role %s is not allowed to perform this action", forbidden.Role)
	case errors.Is(err, service.ErrForbidden):
		return "Forbidden"

	case errors.Is(err, service.ErrTaskNotFound), errors.Is(err, store.ErrTaskNotFound):
		return MsgTaskNotFound
	case errors.Is(err, store.ErrUserNotFound):
		return MsgUserNotFound

	case errors.Is(err, context.DeadlineExceeded):
		return MsgTimeout

	default:
		return MsgInternal
	}
}

// ValidationFieldErrors extracts the field-level failures carried by err,
// from either validator struct tags or domain validation. It returns nil
// for errors that carry none.
func ValidationFieldErrors(err error) []shared.FieldError {
	var tagErrs validator.ValidationErrors
	if errors.As(err, &tagErrs) {
		out := make([]shared.FieldError, 0, len(tagErrs))
		for _, fe := range tagErrs {
			out = append(out, shared.FieldError{Field: fe.Field(), Message: validationTagMessage(fe)})
		}
		return out
	}

	var domainErrs domain.ValidationErrors
	if errors.As(err, &domainErrs) {
		out := make([]shared.FieldError, 0, len(domainErrs))
		for _, ve := range domainErrs {
			out = append(out, shared.FieldError{Field: ve.Field, Message: ve.Message})
		}
		return out
	}

	var single *domain.ValidationError
	if errors.As(err, &single) {
		return []shared.FieldError{{Field: single.Field, Message: single.Message}}
	}
	return nil
}

// validationTagMessage turns a failed struct tag into a readable message.
func validationTagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "is invalid"
	}
}

func isValidatorError(err error) bool {
	var tagErrs validator.ValidationErrors
	return errors.As(err, &tagErrs)
}

// HandleAPIError writes the error response for err. Validation failures get
// their field list attached; invalid IDs do not. Denied role checks are
// logged at WARN.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	var opts []shared.ResponseOption
	if message == MsgInvalidData {
		if fields := ValidationFieldErrors(err); len(fields) > 0 {
			opts = append(opts, shared.WithFieldErrors(fields))
		}
	}
	if status == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
