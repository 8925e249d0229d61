// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the
// persistence ports defined in internal/store.
//
// Key components:
//
//   - UserService: registration, credential verification, identity lookup
//     for the auth middleware, and the role predicate Authorize.
//   - TaskService: the owner-scoped task use cases. List turns raw query
//     parameters into a store.TaskQuery (see BuildTaskQuery); Update and
//     Delete load the task for the acting owner inside a transaction before
//     mutating it.
//
// Services return sentinel errors (ErrInvalidCredentials, ErrTaskNotFound,
// ErrForbidden) for expected conditions. The API layer maps them to HTTP
// status codes; this package never does.
package service
