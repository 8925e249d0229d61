// Package store defines the persistence ports of the service: UserStore and
// TaskStore, the TaskQuery filter specification used for listing tasks, the
// sentinel errors every adapter must return, and RunInTransaction for
// services that need several store calls to succeed or fail together.
//
// Adapters live under internal/platform. Every method takes a context so
// request deadlines bound database work.
package store
