// Package mocks provides hand-written test doubles for the store and
// service interfaces.
//
// Each mock has optional function fields (CreateFn, ListFn, ...) that
// override a single method. When a function field is nil the mock falls
// back to a simple in-memory implementation, so most tests only need to
// seed data and override the failure they are exercising.
package mocks
