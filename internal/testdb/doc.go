// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database.
//
// Tests opt in with the integration build tag and a DATABASE_URL:
//
//	DATABASE_URL=postgres://... go test -tags=integration ./...
//
// Open applies the embedded migrations once per test binary. WithTx gives
// each test its own transaction that is always rolled back, so tests can
// run in parallel against the same database without cleaning up.
package testdb
