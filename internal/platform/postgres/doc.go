// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx stdlib driver. It owns the SQL, the mapping of
// PostgreSQL error codes onto store errors, and the embedded goose
// migrations that define the schema.
package postgres
