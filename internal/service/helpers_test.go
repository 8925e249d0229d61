package service_test

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type txOutcome bool

const (
	commit   txOutcome = true
	rollback txOutcome = false
)

// txDB returns a database that expects one transaction per outcome, in
// order. Stores in these tests are mocks, so no statements are expected.
func txDB(t *testing.T, outcomes ...txOutcome) *sql.DB {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	for _, o := range outcomes {
		mock.ExpectBegin()
		if o == commit {
			mock.ExpectCommit()
		} else {
			mock.ExpectRollback()
		}
	}

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db
}
