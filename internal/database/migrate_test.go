package database

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestEnsureSchema(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		mock.ExpectBegin()
		for range schemaStatements {
			mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
		}
		mock.ExpectCommit()

		assert.NoError(t, EnsureSchema(context.Background(), db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("statement failure rolls back", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS employees").WillReturnError(errors.New("permission denied"))
		mock.ExpectRollback()

		err := EnsureSchema(context.Background(), db)

		assert.ErrorContains(t, err, "migration statement 1")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSeedAdmin(t *testing.T) {
	t.Run("inserts hashed password", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO admin (username, password)")).
			WithArgs("aayushi", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, SeedAdmin(context.Background(), db, "aayushi", "secret"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips without password", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		assert.NoError(t, SeedAdmin(context.Background(), db, "aayushi", ""))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSchema_EmployeeDocumentsCascadeOnEmployeeDelete(t *testing.T) {
	var ddl string
	for _, stmt := range schemaStatements {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS employee_documents") {
			ddl = stmt
		}
	}

	assert.NotEmpty(t, ddl)
	assert.Regexp(t, `employee_id TEXT NOT NULL UNIQUE REFERENCES employees\(employee_id\) ON DELETE CASCADE`, ddl)
}
