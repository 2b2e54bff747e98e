package auth_test

import (
	"context"
	"testing"

	"go-emprecords/internal/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (auth.Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	return auth.NewRepository(gdb), mock
}

func TestAuthRepository_UpdateAdminPassword(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "admin" SET "password"=\$1,"updated_at"=\$2 WHERE username = \$3`).
		WithArgs("hash", sqlmock.AnyArg(), "aayushi").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows, err := repo.UpdateAdminPassword(context.Background(), "aayushi", "hash")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthRepository_FindAdminByUsername(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(`SELECT \* FROM "admin" WHERE username = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}))

	_, err := repo.FindAdminByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
