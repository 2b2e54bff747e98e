package employee_test

import (
	"context"
	"testing"

	"go-emprecords/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (employee.Repository, sqlmock.Sqlmock, *gorm.DB) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	return employee.NewRepository(gdb), mock, gdb
}

func TestEmployeeRepository_FindAll(t *testing.T) {
	repo, mock, _ := setupRepoTest(t)

	mock.ExpectQuery(`SELECT \* FROM "employees" ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "name"}).
			AddRow(1, "EMP-1", "Asha").
			AddRow(2, "EMP-2", "Ravi"))

	res, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "EMP-1", res[0].EmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Update(t *testing.T) {
	repo, mock, _ := setupRepoTest(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "employees" SET .+ WHERE "id" = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &employee.Employee{ID: 7, EmployeeID: "EMP-7", Name: "Meera"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_UpdateProfileImage(t *testing.T) {
	t.Run("reports rows affected", func(t *testing.T) {
		repo, mock, _ := setupRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "employees" SET "profile_image"=\$1,"updated_at"=\$2 WHERE employee_id = \$3`).
			WithArgs("/uploads/a.jpg", sqlmock.AnyArg(), "EMP-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rows, err := repo.UpdateProfileImage(context.Background(), "EMP-1", "/uploads/a.jpg")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		repo, mock, _ := setupRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "employees" SET "profile_image"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		rows, err := repo.UpdateProfileImage(context.Background(), "EMP-404", "/uploads/a.jpg")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEmployeeRepository_WithTxThenRoot(t *testing.T) {
	repo, mock, gdb := setupRepoTest(t)
	sqlDB, err := gdb.DB()
	assert.NoError(t, err)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "employees" WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "employees" ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "name"}))

	tx, err := sqlDB.BeginTx(ctx, nil)
	assert.NoError(t, err)
	assert.NoError(t, repo.WithTx(tx).Delete(ctx, 3))
	assert.NoError(t, tx.Commit())

	_, err = repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
