package counter_test

import (
	"context"
	"testing"

	"go-emprecords/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestCounterRepository_GetNextValue(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	repo := counter.NewRepository(gdb)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO counters \(counter_type, last_value, updated_at\)\s+VALUES \(\$1, 1, now\(\)\)\s+ON CONFLICT \(counter_type\) DO UPDATE`).
		WithArgs("employee").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(41))
	mock.ExpectCommit()
	mock.ExpectQuery(`INSERT INTO counters`).
		WithArgs("employee").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(42))

	tx, err := db.BeginTx(ctx, nil)
	assert.NoError(t, err)
	v, err := repo.WithTx(tx).GetNextValue(ctx, "employee")
	assert.NoError(t, err)
	assert.Equal(t, int64(41), v)
	assert.NoError(t, tx.Commit())

	v, err = repo.GetNextValue(ctx, "employee")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), v)
	assert.NoError(t, mock.ExpectationsWereMet())
}
