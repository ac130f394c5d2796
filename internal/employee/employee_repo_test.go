package employee_test

import (
	"context"
	"testing"

	"go-recruit/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Pool dan tx sengaja dipisah ke dua koneksi mock: kalau WithTx bocor
// kembali ke pool, ekspektasi di salah satu sisi pasti gagal.
func newGormOverMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestEmployeeRepository_WithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("update runs on the caller transaction, not the pool", func(t *testing.T) {
		gormDB, poolMock := newGormOverMock(t)

		txDB, txMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer txDB.Close()

		txMock.ExpectBegin()
		txMock.ExpectExec(`UPDATE "employees"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		txMock.ExpectRollback()

		tx, err := txDB.Begin()
		assert.NoError(t, err)

		repo := employee.NewRepository(gormDB)
		empl := storedEmployee()
		assert.NoError(t, repo.WithTx(tx).Update(ctx, empl))
		assert.NoError(t, tx.Rollback())

		assert.NoError(t, txMock.ExpectationsWereMet())
		// Pool tidak boleh menerima statement apa pun
		assert.NoError(t, poolMock.ExpectationsWereMet())
	})

	t.Run("repository without tx keeps using the pool", func(t *testing.T) {
		gormDB, poolMock := newGormOverMock(t)

		poolMock.ExpectExec(`UPDATE "employees"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := employee.NewRepository(gormDB)
		assert.NoError(t, repo.Update(ctx, storedEmployee()))
		assert.NoError(t, poolMock.ExpectationsWereMet())
	})
}
