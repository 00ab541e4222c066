package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestGoalRepository_DeleteCascade_DeletesProgressBeforeGoalInOneTransaction(t *testing.T) {
	gormDB, mock := newMockDB(t)

	// Expectations are ordered: the progress rows must go first, and both
	// deletes share one transaction.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `progresses` WHERE goal_id = ?")).
		WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `goals` WHERE `goals`.`id` = ?")).
		WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewGoalRepository(gormDB)
	rows, err := repo.DeleteCascade(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepository_DeleteCascade_MissingGoalReportsZeroRows(t *testing.T) {
	gormDB, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `progresses` WHERE goal_id = ?")).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `goals` WHERE `goals`.`id` = ?")).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := NewGoalRepository(gormDB)
	rows, err := repo.DeleteCascade(context.Background(), 99)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepository_DeleteCascade_RollsBackWhenProgressDeleteFails(t *testing.T) {
	gormDB, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `progresses` WHERE goal_id = ?")).
		WithArgs(10).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	repo := NewGoalRepository(gormDB)
	rows, err := repo.DeleteCascade(context.Background(), 10)

	assert.Error(t, err)
	assert.Equal(t, int64(0), rows)
	// The goal delete must never run once the cascade fails.
	assert.NoError(t, mock.ExpectationsWereMet())
}
