package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestHistoryRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_name", "date", "day", "turno", "index_value"}).
		AddRow(1, "jperez", time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), "lunes", "T1", 0).
		AddRow(2, "jperez", time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC), "lunes", "T1", 0)

	mock.ExpectQuery("SELECT \\* FROM `participation_records` WHERE user_name = \\? ORDER BY date ASC").
		WithArgs("jperez").
		WillReturnRows(rows)

	records, err := repo.ListByUser("jperez", nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "jperez", records[0].UserName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_ListByUser_FromDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db)

	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM `participation_records` WHERE user_name = \\? AND date >= \\? ORDER BY date ASC").
		WithArgs("jperez", from).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "date", "day", "turno", "index_value"}))

	records, err := repo.ListByUser("jperez", &from)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_ReplaceWeek_EmptyRecords(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db)

	weekStart := time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)
	weekEnd := weekStart.AddDate(0, 0, 7)

	// An empty week still clears the range, inside one transaction.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `participation_records` WHERE date >= \\? AND date < \\?").
		WithArgs(weekStart, weekEnd).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := repo.ReplaceWeek(weekStart, nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_ReplaceWeek_RollsBackOnDeleteError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db)

	weekStart := time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `participation_records`").
		WillReturnError(gorm.ErrInvalidTransaction)
	mock.ExpectRollback()

	err := repo.ReplaceWeek(weekStart, nil)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
