package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (Repository, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	rawDB, mockDB, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { rawDB.Close() })
	database := sqlx.NewDb(rawDB, "sqlmock")
	return NewRepository(database), database, mockDB
}

func TestClaimSpotSucceedsWhileAvailable(t *testing.T) {
	repo, database, mockDB := newRepo(t)
	mockDB.ExpectExec(`UPDATE time_slots`).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	claimed, err := repo.ClaimSpot(context.Background(), database, 9)
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

// When the guarded UPDATE matches no row the slot was full, cancelled or
// missing; the caller must treat it as a conflict, not retry blindly.
func TestClaimSpotLosesOnFullSlot(t *testing.T) {
	repo, database, mockDB := newRepo(t)
	mockDB.ExpectExec(`UPDATE time_slots`).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := repo.ClaimSpot(context.Background(), database, 9)
	require.NoError(t, err)
	assert.False(t, claimed)
}

func TestReleaseSpot(t *testing.T) {
	repo, database, mockDB := newRepo(t)
	mockDB.ExpectExec(`UPDATE time_slots`).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	released, err := repo.ReleaseSpot(context.Background(), database, 9)
	require.NoError(t, err)
	assert.True(t, released)
}

func TestReleaseSpotOnEmptySlot(t *testing.T) {
	repo, database, mockDB := newRepo(t)
	mockDB.ExpectExec(`UPDATE time_slots`).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	released, err := repo.ReleaseSpot(context.Background(), database, 9)
	require.NoError(t, err)
	assert.False(t, released)
}

func TestClaimSpotRunsInsideCallerTransaction(t *testing.T) {
	repo, database, mockDB := newRepo(t)
	mockDB.ExpectBegin()
	mockDB.ExpectExec(`UPDATE time_slots`).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mockDB.ExpectCommit()

	tx, err := database.BeginTxx(context.Background(), nil)
	require.NoError(t, err)

	claimed, err := repo.ClaimSpot(context.Background(), tx, 9)
	require.NoError(t, err)
	assert.True(t, claimed)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestHasOverlapping(t *testing.T) {
	repo, _, mockDB := newRepo(t)

	start := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mockDB.ExpectQuery(`SELECT EXISTS`).
		WithArgs(5, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	overlaps, err := repo.HasOverlapping(context.Background(), 5, start, end)
	require.NoError(t, err)
	assert.True(t, overlaps)
}
