package filecountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, user_id, count
        FROM file_counts
        WHERE user_id = $1
    `)

	t.Run("Existing counter", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "count"}).AddRow(1, 1, int64(12))
		mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)

		fc, err := repo.GetByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(12), fc.Count)
	})

	t.Run("No counter yet returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(9).WillReturnError(pgx.ErrNoRows)

		fc, err := repo.GetByUserID(context.Background(), 9)
		assert.NoError(t, err)
		assert.Nil(t, fc)
	})
}

func TestRepository_Increment(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO file_counts (user_id, count)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET count = file_counts.count + EXCLUDED.count
        RETURNING id, user_id, count
    `)

	t.Run("Adds delta to the counter", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "count"}).AddRow(1, 1, int64(15))
		mock.ExpectQuery(query).WithArgs(1, int64(3)).WillReturnRows(rows)

		fc, err := repo.Increment(context.Background(), 1, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(15), fc.Count)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(1, int64(3)).WillReturnError(errors.New("database error"))

		fc, err := repo.Increment(context.Background(), 1, 3)
		assert.Error(t, err)
		assert.Nil(t, fc)
	})
}
