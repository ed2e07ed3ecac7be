package filecountrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/seoforge/seoforge/internal/domain"
	"github.com/seoforge/seoforge/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.FileCount, error) {
	query := `
        SELECT id, user_id, count
        FROM file_counts
        WHERE user_id = $1
    `
	var fc domain.FileCount
	err := r.db.QueryRow(ctx, query, userID).Scan(&fc.ID, &fc.UserID, &fc.Count)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get file count", zap.Error(err))
		return nil, err
	}
	return &fc, nil
}

// Increment adds delta to the user's counter, creating the row on first use.
func (r *Repository) Increment(ctx context.Context, userID int, delta int64) (*domain.FileCount, error) {
	query := `
        INSERT INTO file_counts (user_id, count)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET count = file_counts.count + EXCLUDED.count
        RETURNING id, user_id, count
    `
	var fc domain.FileCount
	err := r.db.QueryRow(ctx, query, userID, delta).Scan(&fc.ID, &fc.UserID, &fc.Count)
	if err != nil {
		zap.L().Error("can't increment file count", zap.Error(err))
		return nil, err
	}
	return &fc, nil
}
