package costsrepo

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

const costColumns = `id, per_image_request, per_image, per_seo_input, per_seo_output`

func scanCosts(row pgx.Row) (*domain.CostTable, error) {
	var c domain.CostTable
	err := row.Scan(&c.ID, &c.PerImageRequest, &c.PerImage, &c.PerSEOInput, &c.PerSEOOutput)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Get returns the deployment's single cost row, or nil when none was
// created yet.
func (r *Repository) Get(ctx context.Context) (*domain.CostTable, error) {
	query := `
        SELECT ` + costColumns + `
        FROM cost_tables
        ORDER BY id ASC
        LIMIT 1
    `
	costs, err := scanCosts(r.db.QueryRow(ctx, query))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get cost table", zap.Error(err))
		return nil, err
	}
	return costs, nil
}

func (r *Repository) Create(ctx context.Context, costs *domain.CostTable) (*domain.CostTable, error) {
	query := `
        INSERT INTO cost_tables (per_image_request, per_image, per_seo_input, per_seo_output)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + costColumns + `
    `
	created, err := scanCosts(r.db.QueryRow(ctx, query, costs.PerImageRequest, costs.PerImage, costs.PerSEOInput, costs.PerSEOOutput))
	if err != nil {
		zap.L().Error("can't create cost table", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) Update(ctx context.Context, costs *domain.CostTable) (*domain.CostTable, error) {
	query := `
        UPDATE cost_tables
        SET per_image_request = $1, per_image = $2, per_seo_input = $3, per_seo_output = $4
        WHERE id = $5
        RETURNING ` + costColumns + `
    `
	updated, err := scanCosts(r.db.QueryRow(ctx, query, costs.PerImageRequest, costs.PerImage, costs.PerSEOInput, costs.PerSEOOutput, costs.ID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't update cost table", zap.Error(err))
		return nil, err
	}
	return updated, nil
}
