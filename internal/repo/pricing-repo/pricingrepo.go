package pricingrepo

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

const planColumns = `id, title, short_description, tokens, amount, features, created_at`

func scanPlan(row pgx.Row) (*domain.PricingPlan, error) {
	var p domain.PricingPlan
	err := row.Scan(&p.ID, &p.Title, &p.ShortDescription, &p.Tokens, &p.Amount, &p.Features, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, plan *domain.PricingPlan) (*domain.PricingPlan, error) {
	query := `
        INSERT INTO pricing_plans (title, short_description, tokens, amount, features)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + planColumns + `
    `
	created, err := scanPlan(r.db.QueryRow(ctx, query, plan.Title, plan.ShortDescription, plan.Tokens, plan.Amount, plan.Features))
	if err != nil {
		zap.L().Error("can't save pricing plan", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.PricingPlan, error) {
	query := `
        SELECT ` + planColumns + `
        FROM pricing_plans
        ORDER BY amount ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get pricing plans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var plans []domain.PricingPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			zap.L().Error("can't scan pricing plan row", zap.Error(err))
			return nil, err
		}
		plans = append(plans, *plan)
	}
	return plans, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.PricingPlan, error) {
	query := `
        SELECT ` + planColumns + `
        FROM pricing_plans
        WHERE id = $1
    `
	plan, err := scanPlan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find pricing plan", zap.Error(err))
		return nil, err
	}
	return plan, nil
}

// FindByAmount resolves the pricing rule used at fulfillment: the plan whose
// price equals the charged amount.
func (r *Repository) FindByAmount(ctx context.Context, amount float64) (*domain.PricingPlan, error) {
	query := `
        SELECT ` + planColumns + `
        FROM pricing_plans
        WHERE amount = $1
        ORDER BY id ASC
        LIMIT 1
    `
	plan, err := scanPlan(r.db.QueryRow(ctx, query, amount))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find pricing plan by amount", zap.Error(err))
		return nil, err
	}
	return plan, nil
}

func (r *Repository) Update(ctx context.Context, plan *domain.PricingPlan) (*domain.PricingPlan, error) {
	query := `
        UPDATE pricing_plans
        SET title = $1, short_description = $2, tokens = $3, amount = $4, features = $5
        WHERE id = $6
        RETURNING ` + planColumns + `
    `
	updated, err := scanPlan(r.db.QueryRow(ctx, query, plan.Title, plan.ShortDescription, plan.Tokens, plan.Amount, plan.Features, plan.ID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't update pricing plan", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM pricing_plans WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete pricing plan", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
