package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/seoforge/seoforge/internal/domain"
	"github.com/seoforge/seoforge/internal/pg"
	"go.uber.org/zap"
)

// ErrInsufficientTokens is returned when a debit would take the available
// balance below zero. The statement that detects it never commits.
var ErrInsufficientTokens = errors.New("insufficient tokens")

const checkViolation = "23514"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const ledgerColumns = `id, user_id, available_tokens, lifetime_granted, lifetime_spent, lifetime_cash_spent, expiration, updated_at`

func scanLedger(row pgx.Row) (*domain.Ledger, error) {
	var l domain.Ledger
	err := row.Scan(&l.ID, &l.UserID, &l.AvailableTokens, &l.LifetimeGranted,
		&l.LifetimeSpent, &l.LifetimeCashSpent, &l.Expiration, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) GetLedger(ctx context.Context, userID int) (*domain.Ledger, error) {
	query := `
        SELECT ` + ledgerColumns + `
        FROM ledgers
        WHERE user_id = $1
    `
	ledger, err := scanLedger(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get ledger", zap.Error(err))
		return nil, err
	}
	return ledger, nil
}

// UpsertDefault creates a zeroed ledger for the user if none exists and
// returns the current row either way.
func (r *Repository) UpsertDefault(ctx context.Context, userID int) (*domain.Ledger, error) {
	query := `
        INSERT INTO ledgers (user_id)
        VALUES ($1)
        ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING ` + ledgerColumns + `
    `
	ledger, err := scanLedger(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to upsert ledger", zap.Error(err))
		return nil, err
	}
	return ledger, nil
}

// ApplyDelta applies all four deltas as one transactional unit, creating the
// ledger with zero defaults when absent. A delta that would leave the
// available balance negative trips the non-negative check constraint, which
// rolls the statement back before any row is returned, so no compensating
// write is ever needed.
func (r *Repository) ApplyDelta(ctx context.Context, userID int, delta domain.LedgerDelta) (*domain.Ledger, error) {
	query := `
        INSERT INTO ledgers (user_id, available_tokens, lifetime_granted, lifetime_spent, lifetime_cash_spent)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id) DO UPDATE SET
            available_tokens = ledgers.available_tokens + EXCLUDED.available_tokens,
            lifetime_granted = ledgers.lifetime_granted + EXCLUDED.lifetime_granted,
            lifetime_spent = ledgers.lifetime_spent + EXCLUDED.lifetime_spent,
            lifetime_cash_spent = ledgers.lifetime_cash_spent + EXCLUDED.lifetime_cash_spent,
            updated_at = now()
        RETURNING ` + ledgerColumns + `
    `
	var updated *domain.Ledger
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		ledger, err := scanLedger(r.db.QueryRow(ctx, query, userID, delta.Available, delta.Granted, delta.Spent, delta.Cash))
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == checkViolation {
				return ErrInsufficientTokens
			}
			zap.L().Error("failed to apply ledger delta", zap.Error(err))
			return err
		}
		updated = ledger
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Consume debits amount in a single conditional update: the row only matches
// while it still holds enough tokens, so two racing consumes can never
// jointly overdraw.
func (r *Repository) Consume(ctx context.Context, userID int, amount int64) (*domain.Ledger, error) {
	query := `
        UPDATE ledgers
        SET available_tokens = available_tokens - $1,
            lifetime_spent = lifetime_spent + $1,
            updated_at = now()
        WHERE user_id = $2 AND available_tokens >= $1
        RETURNING ` + ledgerColumns + `
    `
	ledger, err := scanLedger(r.db.QueryRow(ctx, query, amount, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrInsufficientTokens
		}
		zap.L().Error("failed to consume tokens", zap.Error(err))
		return nil, err
	}
	return ledger, nil
}

func (r *Repository) SetExpiration(ctx context.Context, userID int, expiration int64) (*domain.Ledger, error) {
	query := `
        UPDATE ledgers
        SET expiration = $1, updated_at = now()
        WHERE user_id = $2
        RETURNING ` + ledgerColumns + `
    `
	ledger, err := scanLedger(r.db.QueryRow(ctx, query, expiration, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to set ledger expiration", zap.Error(err))
		return nil, err
	}
	return ledger, nil
}

// Delete removes a ledger. Administrative use only.
func (r *Repository) Delete(ctx context.Context, userID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM ledgers WHERE user_id = $1`, userID)
	if err != nil {
		zap.L().Error("failed to delete ledger", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
