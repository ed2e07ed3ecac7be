package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/seoforge/seoforge/internal/domain"
	"github.com/seoforge/seoforge/internal/pg"
	"go.uber.org/zap"
)

var (
	// ErrDuplicateOrder means an order with the same provider transaction
	// id already exists.
	ErrDuplicateOrder = errors.New("order already exists")
	// ErrOrderNotFound is returned for state transitions on unknown orders.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderFailed marks an order that already reached the failed
	// terminal state; it can never become fulfilled afterwards.
	ErrOrderFailed = errors.New("order already failed")
)

const uniqueViolation = "23505"

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

const orderColumns = `order_id, user_id, reference, amount, currency, status, created_at, fulfilled_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.OrderID, &o.UserID, &o.Reference, &o.Amount, &o.Currency,
		&o.Status, &o.CreatedAt, &o.FulfilledAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (order_id, user_id, reference, amount, currency, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query, order.OrderID, order.UserID, order.Reference,
		order.Amount, order.Currency, order.Status, order.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateOrder
		}
		zap.L().Error("can't save order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, orderID int64) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE order_id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, orderID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// TrySetFulfilled flips a pending order to fulfilled. Exactly one caller
// observes wasAlreadyFulfilled=false for a given order, no matter how many
// race; that caller owns the one-time credit grant. Terminal states absorb:
// a fulfilled order reports wasAlreadyFulfilled=true, a failed one
// ErrOrderFailed.
func (r *Repository) TrySetFulfilled(ctx context.Context, orderID int64) (bool, error) {
	query := `
        UPDATE orders
        SET status = $1, fulfilled_at = $2
        WHERE order_id = $3 AND status = $4
    `
	tag, err := r.db.Exec(ctx, query, domain.FulfilledOrderStatus, time.Now(), orderID, domain.PendingOrderStatus)
	if err != nil {
		zap.L().Error("failed to fulfill order", zap.Error(err))
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	order, err := r.Get(ctx, orderID)
	if err != nil {
		return false, err
	}
	switch {
	case order == nil:
		return false, ErrOrderNotFound
	case order.Status == domain.FailedOrderStatus:
		return false, ErrOrderFailed
	default:
		return true, nil
	}
}

// SetFailed marks a pending order failed. Best-effort: no credit side
// effect is attached, and terminal orders are left untouched.
func (r *Repository) SetFailed(ctx context.Context, orderID int64) error {
	query := `
        UPDATE orders
        SET status = $1
        WHERE order_id = $2 AND status = $3
    `
	_, err := r.db.Exec(ctx, query, domain.FailedOrderStatus, orderID, domain.PendingOrderStatus)
	if err != nil {
		zap.L().Error("failed to mark order failed", zap.Error(err))
		return err
	}
	return nil
}

// FindPending returns pending orders older than the cutoff for background
// reconciliation.
func (r *Repository) FindPending(ctx context.Context, olderThan time.Time, limit uint32) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE status = $1 AND created_at < $2
        ORDER BY created_at ASC
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, domain.PendingOrderStatus, olderThan, int(limit))
	if err != nil {
		zap.L().Error("can't get pending orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}
