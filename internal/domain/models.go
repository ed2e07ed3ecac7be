package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

// Ledger is the per-user token account. AvailableTokens never goes below
// zero after a committed operation; the lifetime counters only grow.
type Ledger struct {
	ID                int       `db:"id"`
	UserID            int       `db:"user_id"`
	AvailableTokens   int64     `db:"available_tokens"`
	LifetimeGranted   int64     `db:"lifetime_granted"`
	LifetimeSpent     int64     `db:"lifetime_spent"`
	LifetimeCashSpent float64   `db:"lifetime_cash_spent"`
	Expiration        *int64    `db:"expiration"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// LedgerDelta is one atomic adjustment applied to a ledger as a unit.
type LedgerDelta struct {
	Available int64
	Granted   int64
	Spent     int64
	Cash      float64
}

const (
	PendingOrderStatus   string = "pending"
	FulfilledOrderStatus string = "fulfilled"
	FailedOrderStatus    string = "failed"
)

// Order is one checkout attempt, keyed by the payment provider's
// transaction id. Status transitions pending -> fulfilled | failed once;
// both terminal states are absorbing.
type Order struct {
	OrderID     int64      `db:"order_id"`
	UserID      int        `db:"user_id"`
	Reference   string     `db:"reference"`
	Amount      float64    `db:"amount"`
	Currency    string     `db:"currency"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	FulfilledAt *time.Time `db:"fulfilled_at"`
}

type PricingPlan struct {
	ID               int       `db:"id"`
	Title            string    `db:"title"`
	ShortDescription string    `db:"short_description"`
	Tokens           int64     `db:"tokens"`
	Amount           float64   `db:"amount"`
	Features         []string  `db:"features"`
	CreatedAt        time.Time `db:"created_at"`
}

// CostTable holds the token price of every billable action. A single row
// exists per deployment.
type CostTable struct {
	ID              int   `db:"id"`
	PerImageRequest int64 `db:"per_image_request"`
	PerImage        int64 `db:"per_image"`
	PerSEOInput     int64 `db:"per_seo_input"`
	PerSEOOutput    int64 `db:"per_seo_output"`
}

type FileCount struct {
	ID     int   `db:"id"`
	UserID int   `db:"user_id"`
	Count  int64 `db:"count"`
}
