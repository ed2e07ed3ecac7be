package dto

type LedgerResponseDTO struct {
	AvailableTokens   int64   `json:"available_tokens"`
	LifetimeGranted   int64   `json:"lifetime_granted"`
	LifetimeSpent     int64   `json:"lifetime_spent"`
	LifetimeCashSpent float64 `json:"lifetime_cash_spent"`
	Expiration        *int64  `json:"expiration,omitempty"`
}

type ConsumeRequestDTO struct {
	Amount int64 `json:"amount"`
}

type IncrementRequestDTO struct {
	User           int     `json:"user"`
	Amount         int64   `json:"amount"`
	GrantedDelta   int64   `json:"granted_delta"`
	UsedDelta      int64   `json:"used_delta"`
	CashSpentDelta float64 `json:"cash_spent_delta"`
}

type FileCountResponseDTO struct {
	UserID int   `json:"user_id"`
	Count  int64 `json:"count"`
}
