package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/seoforge/seoforge/internal/domain"
	"github.com/seoforge/seoforge/internal/dto"
	"github.com/seoforge/seoforge/internal/service/ledgerservice"
	"github.com/seoforge/seoforge/pkg/auth"
	"github.com/seoforge/seoforge/pkg/utils"
)

type Service interface {
	GetLedger(ctx context.Context, userID int) (*domain.Ledger, error)
	Consume(ctx context.Context, userID int, amount int64) (*domain.Ledger, error)
	ApplyDelta(ctx context.Context, userID int, delta domain.LedgerDelta) (*domain.Ledger, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

func ledgerResponse(l *domain.Ledger) dto.LedgerResponseDTO {
	return dto.LedgerResponseDTO{
		AvailableTokens:   l.AvailableTokens,
		LifetimeGranted:   l.LifetimeGranted,
		LifetimeSpent:     l.LifetimeSpent,
		LifetimeCashSpent: l.LifetimeCashSpent,
		Expiration:        l.Expiration,
	}
}

// GetLedger godoc
//
//	@Summary		Get current token balance
//	@Description	Retrieve the available tokens and lifetime totals for the authenticated user.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LedgerResponseDTO	"Current ledger"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/ledger [get]
func (h *LedgerHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	ledger, err := h.ledgerService.GetLedger(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ledgerResponse(ledger))
}

// Consume godoc
//
//	@Summary		Consume tokens
//	@Description	Debit tokens from the authenticated user's available balance.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConsumeRequestDTO	true	"Consume request payload"
//	@Success		200		{object}	dto.LedgerResponseDTO	"Updated ledger"
//	@Failure		400		{object}	utils.Response			"Invalid amount"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/ledger/consume [post]
func (h *LedgerHandler) Consume(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ConsumeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ledger, err := h.ledgerService.Consume(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ledgerResponse(ledger))
}

// Increment godoc
//
//	@Summary		Adjust a user's ledger
//	@Description	Apply available/granted/used/cash deltas to a user's ledger as one atomic unit. Admin only.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.IncrementRequestDTO	true	"Increment request payload"
//	@Success		200		{object}	dto.LedgerResponseDTO	"Updated ledger"
//	@Failure		400		{object}	utils.Response			"Delta would leave balance negative"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Not an admin"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/ledger/increment [post]
func (h *LedgerHandler) Increment(w http.ResponseWriter, r *http.Request) {
	var req dto.IncrementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.User == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Valid user id is required")
		return
	}

	ledger, err := h.ledgerService.ApplyDelta(r.Context(), req.User, domain.LedgerDelta{
		Available: req.Amount,
		Granted:   req.GrantedDelta,
		Spent:     req.UsedDelta,
		Cash:      req.CashSpentDelta,
	})
	if err != nil {
		if errors.Is(err, ledgerservice.ErrInsufficientBalance) {
			utils.RespondWithError(w, http.StatusBadRequest, "Operation would result in negative balance")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ledgerResponse(ledger))
}
