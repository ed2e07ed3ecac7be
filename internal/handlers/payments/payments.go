package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/seoforge/seoforge/internal/dto"
	"github.com/seoforge/seoforge/internal/payment"
	"github.com/seoforge/seoforge/internal/service/paymentservice"
	"github.com/seoforge/seoforge/internal/service/pricingservice"
	"github.com/seoforge/seoforge/pkg/auth"
	"github.com/seoforge/seoforge/pkg/utils"
)

type Service interface {
	Checkout(ctx context.Context, userID, planID int) (*paymentservice.CheckoutResult, error)
	Status(ctx context.Context, orderID int64) (string, string, error)
	Reconcile(ctx context.Context, orderID int64) (*paymentservice.ReconcileResult, error)
	Wait(ctx context.Context, orderID int64) (*paymentservice.ReconcileResult, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func orderIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func reconcileResponse(res *paymentservice.ReconcileResult) dto.ReconcileResponseDTO {
	return dto.ReconcileResponseDTO{
		OK:               res.Outcome == paymentservice.OutcomeFulfilled,
		State:            res.State,
		AlreadyFulfilled: res.AlreadyFulfilled,
		Timeout:          res.Timeout,
	}
}

// respondReconcile maps a reconciliation outcome to the HTTP surface:
// fulfilled (first time or repeat) is 200, a failed payment 400, still
// pending 202.
func respondReconcile(w http.ResponseWriter, res *paymentservice.ReconcileResult) {
	switch res.Outcome {
	case paymentservice.OutcomeFulfilled:
		utils.RespondWithJSON(w, http.StatusOK, reconcileResponse(res))
	case paymentservice.OutcomeFailed:
		utils.RespondWithJSON(w, http.StatusBadRequest, reconcileResponse(res))
	default:
		utils.RespondWithJSON(w, http.StatusAccepted, reconcileResponse(res))
	}
}

func respondReconcileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, paymentservice.ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, payment.ErrProviderUnavailable):
		utils.RespondWithError(w, http.StatusBadGateway, "Payment provider unavailable")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Checkout godoc
//
//	@Summary		Start a token pack purchase
//	@Description	Create a payment transaction for the selected pricing plan and return the hosted payment page URL.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CheckoutRequestDTO	true	"Checkout request payload"
//	@Success		200		{object}	dto.CheckoutResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Unknown pricing plan"
//	@Failure		502		{object}	utils.Response	"Payment provider unavailable"
//	@Router			/api/payments/checkout [post]
func (h *PaymentHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.paymentService.Checkout(r.Context(), userID, req.PlanID)
	if err != nil {
		switch {
		case errors.Is(err, pricingservice.ErrPlanNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Pricing plan not found")
		case errors.Is(err, paymentservice.ErrDuplicateOrder):
			utils.RespondWithError(w, http.StatusConflict, "Order already exists")
		case errors.Is(err, payment.ErrProviderUnavailable):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment provider unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create payment session")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CheckoutResponseDTO{
		TransactionID:  result.TransactionID,
		PaymentPageURL: result.PaymentPageURL,
	})
}

// Status godoc
//
//	@Summary		Read a payment's state
//	@Description	Quick read of the provider state and local fulfillment status of one transaction.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Transaction id"
//	@Success		200	{object}	dto.PaymentStatusResponseDTO
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		502	{object}	utils.Response	"Payment provider unavailable"
//	@Router			/api/payments/status/{id} [get]
func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	state, local, err := h.paymentService.Status(r.Context(), orderID)
	if err != nil {
		respondReconcileError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentStatusResponseDTO{
		ID:    orderID,
		State: state,
		Local: local,
	})
}

// Fulfill godoc
//
//	@Summary		Reconcile a payment once
//	@Description	Re-read the authoritative provider state and run the idempotent fulfillment logic. Safe to call repeatedly.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Transaction id"
//	@Success		200	{object}	dto.ReconcileResponseDTO	"Payment settled"
//	@Success		202	{object}	dto.ReconcileResponseDTO	"Payment still pending"
//	@Failure		400	{object}	dto.ReconcileResponseDTO	"Payment failed"
//	@Failure		404	{object}	utils.Response				"Order not found"
//	@Failure		502	{object}	utils.Response				"Payment provider unavailable"
//	@Router			/api/payments/fulfill/{id} [post]
func (h *PaymentHandler) Fulfill(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	result, err := h.paymentService.Reconcile(r.Context(), orderID)
	if err != nil {
		respondReconcileError(w, err)
		return
	}
	respondReconcile(w, result)
}

// Wait godoc
//
//	@Summary		Wait for a payment to settle
//	@Description	Long-poll the provider until the payment settles or the wait ceiling elapses. Timeout answers 202 with timeout=true.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Transaction id"
//	@Success		200	{object}	dto.ReconcileResponseDTO	"Payment settled"
//	@Success		202	{object}	dto.ReconcileResponseDTO	"Still pending after the ceiling"
//	@Failure		400	{object}	dto.ReconcileResponseDTO	"Payment failed"
//	@Failure		404	{object}	utils.Response				"Order not found"
//	@Router			/api/payments/wait/{id} [post]
func (h *PaymentHandler) Wait(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	result, err := h.paymentService.Wait(r.Context(), orderID)
	if err != nil {
		respondReconcileError(w, err)
		return
	}
	respondReconcile(w, result)
}

// Webhook godoc
//
//	@Summary		Provider webhook ingress
//	@Description	Accept a transaction-change notification. Only the entity id is trusted; state is re-read from the provider. Always acks fast.
//	@Tags			Payments
//	@Accept			json
//	@Success		200	{string}	string	"Acknowledged"
//	@Failure		400	{object}	utils.Response	"Missing entity id"
//	@Router			/api/payments/webhook [post]
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req dto.WebhookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EntityID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing entityId")
		return
	}

	// Ack regardless of the reconciliation outcome; redelivery is handled
	// by the reconciler's idempotence, not by suppressing retries.
	h.paymentService.Reconcile(r.Context(), req.EntityID)
	w.WriteHeader(http.StatusOK)
}
