package paymentservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seoforge/seoforge/internal/config"
	"github.com/seoforge/seoforge/internal/domain"
	"github.com/seoforge/seoforge/internal/payment"
	"github.com/seoforge/seoforge/internal/pg"
	orderrepo "github.com/seoforge/seoforge/internal/repo/order-repo"
)

// OrderRepo is the Order Ledger. TrySetFulfilled is its idempotency
// primitive: for each order exactly one caller sees the pending->fulfilled
// transition.
type OrderRepo interface {
	Create(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, orderID int64) (*domain.Order, error)
	TrySetFulfilled(ctx context.Context, orderID int64) (bool, error)
	SetFailed(ctx context.Context, orderID int64) error
	FindPending(ctx context.Context, olderThan time.Time, limit uint32) ([]domain.Order, error)
}

type LedgerService interface {
	Grant(ctx context.Context, userID int, tokens int64, cash float64) (*domain.Ledger, error)
}

type PricingService interface {
	GetPlan(ctx context.Context, id int) (*domain.PricingPlan, error)
	CreditsForAmount(ctx context.Context, amount float64) (int64, error)
}

type Outcome string

const (
	OutcomeFulfilled Outcome = "fulfilled"
	OutcomeFailed    Outcome = "failed"
	OutcomePending   Outcome = "pending"
)

// ReconcileResult reports one reconciliation attempt. AlreadyFulfilled
// means the order was settled before this attempt; Timeout is only set by
// Wait when the ceiling elapsed with the order still pending.
type ReconcileResult struct {
	Outcome          Outcome
	State            string
	AlreadyFulfilled bool
	Timeout          bool
}

type CheckoutResult struct {
	TransactionID  int64
	PaymentPageURL string
}

var (
	ErrOrderNotFound  = orderrepo.ErrOrderNotFound
	ErrDuplicateOrder = orderrepo.ErrDuplicateOrder
)

type Service struct {
	provider      payment.Provider
	orderRepo     OrderRepo
	ledgerService LedgerService
	pricing       PricingService
	txManager     pg.TXManager

	successStates map[string]struct{}
	failureStates map[string]struct{}
	currency      string
	frontendBase  string
	waitInterval  time.Duration
	waitCeiling   time.Duration
}

func New(cfg *config.Config, provider payment.Provider, orderRepo OrderRepo, ledgerService LedgerService, pricing PricingService, txManager pg.TXManager) *Service {
	return &Service{
		provider:      provider,
		orderRepo:     orderRepo,
		ledgerService: ledgerService,
		pricing:       pricing,
		txManager:     txManager,
		successStates: stateSet(cfg.SuccessStates),
		failureStates: stateSet(cfg.FailureStates),
		currency:      cfg.Currency,
		frontendBase:  cfg.FrontendBaseURL,
		waitInterval:  cfg.WaitInterval,
		waitCeiling:   cfg.WaitCeiling,
	}
}

func stateSet(states []string) map[string]struct{} {
	set := make(map[string]struct{}, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set
}

// Checkout creates a provider transaction for the plan and records a
// pending order keyed by the provider's transaction id. Payment itself
// happens on the hosted page; fulfillment comes later through Reconcile.
func (s *Service) Checkout(ctx context.Context, userID, planID int) (*CheckoutResult, error) {
	plan, err := s.pricing.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	reference := "order-" + uuid.NewString()
	tx, err := s.provider.CreateTransaction(ctx, payment.CreateTransactionRequest{
		Amount:     plan.Amount,
		Currency:   s.currency,
		Name:       plan.Title,
		SKU:        "token-pack",
		Reference:  reference,
		SuccessURL: s.frontendBase + "/payments/success",
		FailedURL:  s.frontendBase + "/payments/failure",
	})
	if err != nil {
		zap.L().Error("checkout failed", zap.Error(err))
		return nil, err
	}

	order := &domain.Order{
		OrderID:   tx.ID,
		UserID:    userID,
		Reference: reference,
		Amount:    plan.Amount,
		Currency:  s.currency,
		Status:    domain.PendingOrderStatus,
		CreatedAt: time.Now(),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		zap.L().Error("can't record order", zap.Int64("orderID", tx.ID), zap.Error(err))
		return nil, err
	}

	return &CheckoutResult{TransactionID: tx.ID, PaymentPageURL: tx.PaymentPageURL}, nil
}

// Status reports the provider's state alongside the local order status.
func (s *Service) Status(ctx context.Context, orderID int64) (string, string, error) {
	order, err := s.orderRepo.Get(ctx, orderID)
	if err != nil {
		return "", "", err
	}
	if order == nil {
		return "", "", ErrOrderNotFound
	}
	state, err := s.provider.ReadState(ctx, orderID)
	if err != nil {
		return "", order.Status, err
	}
	return state, order.Status, nil
}

// Reconcile maps the provider's authoritative state onto the local order.
// It is safe to call any number of times from any trigger: the order
// ledger's conditional transition guarantees at most one credit grant per
// order, and the grant commits in the same transaction as the transition.
// An order that reached failed stays failed even if the provider later
// reports success; stakeholders accepted failed as absorbing.
func (s *Service) Reconcile(ctx context.Context, orderID int64) (*ReconcileResult, error) {
	state, err := s.provider.ReadState(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if _, ok := s.successStates[state]; ok {
		return s.fulfill(ctx, orderID, state)
	}
	if _, ok := s.failureStates[state]; ok {
		if err := s.orderRepo.SetFailed(ctx, orderID); err != nil {
			zap.L().Warn("can't mark order failed", zap.Int64("orderID", orderID), zap.Error(err))
		}
		zap.L().Info("payment failed", zap.Int64("orderID", orderID), zap.String("state", state))
		return &ReconcileResult{Outcome: OutcomeFailed, State: state}, nil
	}
	return &ReconcileResult{Outcome: OutcomePending, State: state}, nil
}

func (s *Service) fulfill(ctx context.Context, orderID int64, state string) (*ReconcileResult, error) {
	var already bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		already, err = s.orderRepo.TrySetFulfilled(ctx, orderID)
		if err != nil {
			return err
		}
		if already {
			return nil
		}

		order, err := s.orderRepo.Get(ctx, orderID)
		if err != nil {
			return err
		}
		credits, err := s.pricing.CreditsForAmount(ctx, order.Amount)
		if err != nil {
			return err
		}
		if _, err := s.ledgerService.Grant(ctx, order.UserID, credits, order.Amount); err != nil {
			return err
		}
		zap.L().Info("order fulfilled",
			zap.Int64("orderID", orderID),
			zap.Int("userID", order.UserID),
			zap.Int64("credits", credits),
		)
		return nil
	})
	if err != nil {
		if errors.Is(err, orderrepo.ErrOrderFailed) {
			return &ReconcileResult{Outcome: OutcomeFailed, State: state}, nil
		}
		zap.L().Error("fulfillment failed", zap.Int64("orderID", orderID), zap.Error(err))
		return nil, err
	}
	if already {
		zap.L().Info("order already fulfilled", zap.Int64("orderID", orderID))
	}
	return &ReconcileResult{Outcome: OutcomeFulfilled, State: state, AlreadyFulfilled: already}, nil
}

// Wait reconciles in a loop until the order leaves pending or the ceiling
// elapses. Timeout is reported as a pending result, not an error. A caller
// that abandons the wait does not undo anything: a later trigger settles
// the order.
func (s *Service) Wait(ctx context.Context, orderID int64) (*ReconcileResult, error) {
	deadline := time.Now().Add(s.waitCeiling)
	ticker := time.NewTicker(s.waitInterval)
	defer ticker.Stop()

	for {
		result, err := s.Reconcile(ctx, orderID)
		if err != nil {
			if !errors.Is(err, payment.ErrProviderUnavailable) {
				return nil, err
			}
			// Provider blips are retried within the wait budget.
			zap.L().Warn("provider unavailable during wait", zap.Int64("orderID", orderID), zap.Error(err))
		} else if result.Outcome != OutcomePending {
			return result, nil
		}

		if !time.Now().Add(s.waitInterval).Before(deadline) {
			return &ReconcileResult{Outcome: OutcomePending, State: domain.PendingOrderStatus, Timeout: true}, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
