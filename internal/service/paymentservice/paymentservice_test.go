package paymentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/seoforge/seoforge/internal/config"
	"github.com/seoforge/seoforge/internal/domain"
	"github.com/seoforge/seoforge/internal/payment"
	"github.com/seoforge/seoforge/internal/pg"
	orderrepo "github.com/seoforge/seoforge/internal/repo/order-repo"
)

type mocks struct {
	provider  *payment.MockProvider
	orderRepo *MockOrderRepo
	ledger    *MockLedgerService
	pricing   *MockPricingService
	txManager *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		provider:  payment.NewMockProvider(ctrl),
		orderRepo: NewMockOrderRepo(ctrl),
		ledger:    NewMockLedgerService(ctrl),
		pricing:   NewMockPricingService(ctrl),
		txManager: pg.NewMockTXManager(ctrl),
	}
	cfg := &config.Config{
		SuccessStates:   []string{"AUTHORIZED", "COMPLETED", "FULFILL"},
		FailureStates:   []string{"FAILED", "DECLINE", "VOIDED"},
		Currency:        "EUR",
		FrontendBaseURL: "http://localhost:3000",
		WaitInterval:    10 * time.Millisecond,
		WaitCeiling:     50 * time.Millisecond,
	}
	service := New(cfg, m.provider, m.orderRepo, m.ledger, m.pricing, m.txManager)

	return service, m
}

func passthroughTx(m *mocks) *gomock.Call {
	return m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestService_Checkout(t *testing.T) {
	plan := &domain.PricingPlan{ID: 1, Title: "Starter", Tokens: 100, Amount: 9.99}

	t.Run("Creates transaction and pending order", func(t *testing.T) {
		service, m := NewMock(t)

		m.pricing.EXPECT().GetPlan(gomock.Any(), 1).Return(plan, nil)
		m.provider.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req payment.CreateTransactionRequest) (*payment.Transaction, error) {
				assert.Equal(t, 9.99, req.Amount)
				assert.Equal(t, "EUR", req.Currency)
				assert.Equal(t, "http://localhost:3000/payments/success", req.SuccessURL)
				assert.NotEmpty(t, req.Reference)
				return &payment.Transaction{ID: 42, PaymentPageURL: "https://pay.example/42"}, nil
			})
		m.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order) error {
				assert.Equal(t, int64(42), order.OrderID)
				assert.Equal(t, 7, order.UserID)
				assert.Equal(t, domain.PendingOrderStatus, order.Status)
				return nil
			})

		result, err := service.Checkout(context.Background(), 7, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), result.TransactionID)
		assert.Equal(t, "https://pay.example/42", result.PaymentPageURL)
	})

	t.Run("Unknown plan", func(t *testing.T) {
		service, m := NewMock(t)

		m.pricing.EXPECT().GetPlan(gomock.Any(), 9).Return(nil, errors.New("pricing plan not found"))

		result, err := service.Checkout(context.Background(), 7, 9)
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Provider unavailable", func(t *testing.T) {
		service, m := NewMock(t)

		m.pricing.EXPECT().GetPlan(gomock.Any(), 1).Return(plan, nil)
		m.provider.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil, payment.ErrProviderUnavailable)

		result, err := service.Checkout(context.Background(), 7, 1)
		assert.ErrorIs(t, err, payment.ErrProviderUnavailable)
		assert.Nil(t, result)
	})
}

func TestService_Status(t *testing.T) {
	t.Run("Reports provider and local state", func(t *testing.T) {
		service, m := NewMock(t)

		m.orderRepo.EXPECT().Get(gomock.Any(), int64(42)).
			Return(&domain.Order{OrderID: 42, Status: domain.PendingOrderStatus}, nil)
		m.provider.EXPECT().ReadState(gomock.Any(), int64(42)).Return("PROCESSING", nil)

		state, local, err := service.Status(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, "PROCESSING", state)
		assert.Equal(t, domain.PendingOrderStatus, local)
	})

	t.Run("Unknown order", func(t *testing.T) {
		service, m := NewMock(t)

		m.orderRepo.EXPECT().Get(gomock.Any(), int64(7)).Return(nil, nil)

		_, _, err := service.Status(context.Background(), 7)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_Reconcile(t *testing.T) {
	order := &domain.Order{OrderID: 42, UserID: 7, Amount: 9.99, Status: domain.PendingOrderStatus}

	t.Run("Success state grants credits once", func(t *testing.T) {
		service, m := NewMock(t)

		m.provider.EXPECT().ReadState(gomock.Any(), int64(42)).Return("COMPLETED", nil)
		passthroughTx(m)
		m.orderRepo.EXPECT().TrySetFulfilled(gomock.Any(), int64(42)).Return(false, nil)
		m.orderRepo.EXPECT().Get(gomock.Any(), int64(42)).Return(order, nil)
		m.pricing.EXPECT().CreditsForAmount(gomock.Any(), 9.99).Return(int64(100), nil)
		m.ledger.EXPECT().Grant(gomock.Any(), 7, int64(100), 9.99).Return(&domain.Ledger{}, nil)

		result, err := service.Reconcile(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, OutcomeFulfilled, result.Outcome)
		assert.False(t, result.AlreadyFulfilled)
	})

	t.Run("Repeat reconciliation grants nothing", func(t *testing.T) {
		service, m := NewMock(t)

		m.provider.EXPECT().ReadState(gomock.Any(), int64(42)).Return("COMPLETED", nil)
		passthroughTx(m)
		m.orderRepo.EXPECT().TrySetFulfilled(gomock.Any(), int64(42)).Return(true, nil)

		result, err := service.Reconcile(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, OutcomeFulfilled, result.Outcome)
		assert.True(t, result.AlreadyFulfilled)
	})

	t.Run("Grant failure rolls the transition back", func(t *testing.T) {
		service, m := NewMock(t)

		m.provider.EXPECT().ReadState(gomock.Any(), int64(42)).Return("COMPLETED", nil)
		passthroughTx(m)
		m.orderRepo.EXPECT().TrySetFulfilled(gomock.Any(), int64(42)).Return(false, nil)
		m.orderRepo.EXPECT().Get(gomock.Any(), int64(42)).Return(order, nil)
		m.pricing.EXPECT().CreditsForAmount(gomock.Any(), 9.99).Return(int64(100), nil)
		m.ledger.EXPECT().Grant(gomock.Any(), 7, int64(100), 9.99).Return(nil, errors.New("database error"))

		result, err := service.Reconcile(context.Background(), 42)
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Failure state marks the order failed", func(t *testing.T) {
		service, m := NewMock(t)

		m.provider.EXPECT().ReadState(gomock.Any(), int64(42)).Return("DECLINE", nil)
		m.orderRepo.EXPECT().SetFailed(gomock.Any(), int64(42)).Return(nil)

		result, err := service.Reconcile(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, OutcomeFailed, result.Outcome)
		assert.Equal(t, "DECLINE", result.State)
	})

	t.Run("Failed order absorbs a later success report", func(t *testing.T) {
		service, m := NewMock(t)

		m.provider.EXPECT().ReadState(gomock.Any(), int64(42)).Return("COMPLETED", nil)
		passthroughTx(m)
		m.orderRepo.EXPECT().TrySetFulfilled(gomock.Any(), int64(42)).Return(false, orderrepo.ErrOrderFailed)

		result, err := service.Reconcile(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, OutcomeFailed, result.Outcome)
	})

	t.Run("Unrecognized state stays pending", func(t *testing.T) {
		service, m := NewMock(t)

		m.provider.EXPECT().ReadState(gomock.Any(), int64(42)).Return("PROCESSING", nil)

		result, err := service.Reconcile(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, OutcomePending, result.Outcome)
	})

	t.Run("Provider unavailable", func(t *testing.T) {
		service, m := NewMock(t)

		m.provider.EXPECT().ReadState(gomock.Any(), int64(42)).Return("", payment.ErrProviderUnavailable)

		result, err := service.Reconcile(context.Background(), 42)
		assert.ErrorIs(t, err, payment.ErrProviderUnavailable)
		assert.Nil(t, result)
	})
}

func TestService_Wait(t *testing.T) {
	order := &domain.Order{OrderID: 42, UserID: 7, Amount: 9.99, Status: domain.PendingOrderStatus}

	t.Run("Settles on a later poll", func(t *testing.T) {
		service, m := NewMock(t)

		gomock.InOrder(
			m.provider.EXPECT().ReadState(gomock.Any(), int64(42)).Return("PROCESSING", nil),
			m.provider.EXPECT().ReadState(gomock.Any(), int64(42)).Return("COMPLETED", nil),
		)
		passthroughTx(m)
		m.orderRepo.EXPECT().TrySetFulfilled(gomock.Any(), int64(42)).Return(false, nil)
		m.orderRepo.EXPECT().Get(gomock.Any(), int64(42)).Return(order, nil)
		m.pricing.EXPECT().CreditsForAmount(gomock.Any(), 9.99).Return(int64(100), nil)
		m.ledger.EXPECT().Grant(gomock.Any(), 7, int64(100), 9.99).Return(&domain.Ledger{}, nil)

		result, err := service.Wait(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, OutcomeFulfilled, result.Outcome)
		assert.False(t, result.Timeout)
	})

	t.Run("Ceiling elapses while still pending", func(t *testing.T) {
		service, m := NewMock(t)

		m.provider.EXPECT().ReadState(gomock.Any(), int64(42)).Return("PROCESSING", nil).AnyTimes()

		result, err := service.Wait(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, OutcomePending, result.Outcome)
		assert.True(t, result.Timeout)
	})

	t.Run("Provider blips are retried within the budget", func(t *testing.T) {
		service, m := NewMock(t)

		gomock.InOrder(
			m.provider.EXPECT().ReadState(gomock.Any(), int64(42)).Return("", payment.ErrProviderUnavailable),
			m.provider.EXPECT().ReadState(gomock.Any(), int64(42)).Return("COMPLETED", nil),
		)
		passthroughTx(m)
		m.orderRepo.EXPECT().TrySetFulfilled(gomock.Any(), int64(42)).Return(true, nil)

		result, err := service.Wait(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, OutcomeFulfilled, result.Outcome)
		assert.True(t, result.AlreadyFulfilled)
	})

	t.Run("Canceled context stops the wait", func(t *testing.T) {
		service, m := NewMock(t)

		m.provider.EXPECT().ReadState(gomock.Any(), int64(42)).Return("PROCESSING", nil).AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := service.Wait(ctx, 42)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
