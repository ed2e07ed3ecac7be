// Package poller sweeps pending orders whose webhook never arrived and runs
// them through the reconciler. It is the safety net behind the push path.
package poller

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/seoforge/seoforge/internal/config"
	"github.com/seoforge/seoforge/internal/domain"
	"github.com/seoforge/seoforge/internal/service/paymentservice"
)

// minPendingAge keeps the sweep away from orders the user is probably still
// paying for in the hosted page.
const minPendingAge = 2 * time.Minute

var inFlight sync.Map

type Reconciler interface {
	Reconcile(ctx context.Context, orderID int64) (*paymentservice.ReconcileResult, error)
}

type OrderSource interface {
	FindPending(ctx context.Context, olderThan time.Time, limit uint32) ([]domain.Order, error)
}

type Service struct {
	reconciler Reconciler
	orders     OrderSource
	limit      uint32
	workerPool WorkerPoolI
	interval   time.Duration
}

func New(cfg *config.Config, reconciler Reconciler, orders OrderSource) *Service {
	return &Service{
		reconciler: reconciler,
		orders:     orders,
		limit:      1000,
		workerPool: NewWorkerPool(10),
		interval:   cfg.PollerInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Fulfillment poller started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping poller")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	orders, err := s.orders.FindPending(ctx, time.Now().Add(-minPendingAge), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch pending orders", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, order := range orders {
		order := order

		if _, loaded := inFlight.LoadOrStore(order.OrderID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(order.OrderID)
				return s.handleOrder(ctx, order)
			})
			if err != nil {
				inFlight.Delete(order.OrderID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping pending orders", zap.Error(err))
	}
}

func (s *Service) handleOrder(ctx context.Context, order domain.Order) error {
	result, err := s.reconciler.Reconcile(ctx, order.OrderID)
	if err != nil {
		zap.L().Warn("Reconciliation failed, will retry next sweep",
			zap.Int64("orderID", order.OrderID),
			zap.Error(err),
		)
		return nil
	}

	switch result.Outcome {
	case paymentservice.OutcomeFulfilled:
		if !result.AlreadyFulfilled {
			zap.L().Info("Poller settled an order the webhook missed",
				zap.Int64("orderID", order.OrderID),
				zap.String("state", result.State),
			)
		}
	case paymentservice.OutcomeFailed:
		zap.L().Info("Poller marked an order failed",
			zap.Int64("orderID", order.OrderID),
			zap.String("state", result.State),
		)
	}
	return nil
}
