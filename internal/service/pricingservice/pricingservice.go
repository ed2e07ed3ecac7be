package pricingservice

import (
	"context"
	"errors"
	"math"

	"github.com/seoforge/seoforge/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, plan *domain.PricingPlan) (*domain.PricingPlan, error)
	FindAll(ctx context.Context) ([]domain.PricingPlan, error)
	FindByID(ctx context.Context, id int) (*domain.PricingPlan, error)
	FindByAmount(ctx context.Context, amount float64) (*domain.PricingPlan, error)
	Update(ctx context.Context, plan *domain.PricingPlan) (*domain.PricingPlan, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type Service struct {
	pricingRepo   Repo
	tokensPerUnit int64
}

// New builds the pricing service. tokensPerUnit is the fallback conversion
// rate applied when an order amount matches no plan.
func New(pricingRepo Repo, tokensPerUnit int64) *Service {
	return &Service{
		pricingRepo:   pricingRepo,
		tokensPerUnit: tokensPerUnit,
	}
}

var (
	ErrPlanNotFound = errors.New("pricing plan not found")
	ErrInvalidPlan  = errors.New("invalid pricing plan")
)

func (s *Service) CreatePlan(ctx context.Context, plan *domain.PricingPlan) (*domain.PricingPlan, error) {
	if plan.Title == "" || plan.Tokens < 0 || plan.Amount < 0 {
		return nil, ErrInvalidPlan
	}
	created, err := s.pricingRepo.Create(ctx, plan)
	if err != nil {
		zap.L().Error("failed to create pricing plan", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetPlans(ctx context.Context) ([]domain.PricingPlan, error) {
	plans, err := s.pricingRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get pricing plans", zap.Error(err))
		return nil, err
	}
	return plans, nil
}

func (s *Service) GetPlan(ctx context.Context, id int) (*domain.PricingPlan, error) {
	plan, err := s.pricingRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get pricing plan", zap.Error(err))
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *Service) UpdatePlan(ctx context.Context, plan *domain.PricingPlan) (*domain.PricingPlan, error) {
	if plan.Tokens < 0 || plan.Amount < 0 {
		return nil, ErrInvalidPlan
	}
	updated, err := s.pricingRepo.Update(ctx, plan)
	if err != nil {
		zap.L().Error("failed to update pricing plan", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrPlanNotFound
	}
	return updated, nil
}

func (s *Service) DeletePlan(ctx context.Context, id int) error {
	deleted, err := s.pricingRepo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("failed to delete pricing plan", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrPlanNotFound
	}
	return nil
}

// CreditsForAmount is the pricing rule used at fulfillment: the plan whose
// price equals the charged amount wins; otherwise the configured
// tokens-per-unit rate applies.
func (s *Service) CreditsForAmount(ctx context.Context, amount float64) (int64, error) {
	plan, err := s.pricingRepo.FindByAmount(ctx, amount)
	if err != nil {
		zap.L().Error("failed to resolve pricing rule", zap.Error(err))
		return 0, err
	}
	if plan != nil {
		return plan.Tokens, nil
	}
	return int64(math.Round(amount * float64(s.tokensPerUnit))), nil
}
