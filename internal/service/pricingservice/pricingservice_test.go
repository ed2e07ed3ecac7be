package pricingservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/seoforge/seoforge/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepo(ctrl)
	service := New(mockRepo, 10)

	return service, mockRepo
}

func TestService_CreatePlan(t *testing.T) {
	service, mockRepo := NewMock(t)
	ctx := context.Background()

	plan := &domain.PricingPlan{Title: "Starter", Tokens: 100, Amount: 9.99}

	t.Run("Creates the plan", func(t *testing.T) {
		mockRepo.EXPECT().Create(ctx, plan).
			Return(&domain.PricingPlan{ID: 1, Title: "Starter", Tokens: 100, Amount: 9.99}, nil)

		created, err := service.CreatePlan(ctx, plan)
		assert.NoError(t, err)
		assert.Equal(t, 1, created.ID)
	})

	t.Run("Missing title is rejected", func(t *testing.T) {
		created, err := service.CreatePlan(ctx, &domain.PricingPlan{Tokens: 100})
		assert.ErrorIs(t, err, ErrInvalidPlan)
		assert.Nil(t, created)
	})

	t.Run("Negative token count is rejected", func(t *testing.T) {
		created, err := service.CreatePlan(ctx, &domain.PricingPlan{Title: "Broken", Tokens: -1})
		assert.ErrorIs(t, err, ErrInvalidPlan)
		assert.Nil(t, created)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo.EXPECT().Create(ctx, plan).Return(nil, errors.New("database error"))

		created, err := service.CreatePlan(ctx, plan)
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestService_GetPlans(t *testing.T) {
	service, mockRepo := NewMock(t)
	ctx := context.Background()

	t.Run("Returns all plans", func(t *testing.T) {
		mockRepo.EXPECT().FindAll(ctx).Return([]domain.PricingPlan{
			{ID: 1, Title: "Starter"},
			{ID: 2, Title: "Pro"},
		}, nil)

		plans, err := service.GetPlans(ctx)
		assert.NoError(t, err)
		assert.Len(t, plans, 2)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("database error"))

		plans, err := service.GetPlans(ctx)
		assert.Error(t, err)
		assert.Nil(t, plans)
	})
}

func TestService_GetPlan(t *testing.T) {
	service, mockRepo := NewMock(t)
	ctx := context.Background()

	t.Run("Existing plan", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(ctx, 1).
			Return(&domain.PricingPlan{ID: 1, Title: "Starter"}, nil)

		plan, err := service.GetPlan(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Starter", plan.Title)
	})

	t.Run("Unknown plan", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(ctx, 9).Return(nil, nil)

		plan, err := service.GetPlan(ctx, 9)
		assert.ErrorIs(t, err, ErrPlanNotFound)
		assert.Nil(t, plan)
	})
}

func TestService_UpdatePlan(t *testing.T) {
	service, mockRepo := NewMock(t)
	ctx := context.Background()

	plan := &domain.PricingPlan{ID: 1, Title: "Starter", Tokens: 150, Amount: 12.99}

	t.Run("Updates the plan", func(t *testing.T) {
		mockRepo.EXPECT().Update(ctx, plan).Return(plan, nil)

		updated, err := service.UpdatePlan(ctx, plan)
		assert.NoError(t, err)
		assert.Equal(t, int64(150), updated.Tokens)
	})

	t.Run("Unknown plan", func(t *testing.T) {
		mockRepo.EXPECT().Update(ctx, plan).Return(nil, nil)

		updated, err := service.UpdatePlan(ctx, plan)
		assert.ErrorIs(t, err, ErrPlanNotFound)
		assert.Nil(t, updated)
	})

	t.Run("Negative amount is rejected", func(t *testing.T) {
		updated, err := service.UpdatePlan(ctx, &domain.PricingPlan{ID: 1, Amount: -1})
		assert.ErrorIs(t, err, ErrInvalidPlan)
		assert.Nil(t, updated)
	})
}

func TestService_DeletePlan(t *testing.T) {
	service, mockRepo := NewMock(t)
	ctx := context.Background()

	t.Run("Deletes the plan", func(t *testing.T) {
		mockRepo.EXPECT().Delete(ctx, 1).Return(true, nil)

		err := service.DeletePlan(ctx, 1)
		assert.NoError(t, err)
	})

	t.Run("Unknown plan", func(t *testing.T) {
		mockRepo.EXPECT().Delete(ctx, 9).Return(false, nil)

		err := service.DeletePlan(ctx, 9)
		assert.ErrorIs(t, err, ErrPlanNotFound)
	})
}

func TestService_CreditsForAmount(t *testing.T) {
	service, mockRepo := NewMock(t)
	ctx := context.Background()

	t.Run("Plan matching the amount wins", func(t *testing.T) {
		mockRepo.EXPECT().FindByAmount(ctx, 9.99).
			Return(&domain.PricingPlan{ID: 1, Tokens: 100, Amount: 9.99}, nil)

		tokens, err := service.CreditsForAmount(ctx, 9.99)
		assert.NoError(t, err)
		assert.Equal(t, int64(100), tokens)
	})

	t.Run("No matching plan falls back to the configured rate", func(t *testing.T) {
		mockRepo.EXPECT().FindByAmount(ctx, 12.30).Return(nil, nil)

		tokens, err := service.CreditsForAmount(ctx, 12.30)
		assert.NoError(t, err)
		assert.Equal(t, int64(123), tokens)
	})

	t.Run("Fallback rounds to the nearest token", func(t *testing.T) {
		mockRepo.EXPECT().FindByAmount(ctx, 0.06).Return(nil, nil)

		tokens, err := service.CreditsForAmount(ctx, 0.06)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), tokens)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo.EXPECT().FindByAmount(ctx, gomock.Any()).
			Return(nil, errors.New("database error"))

		tokens, err := service.CreditsForAmount(ctx, 9.99)
		assert.Error(t, err)
		assert.Equal(t, int64(0), tokens)
	})
}
