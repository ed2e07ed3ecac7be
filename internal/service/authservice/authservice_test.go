package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/seoforge/seoforge/internal/domain"
	"github.com/seoforge/seoforge/pkg/auth"
)

type mocks struct {
	userRepo *MockRepo
	ledger   *MockLedgerService
	hash     *auth.MockHashServiceInterface
	jwt      *auth.MockJWTServiceInterface
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		userRepo: NewMockRepo(ctrl),
		ledger:   NewMockLedgerService(ctrl),
		hash:     auth.NewMockHashServiceInterface(ctrl),
		jwt:      auth.NewMockJWTServiceInterface(ctrl),
	}
	service := New(m.userRepo, m.ledger, m.hash, m.jwt)

	return service, m
}

func TestService_Register(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	t.Run("Registers a user and opens a ledger", func(t *testing.T) {
		m.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, nil)
		m.hash.EXPECT().HashPassword("secret").Return("hashed", nil)
		m.userRepo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.Equal(t, "hashed", user.PasswordHash)
				user.ID = 7
				return user, nil
			})
		m.ledger.EXPECT().CreateLedger(ctx, 7).Return(&domain.Ledger{UserID: 7}, nil)

		user, err := service.Register(ctx, "new@example.com", "New User", "secret")
		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
	})

	t.Run("Email already taken", func(t *testing.T) {
		m.userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").
			Return(&domain.User{ID: 1, Email: "taken@example.com"}, nil)

		user, err := service.Register(ctx, "taken@example.com", "Someone", "secret")
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Nil(t, user)
	})

	t.Run("Lookup error", func(t *testing.T) {
		m.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").
			Return(nil, errors.New("database error"))

		user, err := service.Register(ctx, "new@example.com", "New User", "secret")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("Hashing error", func(t *testing.T) {
		m.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, nil)
		m.hash.EXPECT().HashPassword("secret").Return("", errors.New("bcrypt error"))

		user, err := service.Register(ctx, "new@example.com", "New User", "secret")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("Ledger creation error", func(t *testing.T) {
		m.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, nil)
		m.hash.EXPECT().HashPassword("secret").Return("hashed", nil)
		m.userRepo.EXPECT().Create(ctx, gomock.Any()).
			Return(&domain.User{ID: 7, Email: "new@example.com"}, nil)
		m.ledger.EXPECT().CreateLedger(ctx, 7).Return(nil, errors.New("database error"))

		user, err := service.Register(ctx, "new@example.com", "New User", "secret")
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestService_Authenticate(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	t.Run("Valid credentials", func(t *testing.T) {
		m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").
			Return(&domain.User{ID: 1, Email: "user@example.com", PasswordHash: "hashed"}, nil)
		m.hash.EXPECT().ComparePassword("hashed", "secret").Return(true)

		user, err := service.Authenticate(ctx, "user@example.com", "secret")
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
	})

	t.Run("Unknown email", func(t *testing.T) {
		m.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, nil)

		user, err := service.Authenticate(ctx, "ghost@example.com", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, user)
	})

	t.Run("Wrong password", func(t *testing.T) {
		m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").
			Return(&domain.User{ID: 1, PasswordHash: "hashed"}, nil)
		m.hash.EXPECT().ComparePassword("hashed", "wrong").Return(false)

		user, err := service.Authenticate(ctx, "user@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, user)
	})
}

func TestService_GenerateToken(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Generates a token", func(t *testing.T) {
		m.jwt.EXPECT().GenerateJWT(1, false, gomock.Any()).Return("token", nil)

		token, err := service.GenerateToken(1, false)
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("Signing error", func(t *testing.T) {
		m.jwt.EXPECT().GenerateJWT(1, true, gomock.Any()).Return("", errors.New("signing error"))

		token, err := service.GenerateToken(1, true)
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}
