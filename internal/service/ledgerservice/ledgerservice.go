package ledgerservice

import (
	"context"
	"errors"

	"github.com/seoforge/seoforge/internal/domain"
	ledgerrepo "github.com/seoforge/seoforge/internal/repo/ledger-repo"
	"go.uber.org/zap"
)

// Repo is the Balance Store. Every balance-affecting statement it runs is
// a single atomic conditional update or a transactional upsert; the service
// never reads a balance and writes it back.
type Repo interface {
	GetLedger(ctx context.Context, userID int) (*domain.Ledger, error)
	UpsertDefault(ctx context.Context, userID int) (*domain.Ledger, error)
	ApplyDelta(ctx context.Context, userID int, delta domain.LedgerDelta) (*domain.Ledger, error)
	Consume(ctx context.Context, userID int, amount int64) (*domain.Ledger, error)
	SetExpiration(ctx context.Context, userID int, expiration int64) (*domain.Ledger, error)
	Delete(ctx context.Context, userID int) (bool, error)
}

type Service struct {
	ledgerRepo Repo
}

func New(ledgerRepo Repo) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
	}
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrLedgerNotFound      = errors.New("ledger not found")
)

// GetLedger returns the user's ledger, or a zeroed view when none exists
// yet. The row itself is only created by the first grant or debit.
func (s *Service) GetLedger(ctx context.Context, userID int) (*domain.Ledger, error) {
	ledger, err := s.ledgerRepo.GetLedger(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get ledger", zap.Error(err))
		return nil, err
	}
	if ledger == nil {
		return &domain.Ledger{UserID: userID}, nil
	}
	return ledger, nil
}

func (s *Service) CreateLedger(ctx context.Context, userID int) (*domain.Ledger, error) {
	ledger, err := s.ledgerRepo.UpsertDefault(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create ledger", zap.Error(err))
		return nil, err
	}
	return ledger, nil
}

// ApplyDelta adjusts all ledger fields as one atomic unit. A delta set that
// would leave the available balance negative is rejected whole with
// ErrInsufficientBalance.
func (s *Service) ApplyDelta(ctx context.Context, userID int, delta domain.LedgerDelta) (*domain.Ledger, error) {
	ledger, err := s.ledgerRepo.ApplyDelta(ctx, userID, delta)
	if err != nil {
		if errors.Is(err, ledgerrepo.ErrInsufficientTokens) {
			return nil, ErrInsufficientBalance
		}
		zap.L().Error("failed to apply ledger delta", zap.Error(err))
		return nil, err
	}
	return ledger, nil
}

// Consume debits amount from the available balance and adds it to the
// lifetime spent counter in one conditional update.
func (s *Service) Consume(ctx context.Context, userID int, amount int64) (*domain.Ledger, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	ledger, err := s.ledgerRepo.Consume(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, ledgerrepo.ErrInsufficientTokens) {
			return nil, ErrInsufficientBalance
		}
		zap.L().Error("failed to consume tokens", zap.Error(err))
		return nil, err
	}
	return ledger, nil
}

// Grant credits tokens to the user, recording the cash amount paid for
// them. Creates the ledger on first use.
func (s *Service) Grant(ctx context.Context, userID int, tokens int64, cash float64) (*domain.Ledger, error) {
	if tokens <= 0 {
		return nil, ErrInvalidAmount
	}
	ledger, err := s.ApplyDelta(ctx, userID, domain.LedgerDelta{
		Available: tokens,
		Granted:   tokens,
		Cash:      cash,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("tokens granted",
		zap.Int("userID", userID),
		zap.Int64("tokens", tokens),
		zap.Float64("cash", cash),
	)
	return ledger, nil
}

func (s *Service) SetExpiration(ctx context.Context, userID int, expiration int64) (*domain.Ledger, error) {
	ledger, err := s.ledgerRepo.SetExpiration(ctx, userID, expiration)
	if err != nil {
		zap.L().Error("failed to set expiration", zap.Error(err))
		return nil, err
	}
	if ledger == nil {
		return nil, ErrLedgerNotFound
	}
	return ledger, nil
}

func (s *Service) DeleteLedger(ctx context.Context, userID int) error {
	deleted, err := s.ledgerRepo.Delete(ctx, userID)
	if err != nil {
		zap.L().Error("failed to delete ledger", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrLedgerNotFound
	}
	return nil
}
