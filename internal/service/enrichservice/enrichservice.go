package enrichservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/seoforge/seoforge/internal/ai"
	"github.com/seoforge/seoforge/internal/domain"
	"github.com/seoforge/seoforge/internal/search"
)

type LedgerService interface {
	Consume(ctx context.Context, userID int, amount int64) (*domain.Ledger, error)
}

type CostsRepo interface {
	Get(ctx context.Context) (*domain.CostTable, error)
	Create(ctx context.Context, costs *domain.CostTable) (*domain.CostTable, error)
	Update(ctx context.Context, costs *domain.CostTable) (*domain.CostTable, error)
}

type FileCountRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.FileCount, error)
	Increment(ctx context.Context, userID int, delta int64) (*domain.FileCount, error)
}

type SearchClient interface {
	SearchImages(ctx context.Context, query string, count int) ([]search.Image, error)
}

type AIClient interface {
	GenerateSEO(ctx context.Context, products []ai.Product, targets []string, language string) ([]ai.SEOResult, error)
}

var (
	ErrCostsNotConfigured   = errors.New("cost table not configured")
	ErrCostsAlreadyExist    = errors.New("cost table already exists")
	ErrCostsNotFound        = errors.New("cost table not found")
	ErrInvalidEnrichRequest = errors.New("invalid enrichment request")
)

// Service runs the billable enrichment actions. Every action debits the
// user's ledger before touching the downstream provider; a committed debit
// is never refunded on provider failure.
type Service struct {
	ledgerService LedgerService
	costsRepo     CostsRepo
	fileCountRepo FileCountRepo
	searchClient  SearchClient
	aiClient      AIClient
}

func New(ledgerService LedgerService, costsRepo CostsRepo, fileCountRepo FileCountRepo, searchClient SearchClient, aiClient AIClient) *Service {
	return &Service{
		ledgerService: ledgerService,
		costsRepo:     costsRepo,
		fileCountRepo: fileCountRepo,
		searchClient:  searchClient,
		aiClient:      aiClient,
	}
}

func (s *Service) costs(ctx context.Context) (*domain.CostTable, error) {
	costs, err := s.costsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if costs == nil {
		return nil, ErrCostsNotConfigured
	}
	return costs, nil
}

// SearchImages charges per_image_request + count*per_image, then queries
// the image-search collaborator.
func (s *Service) SearchImages(ctx context.Context, userID int, query string, count int) ([]search.Image, int64, error) {
	if query == "" || count <= 0 {
		return nil, 0, ErrInvalidEnrichRequest
	}
	costs, err := s.costs(ctx)
	if err != nil {
		return nil, 0, err
	}

	cost := costs.PerImageRequest + int64(count)*costs.PerImage
	if _, err := s.ledgerService.Consume(ctx, userID, cost); err != nil {
		return nil, 0, err
	}

	images, err := s.searchClient.SearchImages(ctx, query, count)
	if err != nil {
		zap.L().Error("image search failed after debit",
			zap.Int("userID", userID),
			zap.Int64("cost", cost),
			zap.Error(err),
		)
		return nil, cost, err
	}
	return images, cost, nil
}

// GenerateSEO charges per product for input plus per requested target for
// output, then calls the text-generation collaborator and bumps the user's
// processed-file counter by the batch size.
func (s *Service) GenerateSEO(ctx context.Context, userID int, products []ai.Product, targets []string, language string) ([]ai.SEOResult, int64, error) {
	if len(products) == 0 || len(targets) == 0 {
		return nil, 0, ErrInvalidEnrichRequest
	}
	costs, err := s.costs(ctx)
	if err != nil {
		return nil, 0, err
	}

	perProduct := costs.PerSEOInput + costs.PerSEOOutput*int64(len(targets))
	cost := perProduct * int64(len(products))
	if _, err := s.ledgerService.Consume(ctx, userID, cost); err != nil {
		return nil, 0, err
	}

	results, err := s.aiClient.GenerateSEO(ctx, products, targets, language)
	if err != nil {
		zap.L().Error("seo generation failed after debit",
			zap.Int("userID", userID),
			zap.Int64("cost", cost),
			zap.Error(err),
		)
		return nil, cost, err
	}

	if _, err := s.fileCountRepo.Increment(ctx, userID, int64(len(products))); err != nil {
		zap.L().Warn("failed to bump file count", zap.Int("userID", userID), zap.Error(err))
	}
	return results, cost, nil
}

func (s *Service) GetFileCount(ctx context.Context, userID int) (*domain.FileCount, error) {
	fc, err := s.fileCountRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get file count", zap.Error(err))
		return nil, err
	}
	if fc == nil {
		return &domain.FileCount{UserID: userID}, nil
	}
	return fc, nil
}

func (s *Service) GetCosts(ctx context.Context) (*domain.CostTable, error) {
	costs, err := s.costsRepo.Get(ctx)
	if err != nil {
		zap.L().Error("failed to get cost table", zap.Error(err))
		return nil, err
	}
	if costs == nil {
		return nil, ErrCostsNotFound
	}
	return costs, nil
}

// CreateCosts refuses a second cost table: one row drives the whole
// deployment.
func (s *Service) CreateCosts(ctx context.Context, costs *domain.CostTable) (*domain.CostTable, error) {
	if costs.PerImageRequest < 0 || costs.PerImage < 0 || costs.PerSEOInput < 0 || costs.PerSEOOutput < 0 {
		return nil, ErrInvalidEnrichRequest
	}
	existing, err := s.costsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCostsAlreadyExist
	}
	created, err := s.costsRepo.Create(ctx, costs)
	if err != nil {
		zap.L().Error("failed to create cost table", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateCosts(ctx context.Context, costs *domain.CostTable) (*domain.CostTable, error) {
	if costs.PerImageRequest < 0 || costs.PerImage < 0 || costs.PerSEOInput < 0 || costs.PerSEOOutput < 0 {
		return nil, ErrInvalidEnrichRequest
	}
	updated, err := s.costsRepo.Update(ctx, costs)
	if err != nil {
		zap.L().Error("failed to update cost table", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrCostsNotFound
	}
	return updated, nil
}
