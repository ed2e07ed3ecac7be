package service

import (
	"github.com/seoforge/seoforge/internal/handlers/auth"
	"github.com/seoforge/seoforge/internal/handlers/costs"
	"github.com/seoforge/seoforge/internal/handlers/enrich"
	"github.com/seoforge/seoforge/internal/handlers/ledger"
	"github.com/seoforge/seoforge/internal/handlers/payments"
	"github.com/seoforge/seoforge/internal/handlers/pricing"

	pkgauth "github.com/seoforge/seoforge/pkg/auth"

	"github.com/seoforge/seoforge/internal/config"
	"github.com/seoforge/seoforge/internal/payment"
	"github.com/seoforge/seoforge/internal/pg"
	"github.com/seoforge/seoforge/internal/repo"
	authservice "github.com/seoforge/seoforge/internal/service/authservice"
	enrichservice "github.com/seoforge/seoforge/internal/service/enrichservice"
	ledgerservice "github.com/seoforge/seoforge/internal/service/ledgerservice"
	paymentservice "github.com/seoforge/seoforge/internal/service/paymentservice"
	pricingservice "github.com/seoforge/seoforge/internal/service/pricingservice"
)

type Services struct {
	AuthService    auth.Service
	LedgerService  ledger.Service
	PaymentService payments.Service
	PricingService pricing.Service
	CostsService   costs.Service
	EnrichService  enrich.Service
}

// Clients groups the outbound collaborators the services talk to.
type Clients struct {
	Payment payment.Provider
	Search  enrichservice.SearchClient
	AI      enrichservice.AIClient
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, ext *Clients) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo)
	pricingService := pricingservice.New(repo.PricingRepo, cfg.TokensPerUnit)
	paymentService := paymentservice.New(cfg, ext.Payment, repo.OrderRepo, ledgerService, pricingService, txManager)
	authService := authservice.New(repo.UserRepo, ledgerService, &pkgauth.HashService{}, &pkgauth.JWTService{})
	enrichService := enrichservice.New(ledgerService, repo.CostsRepo, repo.FileCountRepo, ext.Search, ext.AI)

	return &Services{
		AuthService:    authService,
		LedgerService:  ledgerService,
		PaymentService: paymentService,
		PricingService: pricingService,
		CostsService:   enrichService,
		EnrichService:  enrichService,
	}
}
