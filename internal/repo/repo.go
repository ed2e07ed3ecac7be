package repo

import (
	"github.com/seoforge/seoforge/internal/pg"
	costsrepo "github.com/seoforge/seoforge/internal/repo/costs-repo"
	filecountrepo "github.com/seoforge/seoforge/internal/repo/filecount-repo"
	ledgerrepo "github.com/seoforge/seoforge/internal/repo/ledger-repo"
	orderrepo "github.com/seoforge/seoforge/internal/repo/order-repo"
	pricingrepo "github.com/seoforge/seoforge/internal/repo/pricing-repo"
	userrepo "github.com/seoforge/seoforge/internal/repo/user-repo"
	"github.com/seoforge/seoforge/internal/service/authservice"
	"github.com/seoforge/seoforge/internal/service/enrichservice"
	"github.com/seoforge/seoforge/internal/service/ledgerservice"
	"github.com/seoforge/seoforge/internal/service/paymentservice"
	"github.com/seoforge/seoforge/internal/service/pricingservice"
)

type Repositories struct {
	UserRepo      authservice.Repo
	LedgerRepo    ledgerservice.Repo
	OrderRepo     paymentservice.OrderRepo
	PricingRepo   pricingservice.Repo
	CostsRepo     enrichservice.CostsRepo
	FileCountRepo enrichservice.FileCountRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	ledgerRepo := ledgerrepo.New(conn, txManager)
	orderRepo := orderrepo.New(conn, txManager)
	pricingRepo := pricingrepo.New(conn)
	costsRepo := costsrepo.New(conn)
	fileCountRepo := filecountrepo.New(conn)

	return &Repositories{
		UserRepo:      userRepo,
		LedgerRepo:    ledgerRepo,
		OrderRepo:     orderRepo,
		PricingRepo:   pricingRepo,
		CostsRepo:     costsRepo,
		FileCountRepo: fileCountRepo,
	}
}
