package handlers

import (
	"net/http"

	_ "github.com/seoforge/seoforge/docs"
	authhandlers "github.com/seoforge/seoforge/internal/handlers/auth"
	costshandlers "github.com/seoforge/seoforge/internal/handlers/costs"
	enrichhandlers "github.com/seoforge/seoforge/internal/handlers/enrich"
	ledgerhandlers "github.com/seoforge/seoforge/internal/handlers/ledger"
	paymenthandlers "github.com/seoforge/seoforge/internal/handlers/payments"
	pricinghandlers "github.com/seoforge/seoforge/internal/handlers/pricing"
	"github.com/seoforge/seoforge/internal/service"
	"github.com/seoforge/seoforge/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetLedger(w http.ResponseWriter, r *http.Request)
	Consume(w http.ResponseWriter, r *http.Request)
	Increment(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Checkout(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Fulfill(w http.ResponseWriter, r *http.Request)
	Wait(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
}

type PricingHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CostsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type EnrichHandler interface {
	SearchImages(w http.ResponseWriter, r *http.Request)
	GenerateSEO(w http.ResponseWriter, r *http.Request)
	FileCount(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	LedgerHandler  LedgerHandler
	PaymentHandler PaymentHandler
	PricingHandler PricingHandler
	CostsHandler   CostsHandler
	EnrichHandler  EnrichHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		LedgerHandler:  ledgerhandlers.New(s.LedgerService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		PricingHandler: pricinghandlers.New(s.PricingService),
		CostsHandler:   costshandlers.New(s.CostsService),
		EnrichHandler:  enrichhandlers.New(s.EnrichService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/ledger", func(r chi.Router) {
				r.Get("/", h.LedgerHandler.GetLedger)
				r.Post("/consume", h.LedgerHandler.Consume)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Post("/increment", h.LedgerHandler.Increment)
				})
			})
		})
	})
	r.Route("/api/payments", func(r chi.Router) {
		// The provider pushes here; state is re-read, never trusted.
		r.Post("/webhook", h.PaymentHandler.Webhook)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/checkout", h.PaymentHandler.Checkout)
			r.Get("/status/{id}", h.PaymentHandler.Status)
			r.Post("/fulfill/{id}", h.PaymentHandler.Fulfill)
			r.Post("/wait/{id}", h.PaymentHandler.Wait)
		})
	})
	r.Route("/api/pricing", func(r chi.Router) {
		r.Get("/", h.PricingHandler.List)
		r.Get("/{id}", h.PricingHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
			r.Post("/", h.PricingHandler.Create)
			r.Put("/{id}", h.PricingHandler.Update)
			r.Delete("/{id}", h.PricingHandler.Delete)
		})
	})
	r.Route("/api/costs", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
		r.Get("/", h.CostsHandler.Get)
		r.Post("/", h.CostsHandler.Create)
		r.Put("/", h.CostsHandler.Update)
	})
	r.Route("/api/enrich", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/images", h.EnrichHandler.SearchImages)
		r.Post("/seo", h.EnrichHandler.GenerateSEO)
		r.Get("/files", h.EnrichHandler.FileCount)
	})

	return r
}
