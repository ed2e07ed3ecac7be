package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/seoforge/seoforge/internal/ai"
	"github.com/seoforge/seoforge/internal/domain"
	"github.com/seoforge/seoforge/internal/dto"
	"github.com/seoforge/seoforge/internal/search"
	"github.com/seoforge/seoforge/internal/service/enrichservice"
	"github.com/seoforge/seoforge/internal/service/ledgerservice"
	"github.com/seoforge/seoforge/pkg/auth"
	"github.com/seoforge/seoforge/pkg/utils"
)

type Service interface {
	SearchImages(ctx context.Context, userID int, query string, count int) ([]search.Image, int64, error)
	GenerateSEO(ctx context.Context, userID int, products []ai.Product, targets []string, language string) ([]ai.SEOResult, int64, error)
	GetFileCount(ctx context.Context, userID int) (*domain.FileCount, error)
}

type EnrichHandler struct {
	enrichService Service
}

func New(enrichService Service) *EnrichHandler {
	return &EnrichHandler{
		enrichService: enrichService,
	}
}

func respondEnrichError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, enrichservice.ErrInvalidEnrichRequest):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, enrichservice.ErrCostsNotConfigured):
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
	case errors.Is(err, ledgerservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, search.ErrSearchUnavailable), errors.Is(err, ai.ErrGenerationUnavailable):
		utils.RespondWithError(w, http.StatusBadGateway, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// SearchImages godoc
//
//	@Summary		Search product images
//	@Description	Debit the token cost for an image search and return candidate images for the query.
//	@Tags			Enrichment
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ImageSearchRequestDTO	true	"Search payload"
//	@Success		200		{object}	dto.ImageSearchResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		502		{object}	utils.Response	"Search provider unavailable"
//	@Router			/api/enrich/images [post]
func (h *EnrichHandler) SearchImages(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ImageSearchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	images, cost, err := h.enrichService.SearchImages(r.Context(), userID, req.Query, req.Count)
	if err != nil {
		respondEnrichError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ImageSearchResponseDTO{
		Images:     images,
		TokensUsed: cost,
	})
}

// GenerateSEO godoc
//
//	@Summary		Generate SEO texts for products
//	@Description	Debit the token cost for a batch of products and generate the requested SEO fields.
//	@Tags			Enrichment
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SEORequestDTO	true	"Generation payload"
//	@Success		200		{object}	dto.SEOResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		502		{object}	utils.Response	"Generation provider unavailable"
//	@Router			/api/enrich/seo [post]
func (h *EnrichHandler) GenerateSEO(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SEORequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	results, cost, err := h.enrichService.GenerateSEO(r.Context(), userID, req.Products, req.Targets, req.Language)
	if err != nil {
		respondEnrichError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SEOResponseDTO{
		Results:    results,
		TokensUsed: cost,
	})
}

// FileCount godoc
//
//	@Summary		Get processed-file counter
//	@Tags			Enrichment
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.FileCountResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/enrich/files [get]
func (h *EnrichHandler) FileCount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	fc, err := h.enrichService.GetFileCount(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FileCountResponseDTO{
		UserID: fc.UserID,
		Count:  fc.Count,
	})
}
