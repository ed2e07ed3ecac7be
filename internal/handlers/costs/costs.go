package costs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/seoforge/seoforge/internal/domain"
	"github.com/seoforge/seoforge/internal/dto"
	"github.com/seoforge/seoforge/internal/service/enrichservice"
	"github.com/seoforge/seoforge/pkg/utils"
)

type Service interface {
	GetCosts(ctx context.Context) (*domain.CostTable, error)
	CreateCosts(ctx context.Context, costs *domain.CostTable) (*domain.CostTable, error)
	UpdateCosts(ctx context.Context, costs *domain.CostTable) (*domain.CostTable, error)
}

type CostsHandler struct {
	enrichService Service
}

func New(enrichService Service) *CostsHandler {
	return &CostsHandler{
		enrichService: enrichService,
	}
}

func costsResponse(c *domain.CostTable) dto.CostsResponseDTO {
	return dto.CostsResponseDTO{
		ID:              c.ID,
		PerImageRequest: c.PerImageRequest,
		PerImage:        c.PerImage,
		PerSEOInput:     c.PerSEOInput,
		PerSEOOutput:    c.PerSEOOutput,
	}
}

// Get godoc
//
//	@Summary		Get the cost table
//	@Description	Return the per-action token prices. Admin only.
//	@Tags			Costs
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CostsResponseDTO
//	@Failure		404	{object}	utils.Response	"Cost table not configured"
//	@Router			/api/costs [get]
func (h *CostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	costs, err := h.enrichService.GetCosts(r.Context())
	if err != nil {
		if errors.Is(err, enrichservice.ErrCostsNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, costsResponse(costs))
}

// Create godoc
//
//	@Summary		Create the cost table
//	@Description	One cost table drives the whole deployment; a second create is rejected. Admin only.
//	@Tags			Costs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CostsRequestDTO	true	"Cost table payload"
//	@Success		200		{object}	dto.CostsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid costs"
//	@Failure		409		{object}	utils.Response	"Cost table already exists"
//	@Router			/api/costs [post]
func (h *CostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CostsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	costs := &domain.CostTable{}
	applyCosts(costs, &req)

	created, err := h.enrichService.CreateCosts(r.Context(), costs)
	if err != nil {
		switch {
		case errors.Is(err, enrichservice.ErrCostsAlreadyExist):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, enrichservice.ErrInvalidEnrichRequest):
			utils.RespondWithError(w, http.StatusBadRequest, "Costs must not be negative")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, costsResponse(created))
}

// Update godoc
//
//	@Summary		Update the cost table
//	@Description	Partial update; omitted fields keep their current value. Admin only.
//	@Tags			Costs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CostsRequestDTO	true	"Cost table payload"
//	@Success		200		{object}	dto.CostsResponseDTO
//	@Failure		404		{object}	utils.Response	"Cost table not configured"
//	@Router			/api/costs [put]
func (h *CostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.CostsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	current, err := h.enrichService.GetCosts(r.Context())
	if err != nil {
		if errors.Is(err, enrichservice.ErrCostsNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	applyCosts(current, &req)

	updated, err := h.enrichService.UpdateCosts(r.Context(), current)
	if err != nil {
		switch {
		case errors.Is(err, enrichservice.ErrCostsNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, enrichservice.ErrInvalidEnrichRequest):
			utils.RespondWithError(w, http.StatusBadRequest, "Costs must not be negative")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, costsResponse(updated))
}

func applyCosts(dst *domain.CostTable, req *dto.CostsRequestDTO) {
	if req.PerImageRequest != nil {
		dst.PerImageRequest = *req.PerImageRequest
	}
	if req.PerImage != nil {
		dst.PerImage = *req.PerImage
	}
	if req.PerSEOInput != nil {
		dst.PerSEOInput = *req.PerSEOInput
	}
	if req.PerSEOOutput != nil {
		dst.PerSEOOutput = *req.PerSEOOutput
	}
}
