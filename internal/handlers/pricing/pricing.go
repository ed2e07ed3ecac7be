package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/seoforge/seoforge/internal/domain"
	"github.com/seoforge/seoforge/internal/dto"
	"github.com/seoforge/seoforge/internal/service/pricingservice"
	"github.com/seoforge/seoforge/pkg/utils"
)

type Service interface {
	CreatePlan(ctx context.Context, plan *domain.PricingPlan) (*domain.PricingPlan, error)
	GetPlans(ctx context.Context) ([]domain.PricingPlan, error)
	GetPlan(ctx context.Context, id int) (*domain.PricingPlan, error)
	UpdatePlan(ctx context.Context, plan *domain.PricingPlan) (*domain.PricingPlan, error)
	DeletePlan(ctx context.Context, id int) error
}

type PricingHandler struct {
	pricingService Service
}

func New(pricingService Service) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
	}
}

func planResponse(p *domain.PricingPlan) dto.PricingResponseDTO {
	return dto.PricingResponseDTO{
		ID:               p.ID,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Tokens:           p.Tokens,
		Amount:           p.Amount,
		Features:         p.Features,
	}
}

// List godoc
//
//	@Summary		List pricing plans
//	@Description	Return every purchasable token pack. Public endpoint.
//	@Tags			Pricing
//	@Produce		json
//	@Success		200	{array}		dto.PricingResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/pricing [get]
func (h *PricingHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.pricingService.GetPlans(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PricingResponseDTO, 0, len(plans))
	for i := range plans {
		resp = append(resp, planResponse(&plans[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary		Get one pricing plan
//	@Tags			Pricing
//	@Produce		json
//	@Param			id	path		int	true	"Plan id"
//	@Success		200	{object}	dto.PricingResponseDTO
//	@Failure		404	{object}	utils.Response	"Plan not found"
//	@Router			/api/pricing/{id} [get]
func (h *PricingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid plan id")
		return
	}
	plan, err := h.pricingService.GetPlan(r.Context(), id)
	if err != nil {
		if errors.Is(err, pricingservice.ErrPlanNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Pricing plan not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, planResponse(plan))
}

// Create godoc
//
//	@Summary		Create a pricing plan
//	@Description	Admin only.
//	@Tags			Pricing
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PricingRequestDTO	true	"Plan payload"
//	@Success		200		{object}	dto.PricingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid plan"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Router			/api/pricing [post]
func (h *PricingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PricingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	plan, err := h.pricingService.CreatePlan(r.Context(), &domain.PricingPlan{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Tokens:           req.Tokens,
		Amount:           req.Amount,
		Features:         req.Features,
	})
	if err != nil {
		if errors.Is(err, pricingservice.ErrInvalidPlan) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, planResponse(plan))
}

// Update godoc
//
//	@Summary		Update a pricing plan
//	@Description	Admin only.
//	@Tags			Pricing
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Plan id"
//	@Param			request	body		dto.PricingRequestDTO	true	"Plan payload"
//	@Success		200		{object}	dto.PricingResponseDTO
//	@Failure		404		{object}	utils.Response	"Plan not found"
//	@Router			/api/pricing/{id} [put]
func (h *PricingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid plan id")
		return
	}
	var req dto.PricingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	plan, err := h.pricingService.UpdatePlan(r.Context(), &domain.PricingPlan{
		ID:               id,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Tokens:           req.Tokens,
		Amount:           req.Amount,
		Features:         req.Features,
	})
	if err != nil {
		switch {
		case errors.Is(err, pricingservice.ErrPlanNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Pricing plan not found")
		case errors.Is(err, pricingservice.ErrInvalidPlan):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, planResponse(plan))
}

// Delete godoc
//
//	@Summary		Delete a pricing plan
//	@Description	Admin only.
//	@Tags			Pricing
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Plan id"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	utils.Response	"Plan not found"
//	@Router			/api/pricing/{id} [delete]
func (h *PricingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid plan id")
		return
	}
	if err := h.pricingService.DeletePlan(r.Context(), id); err != nil {
		if errors.Is(err, pricingservice.ErrPlanNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Pricing plan not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
