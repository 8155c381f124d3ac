package handlers

import (
	"net/http"

	"github.com/khalilrez/food-log-api/internal/service"
	"go.uber.org/zap"
)

// FoodHandler — CRUD каталога продуктов.
type FoodHandler struct {
	FoodService *service.FoodService
	Logger      *zap.SugaredLogger
}

func NewFoodHandler(foods *service.FoodService, logger *zap.SugaredLogger) *FoodHandler {
	return &FoodHandler{FoodService: foods, Logger: logger}
}

func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req FoodRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	food, err := h.FoodService.Create(r.Context(), req.toModel())
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	respondWithJSON(w, http.StatusCreated, food, h.Logger)
}

func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	foods, err := h.FoodService.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	respondWithJSON(w, http.StatusOK, foods, h.Logger)
}

func (h *FoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "food_id")
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	food, err := h.FoodService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	respondWithJSON(w, http.StatusOK, food, h.Logger)
}

func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "food_id")
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	var req FoodRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	food, err := h.FoodService.Update(r.Context(), id, req.toModel())
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	respondWithJSON(w, http.StatusOK, food, h.Logger)
}

func (h *FoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "food_id")
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	if err := h.FoodService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	respondWithJSON(w, http.StatusOK, okResponse{OK: true}, h.Logger)
}
