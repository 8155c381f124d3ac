package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/khalilrez/food-log-api/internal/middleware"
	"github.com/khalilrez/food-log-api/internal/service"
	"go.uber.org/zap"
)

// EntryHandler — журнал приёмов пищи.
type EntryHandler struct {
	EntryService *service.EntryService
	Logger       *zap.SugaredLogger
}

func NewEntryHandler(entries *service.EntryService, logger *zap.SugaredLogger) *EntryHandler {
	return &EntryHandler{EntryService: entries, Logger: logger}
}

// Create добавляет запись; снимок пользователя с вызывающим не сверяется.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	requester, _ := middleware.GetUserFromContext(r.Context())

	var req EntryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.Logger.Warnw("CreateEntry: invalid request body", "error", err)
		respondServiceError(w, r, err, h.Logger)
		return
	}

	entry, err := h.EntryService.Create(r.Context(), req.toModel(), requester)
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	respondWithJSON(w, http.StatusCreated, entryResponse(entry), h.Logger)
}

// ListByUser — записи по id пользователя из снимка, без аутентификации.
func (h *EntryHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "user_id")
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	entries, err := h.EntryService.ListByUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	resp := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, entryResponse(&entries[i]))
	}
	respondWithJSON(w, http.StatusOK, resp, h.Logger)
}

// Page — HTML-страница журнала пользователя.
func (h *EntryHandler) Page(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	page, err := h.EntryService.RenderHTML(r.Context(), username)
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(page)); err != nil {
		h.Logger.Warnw("Page: write failed", "error", err)
	}
}

func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	requester, _ := middleware.GetUserFromContext(r.Context())
	id, err := pathInt64(r, "entry_id")
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	var req EntryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	entry, err := h.EntryService.Update(r.Context(), id, req.toModel(), requester)
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	respondWithJSON(w, http.StatusOK, entryResponse(entry), h.Logger)
}

func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester, _ := middleware.GetUserFromContext(r.Context())
	id, err := pathInt64(r, "entry_id")
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	if err := h.EntryService.Delete(r.Context(), id, requester); err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	respondWithJSON(w, http.StatusOK, okResponse{OK: true}, h.Logger)
}
