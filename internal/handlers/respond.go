package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/khalilrez/food-log-api/internal/middleware"
	"github.com/khalilrez/food-log-api/internal/service"
	"go.uber.org/zap"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// errorResponse — тело ответа с ошибкой
type errorResponse struct {
	Detail string `json:"detail"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// respondWithJSON отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload any, logger *zap.SugaredLogger) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Errorw("Failed to marshal JSON response", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.Warnw("Failed to write HTTP response", "error", err)
	}
}

func respondWithError(w http.ResponseWriter, code int, detail string, logger *zap.SugaredLogger) {
	respondWithJSON(w, code, errorResponse{Detail: detail}, logger)
}

// respondServiceError маппит ошибки сервисов в HTTP-статусы.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, logger *zap.SugaredLogger) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		middleware.WriteUnauthorized(w)
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error(), logger)
	case errors.Is(err, service.ErrConflict),
		errors.Is(err, service.ErrQuotaExceeded),
		errors.Is(err, service.ErrValidation):
		respondWithError(w, http.StatusBadRequest, err.Error(), logger)
	default:
		logger.Errorw("Service error", "method", r.Method, "uri", r.RequestURI, "error", err)
		respondWithError(w, http.StatusInternalServerError, "internal error", logger)
	}
}

// decodeAndValidate читает JSON-тело в dst и проверяет теги validate.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty request body: %w", service.ErrValidation)
		}
		return fmt.Errorf("invalid JSON: %v: %w", err, service.ErrValidation)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%v: %w", err, service.ErrValidation)
	}
	return nil
}

// pathInt64 разбирает целочисленный параметр пути.
func pathInt64(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, service.ErrValidation)
	}
	return v, nil
}
