package handlers

import (
	"errors"
	"net/http"

	"github.com/khalilrez/food-log-api/internal/middleware"
	"github.com/khalilrez/food-log-api/internal/service"
	"go.uber.org/zap"
)

// UserHandler регистрация и выдача токенов.
type UserHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
	Logger       *zap.SugaredLogger
}

func NewUserHandler(users *service.UserService, tokens *service.TokenService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: users, TokenService: tokens, Logger: logger}
}

// CreateUser регистрирует пользователя; в ответе пароля нет.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.Logger.Warnw("CreateUser: invalid request body", "error", err)
		respondServiceError(w, r, err, h.Logger)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.toModel(), req.Password)
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	h.Logger.Infow("User registered", "username", user.Username, "id", user.ID)
	respondWithJSON(w, http.StatusCreated, user, h.Logger)
}

// Token проверяет username/password из формы и выдаёт bearer-токен.
func (h *UserHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid form", h.Logger)
		return
	}
	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if username == "" || password == "" {
		respondWithError(w, http.StatusBadRequest, "username and password are required", h.Logger)
		return
	}

	user, err := h.UserService.Verify(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			h.Logger.Infow("Token: bad credentials", "username", username)
			middleware.WriteUnauthorized(w)
			return
		}
		respondServiceError(w, r, err, h.Logger)
		return
	}

	token, err := h.TokenService.Issue(user.Username)
	if err != nil {
		respondServiceError(w, r, err, h.Logger)
		return
	}
	respondWithJSON(w, http.StatusOK, token, h.Logger)
}
