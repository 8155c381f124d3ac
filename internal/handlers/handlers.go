package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/khalilrez/food-log-api/internal/middleware"
	"github.com/khalilrez/food-log-api/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	tokenService *service.TokenService,
	foodService *service.FoodService,
	entryService *service.EntryService,
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(tokenService))

	// Handlers
	userHandler := NewUserHandler(userService, tokenService, logger)
	foodHandler := NewFoodHandler(foodService, logger)
	entryHandler := NewEntryHandler(entryService, logger)

	// User routes
	r.Post("/create_user", userHandler.CreateUser)
	r.Post("/token", userHandler.Token)

	// Food catalog routes
	r.Post("/food", foodHandler.Create)
	r.Get("/food/all", foodHandler.List)
	r.Get("/food/{food_id}", foodHandler.Get)
	r.Put("/food/{food_id}", foodHandler.Update)
	r.Delete("/food/{food_id}", foodHandler.Delete)

	// Entry routes: чтение открытое, изменения только с bearer-токеном
	r.Get("/users/{user_id}", entryHandler.ListByUser)
	r.Get("/{username}", entryHandler.Page)
	r.With(middleware.RequireAuth).Post("/", entryHandler.Create)
	r.With(middleware.RequireAuth).Put("/{entry_id}", entryHandler.Update)
	r.With(middleware.RequireAuth).Delete("/{entry_id}", entryHandler.Delete)

	return &Handler{Router: r}
}
