package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/khalilrez/food-log-api/internal/config"
	"github.com/khalilrez/food-log-api/internal/handlers"
	"github.com/khalilrez/food-log-api/internal/middleware"
	"github.com/khalilrez/food-log-api/internal/repo"
	"github.com/khalilrez/food-log-api/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userService := service.NewUserService(repo.NewUserRepository(gormDB), cfg.BcryptCost)
	tokenService := service.NewTokenService(cfg.AuthSecret, cfg.TokenTTL, userService)
	foodService := service.NewFoodService(repo.NewFoodRepository(gormDB))
	entryService := service.NewEntryService(repo.NewEntryRepository(gormDB), sugar)

	h := handlers.NewHandler(userService, tokenService, foodService, entryService, sugar)

	addr := cfg.BaseURL

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"Database", repo.DescribeDSN(cfg.DatabaseDSN),
		"TokenTTL", cfg.TokenTTL,
		"BcryptCost", cfg.BcryptCost,
	)

	srv := &http.Server{Addr: addr, Handler: h.Router}
	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Warnw("Shutdown failed", "error", err)
		}
	}()

	sugar.Infow("Starting server", "addr", addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
	sugar.Infow("Server stopped")
}
