package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/khalilrez/food-log-api/internal/model"
	"github.com/khalilrez/food-log-api/internal/repo"
	"gorm.io/gorm"
)

// FoodService — каталог продуктов.
type FoodService struct {
	repo repo.FoodRepository
}

func NewFoodService(r repo.FoodRepository) *FoodService {
	return &FoodService{repo: r}
}

// Create сохраняет продукт. Совпадающий id перезаписывается без ошибки.
func (s *FoodService) Create(ctx context.Context, food model.Food) (*model.Food, error) {
	if err := s.repo.UpsertFood(ctx, &food); err != nil {
		return nil, fmt.Errorf("save food %d: %w", food.ID, err)
	}
	return &food, nil
}

func (s *FoodService) Get(ctx context.Context, id int64) (*model.Food, error) {
	f, err := s.repo.GetFood(ctx, id)
	if err != nil {
		return nil, foodErr(id, err)
	}
	return f, nil
}

// List возвращает весь каталог.
func (s *FoodService) List(ctx context.Context) ([]model.Food, error) {
	return s.repo.ListFoods(ctx)
}

// Update заменяет продукт целиком; id берётся из пути.
func (s *FoodService) Update(ctx context.Context, id int64, food model.Food) (*model.Food, error) {
	food.ID = id
	if err := s.repo.UpdateFood(ctx, &food); err != nil {
		return nil, foodErr(id, err)
	}
	return &food, nil
}

func (s *FoodService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteFood(ctx, id); err != nil {
		return foodErr(id, err)
	}
	return nil
}

func foodErr(id int64, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("food %d: %w", id, ErrNotFound)
	}
	return fmt.Errorf("food %d: %w", id, err)
}
