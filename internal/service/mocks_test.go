package service

import (
	"context"

	"github.com/khalilrez/food-log-api/internal/model"
	"github.com/khalilrez/food-log-api/internal/repo"
	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) UpsertUser(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// мок для repo.FoodRepository
type mockFoodRepo struct{ mock.Mock }

func (m *mockFoodRepo) UpsertFood(ctx context.Context, food *model.Food) error {
	return m.Called(ctx, food).Error(0)
}

func (m *mockFoodRepo) GetFood(ctx context.Context, id int64) (*model.Food, error) {
	args := m.Called(ctx, id)
	if f, ok := args.Get(0).(*model.Food); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFoodRepo) ListFoods(ctx context.Context) ([]model.Food, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Food); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFoodRepo) UpdateFood(ctx context.Context, food *model.Food) error {
	return m.Called(ctx, food).Error(0)
}

func (m *mockFoodRepo) DeleteFood(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.FoodRepository = (*mockFoodRepo)(nil)

// мок для repo.EntryRepository
type mockEntryRepo struct{ mock.Mock }

func (m *mockEntryRepo) EntryExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockEntryRepo) CreateIfAbsent(ctx context.Context, entry *model.FoodEntry) (bool, error) {
	args := m.Called(ctx, entry)
	return args.Bool(0), args.Error(1)
}

func (m *mockEntryRepo) ListByUserID(ctx context.Context, userID int64) ([]model.FoodEntry, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.FoodEntry); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEntryRepo) ListByUsername(ctx context.Context, username string) ([]model.FoodEntry, error) {
	args := m.Called(ctx, username)
	if v, ok := args.Get(0).([]model.FoodEntry); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEntryRepo) UpdateEntry(ctx context.Context, entry *model.FoodEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockEntryRepo) DeleteEntry(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.EntryRepository = (*mockEntryRepo)(nil)
