package handlers

import (
	"time"

	"github.com/khalilrez/food-log-api/internal/model"
)

// UserRequest — тело /create_user.
type UserRequest struct {
	ID               *int64 `json:"id" validate:"required"`
	Username         string `json:"username" validate:"required"`
	Password         string `json:"password" validate:"required"`
	MaxDailyCalories *int   `json:"max_daily_calories" validate:"omitempty,gt=0"`
}

func (u UserRequest) toModel() model.User {
	m := model.User{ID: *u.ID, Username: u.Username, MaxDailyCalories: model.DefaultMaxDailyCalories}
	if u.MaxDailyCalories != nil {
		m.MaxDailyCalories = *u.MaxDailyCalories
	}
	return m
}

// FoodRequest — продукт в теле запроса; поля-указатели обязательны, но допускают ноль.
type FoodRequest struct {
	ID             *int64   `json:"id" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	ServingSize    string   `json:"serving_size" validate:"required"`
	KcalPerServing *int     `json:"kcal_per_serving" validate:"required,gte=0"`
	ProteinGrams   *float64 `json:"protein_grams" validate:"required,gte=0"`
	FibreGrams     float64  `json:"fibre_grams" validate:"gte=0"`
}

func (f FoodRequest) toModel() model.Food {
	return model.Food{
		ID:             *f.ID,
		Name:           f.Name,
		ServingSize:    f.ServingSize,
		KcalPerServing: *f.KcalPerServing,
		ProteinGrams:   *f.ProteinGrams,
		FibreGrams:     f.FibreGrams,
	}
}

// EntryUser — снимок пользователя внутри записи. Пароль, если прислан, отбрасывается.
type EntryUser struct {
	ID               *int64 `json:"id" validate:"required"`
	Username         string `json:"username" validate:"required"`
	Password         string `json:"password,omitempty"`
	MaxDailyCalories *int   `json:"max_daily_calories" validate:"omitempty,gt=0"`
}

// EntryRequest — тело POST / и PUT /{entry_id}.
type EntryRequest struct {
	ID             *int64       `json:"id" validate:"required"`
	User           *EntryUser   `json:"user" validate:"required"`
	Food           *FoodRequest `json:"food" validate:"required"`
	DateAdded      *time.Time   `json:"date_added,omitempty"`
	NumberServings float64      `json:"number_servings" validate:"gt=0"`
}

func (e EntryRequest) toModel() model.FoodEntry {
	u := model.User{ID: *e.User.ID, Username: e.User.Username, MaxDailyCalories: model.DefaultMaxDailyCalories}
	if e.User.MaxDailyCalories != nil {
		u.MaxDailyCalories = *e.User.MaxDailyCalories
	}
	m := model.FoodEntry{
		ID:             *e.ID,
		User:           u,
		Food:           e.Food.toModel(),
		NumberServings: e.NumberServings,
	}
	if e.DateAdded != nil {
		m.DateAdded = *e.DateAdded
	}
	return m
}

// EntryResponse — запись журнала с вычисленным total_calories.
type EntryResponse struct {
	ID             int64      `json:"id"`
	User           model.User `json:"user"`
	Food           model.Food `json:"food"`
	DateAdded      time.Time  `json:"date_added"`
	NumberServings float64    `json:"number_servings"`
	TotalCalories  float64    `json:"total_calories"`
}

func entryResponse(e *model.FoodEntry) EntryResponse {
	return EntryResponse{
		ID:             e.ID,
		User:           e.User,
		Food:           e.Food,
		DateAdded:      e.DateAdded,
		NumberServings: e.NumberServings,
		TotalCalories:  e.TotalCalories(),
	}
}
