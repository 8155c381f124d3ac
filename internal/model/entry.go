package model

import (
	"time"

	"gorm.io/gorm"
)

// FoodEntry — запись о съеденном продукте. User и Food хранятся как снимки
// на момент записи, поэтому последующие правки каталога историю не меняют.
type FoodEntry struct {
	ID int64 `gorm:"primaryKey;autoIncrement:false" json:"id"`

	// Денормализованные поля снимка для фильтрации
	UserID   int64  `gorm:"not null;index" json:"-"`
	Username string `gorm:"not null;index" json:"-"`

	User User `gorm:"column:user_snapshot;serializer:json;not null" json:"user"`
	Food Food `gorm:"column:food_snapshot;serializer:json;not null" json:"food"`

	DateAdded      time.Time `gorm:"not null" json:"date_added"`
	NumberServings float64   `gorm:"not null" json:"number_servings"`
}

// TotalCalories вычисляется из снимка продукта и не хранится.
func (e *FoodEntry) TotalCalories() float64 {
	return e.NumberServings * float64(e.Food.KcalPerServing)
}

// BeforeSave синхронизирует денормализованные поля со снимком пользователя.
func (e *FoodEntry) BeforeSave(tx *gorm.DB) error {
	e.UserID = e.User.ID
	e.Username = e.User.Username
	return nil
}
