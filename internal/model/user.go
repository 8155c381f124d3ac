package model

// DefaultMaxDailyCalories суточный лимит калорий, если пользователь не задал свой.
const DefaultMaxDailyCalories = 2250

// User — учётная запись. Логин (username) уникален и является ключом хранения.
type User struct {
	ID               int64  `gorm:"not null;index" json:"id"`
	Username         string `gorm:"primaryKey" json:"username"`
	Password         string `gorm:"not null" json:"-"` // только bcrypt-хеш
	MaxDailyCalories int    `gorm:"not null" json:"max_daily_calories"`
}
