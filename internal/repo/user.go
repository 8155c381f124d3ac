package repo

import (
	"context"

	"github.com/khalilrez/food-log-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository контракт хранилища учётных записей.
type UserRepository interface {
	// UpsertUser сохраняет пользователя по логину; существующая запись перезаписывается.
	UpsertUser(ctx context.Context, user *model.User) error
	// GetUserByUsername возвращает gorm.ErrRecordNotFound, если логина нет.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) UpsertUser(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		UpdateAll: true,
	}).Create(user).Error
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
