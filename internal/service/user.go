package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/khalilrez/food-log-api/internal/model"
	"github.com/khalilrez/food-log-api/internal/repo"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService хранит учётные записи и проверяет пароли.
type UserService struct {
	repo repo.UserRepository
	cost int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewUserService создаёт сервис; cost — стоимость bcrypt.
func NewUserService(r repo.UserRepository, cost int) *UserService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &UserService{repo: r, cost: cost}
}

// Register хеширует пароль и сохраняет пользователя по логину.
// Повторная регистрация логина перезаписывает прежнюю запись.
func (s *UserService) Register(ctx context.Context, user model.User, password string) (*model.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrValidation)
	}
	if user.MaxDailyCalories == 0 {
		user.MaxDailyCalories = model.DefaultMaxDailyCalories
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hash)

	if err := s.repo.UpsertUser(ctx, &user); err != nil {
		return nil, fmt.Errorf("save user %q: %w", user.Username, err)
	}
	return &user, nil
}

// Lookup возвращает пользователя или ErrNotFound.
func (s *UserService) Lookup(ctx context.Context, username string) (*model.User, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Verify проверяет логин и пароль. Неизвестный логин и неверный пароль
// неразличимы: оба дают ErrUnauthorized.
func (s *UserService) Verify(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.Lookup(ctx, username)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		// сравниваем с фиктивным хешем, чтобы время ответа не выдавало отсутствие логина
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
		return nil, ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrUnauthorized
	}
	return u, nil
}

func (s *UserService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("food-log-dummy-password"), s.cost)
	})
	return s.dummyHash
}
