package repo

import (
	"context"

	"github.com/khalilrez/food-log-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FoodRepository контракт доступа к каталогу продуктов.
// Отсутствующий id всегда даёт gorm.ErrRecordNotFound.
type FoodRepository interface {
	UpsertFood(ctx context.Context, food *model.Food) error
	GetFood(ctx context.Context, id int64) (*model.Food, error)
	ListFoods(ctx context.Context) ([]model.Food, error)
	UpdateFood(ctx context.Context, food *model.Food) error
	DeleteFood(ctx context.Context, id int64) error
}

type foodRepo struct {
	db *gorm.DB
}

// NewFoodRepository создаёт реализацию репозитория для Food.
func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepo{db: db}
}

// UpsertFood вставляет продукт; при совпадении id запись перезаписывается целиком.
func (r *foodRepo) UpsertFood(ctx context.Context, food *model.Food) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(food).Error
}

func (r *foodRepo) GetFood(ctx context.Context, id int64) (*model.Food, error) {
	var f model.Food
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *foodRepo) ListFoods(ctx context.Context) ([]model.Food, error) {
	foods := []model.Food{}
	if err := r.db.WithContext(ctx).Order("id").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// UpdateFood заменяет существующую запись целиком.
// Save не годится: при id = 0 gorm идёт в INSERT без конфликта.
func (r *foodRepo) UpdateFood(ctx context.Context, food *model.Food) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&model.Food{}, "id = ?", food.ID).Error; err != nil {
			return err
		}
		return replaceByID(tx, food)
	})
}

// replaceByID перезаписывает все колонки строки с тем же id.
// Через Create, чтобы отработали хуки BeforeSave.
func replaceByID(tx *gorm.DB, value any) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(value).Error
}

func (r *foodRepo) DeleteFood(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Food{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
