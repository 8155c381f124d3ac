package repo

import (
	"context"

	"github.com/khalilrez/food-log-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryRepository контракт доступа к журналу приёмов пищи.
type EntryRepository interface {
	// EntryExists сообщает, занят ли id.
	EntryExists(ctx context.Context, id int64) (bool, error)
	// CreateIfAbsent пытается создать запись. Если id занят — ничего не делает.
	// Возвращает created=true если запись была создана в этой операции.
	CreateIfAbsent(ctx context.Context, entry *model.FoodEntry) (created bool, err error)
	// ListByUserID возвращает записи, у которых снимок пользователя имеет данный id.
	ListByUserID(ctx context.Context, userID int64) ([]model.FoodEntry, error)
	// ListByUsername возвращает записи по логину из снимка, по возрастанию date_added.
	ListByUsername(ctx context.Context, username string) ([]model.FoodEntry, error)
	// UpdateEntry заменяет запись целиком; gorm.ErrRecordNotFound если её нет.
	UpdateEntry(ctx context.Context, entry *model.FoodEntry) error
	// DeleteEntry удаляет запись; gorm.ErrRecordNotFound если её нет.
	DeleteEntry(ctx context.Context, id int64) error
}

type entryRepo struct {
	db *gorm.DB
}

// NewEntryRepository создаёт реализацию репозитория для FoodEntry.
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepo{db: db}
}

func (r *entryRepo) EntryExists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.FoodEntry{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *entryRepo) CreateIfAbsent(ctx context.Context, entry *model.FoodEntry) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(entry)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *entryRepo) ListByUserID(ctx context.Context, userID int64) ([]model.FoodEntry, error) {
	entries := []model.FoodEntry{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepo) ListByUsername(ctx context.Context, username string) ([]model.FoodEntry, error) {
	entries := []model.FoodEntry{}
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("date_added").Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepo) UpdateEntry(ctx context.Context, entry *model.FoodEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&model.FoodEntry{}, "id = ?", entry.ID).Error; err != nil {
			return err
		}
		return replaceByID(tx, entry)
	})
}

func (r *entryRepo) DeleteEntry(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.FoodEntry{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
