package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/khalilrez/food-log-api/internal/model"
	"github.com/khalilrez/food-log-api/internal/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrEntryExists — id записи уже занят; для замены есть Update.
var ErrEntryExists = fmt.Errorf("food entry already logged, use an update request: %w", ErrConflict)

// EntryService — журнал приёмов пищи с суточным лимитом калорий.
type EntryService struct {
	repo   repo.EntryRepository
	logger *zap.SugaredLogger
	locks  *keyedMutex
	now    func() time.Time
}

func NewEntryService(r repo.EntryRepository, logger *zap.SugaredLogger) *EntryService {
	return &EntryService{repo: r, logger: logger, locks: newKeyedMutex(), now: time.Now}
}

// Create добавляет запись, если сумма калорий по снимку пользователя
// вместе с новой записью не превышает его max_daily_calories.
// Проверка и вставка выполняются под блокировкой по entry.User.ID.
func (s *EntryService) Create(ctx context.Context, entry model.FoodEntry, requester *model.User) (*model.FoodEntry, error) {
	if requester == nil {
		return nil, ErrUnauthorized
	}
	if err := validateEntry(entry); err != nil {
		return nil, err
	}
	entry.User.Password = ""

	unlock := s.locks.Lock(entry.User.ID)
	defer unlock()

	exists, err := s.repo.EntryExists(ctx, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("check entry %d: %w", entry.ID, err)
	}
	if exists {
		return nil, ErrEntryExists
	}

	total, err := s.totalCalories(ctx, entry.User.ID)
	if err != nil {
		return nil, err
	}
	if total+entry.TotalCalories() > float64(entry.User.MaxDailyCalories) {
		s.logger.Infow("Entry rejected: caloric allowance",
			"entry_id", entry.ID,
			"user_id", entry.User.ID,
			"requested_by", requester.Username,
			"total", total,
			"add", entry.TotalCalories(),
			"max", entry.User.MaxDailyCalories,
		)
		return nil, fmt.Errorf("cannot add more food than daily caloric allowance = %d kcal / day: %w",
			entry.User.MaxDailyCalories, ErrQuotaExceeded)
	}

	if entry.DateAdded.IsZero() {
		entry.DateAdded = s.now()
	}
	created, err := s.repo.CreateIfAbsent(ctx, &entry)
	if err != nil {
		return nil, fmt.Errorf("save entry %d: %w", entry.ID, err)
	}
	// id заняли параллельно для другого пользователя
	if !created {
		return nil, ErrEntryExists
	}

	s.logger.Infow("Entry created", "entry_id", entry.ID, "user_id", entry.User.ID, "requested_by", requester.Username)
	return &entry, nil
}

// ListByUser возвращает записи, чей снимок пользователя имеет данный id.
func (s *EntryService) ListByUser(ctx context.Context, userID int64) ([]model.FoodEntry, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// Update заменяет запись целиком. Лимит калорий повторно не проверяется.
func (s *EntryService) Update(ctx context.Context, id int64, entry model.FoodEntry, requester *model.User) (*model.FoodEntry, error) {
	if requester == nil {
		return nil, ErrUnauthorized
	}
	if err := validateEntry(entry); err != nil {
		return nil, err
	}
	entry.ID = id
	entry.User.Password = ""
	if entry.DateAdded.IsZero() {
		entry.DateAdded = s.now()
	}
	if err := s.repo.UpdateEntry(ctx, &entry); err != nil {
		return nil, entryErr(id, err)
	}
	s.logger.Infow("Entry updated", "entry_id", id, "requested_by", requester.Username)
	return &entry, nil
}

func (s *EntryService) Delete(ctx context.Context, id int64, requester *model.User) error {
	if requester == nil {
		return ErrUnauthorized
	}
	if err := s.repo.DeleteEntry(ctx, id); err != nil {
		return entryErr(id, err)
	}
	s.logger.Infow("Entry deleted", "entry_id", id, "requested_by", requester.Username)
	return nil
}

func (s *EntryService) totalCalories(ctx context.Context, userID int64) (float64, error) {
	entries, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("list entries of user %d: %w", userID, err)
	}
	var total float64
	for i := range entries {
		total += entries[i].TotalCalories()
	}
	return total, nil
}

func validateEntry(e model.FoodEntry) error {
	if e.NumberServings <= 0 {
		return fmt.Errorf("number_servings must be positive: %w", ErrValidation)
	}
	if e.Food.KcalPerServing < 0 {
		return fmt.Errorf("kcal_per_serving must not be negative: %w", ErrValidation)
	}
	return nil
}

func entryErr(id int64, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("food entry %d: %w", id, ErrNotFound)
	}
	return fmt.Errorf("food entry %d: %w", id, err)
}
