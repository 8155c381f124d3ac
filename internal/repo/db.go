package repo

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/khalilrez/food-log-api/internal/model"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// MemoryDSN возвращает DSN отдельной in-memory базы SQLite.
// Каждый вызов даёт новую базу: данные живут, пока открыт пул.
func MemoryDSN() string {
	return fmt.Sprintf("file:foodlog-%s?mode=memory&cache=shared", uuid.NewString())
}

// isPostgresDSN определяет драйвер по строке подключения.
func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// DescribeDSN — безопасное для логов описание базы: драйвер и адрес без учётных данных.
func DescribeDSN(dsn string) string {
	switch {
	case dsn == "":
		return "sqlite (in-memory)"
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		u, err := url.Parse(dsn)
		if err != nil {
			return "postgres"
		}
		return "postgres://" + u.Host + u.Path
	case isPostgresDSN(dsn):
		// key=value: оставляем только host и dbname
		parts := []string{"postgres"}
		for _, kv := range strings.Fields(dsn) {
			if strings.HasPrefix(kv, "host=") || strings.HasPrefix(kv, "dbname=") {
				parts = append(parts, kv)
			}
		}
		return strings.Join(parts, " ")
	default:
		return "sqlite " + strings.SplitN(dsn, "?", 2)[0]
	}
}

// InitDB открывает базу и применяет миграции моделей.
// Пустой DSN — in-memory SQLite (modernc.org/sqlite, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	var (
		db  *gorm.DB
		err error
	)
	if isPostgresDSN(dsn) {
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	} else {
		if dsn == "" {
			dsn = MemoryDSN()
		}
		db, err = gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if !isPostgresDSN(dsn) {
		// SQLite: одно соединение, иначе in-memory база "теряется" и ловим SQLITE_BUSY
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Food{}, &model.FoodEntry{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}
