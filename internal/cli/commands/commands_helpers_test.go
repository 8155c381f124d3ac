package commands

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/khalilrez/food-log-api/internal/config"
	"github.com/khalilrez/food-log-api/internal/handlers"
	"github.com/khalilrez/food-log-api/internal/repo"
	"github.com/khalilrez/food-log-api/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты (токен/логин) создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// newLiveServer поднимает настоящий сервер журнала поверх in-memory SQLite
// и возвращает конфиг клиента, указывающий на него.
func newLiveServer(t *testing.T) *config.Config {
	t.Helper()
	dir := withTempConfig(t)

	db, err := repo.InitDB("")
	require.NoError(t, err)
	logger := zap.NewNop().Sugar()
	users := service.NewUserService(repo.NewUserRepository(db), bcrypt.MinCost)
	tokens := service.NewTokenService("cli-test-secret", time.Minute, users)
	h := handlers.NewHandler(users, tokens,
		service.NewFoodService(repo.NewFoodRepository(db)),
		service.NewEntryService(repo.NewEntryRepository(db), logger),
		logger,
	)
	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)

	return &config.Config{ServerURL: ts.URL, TokenFile: filepath.Join(dir, "FoodLog", "auth_token")}
}
