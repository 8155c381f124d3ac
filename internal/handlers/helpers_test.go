package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/khalilrez/food-log-api/internal/handlers"
	"github.com/khalilrez/food-log-api/internal/repo"
	"github.com/khalilrez/food-log-api/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

type testApp struct {
	router http.Handler
	tokens *service.TokenService
}

// newTestApp собирает роутер поверх настоящих сервисов и in-memory SQLite
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db, err := repo.InitDB("")
	require.NoError(t, err)
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(repo.NewUserRepository(db), bcrypt.MinCost)
	tokenSvc := service.NewTokenService(testSecret, 30*time.Minute, userSvc)
	foodSvc := service.NewFoodService(repo.NewFoodRepository(db))
	entrySvc := service.NewEntryService(repo.NewEntryRepository(db), logger)

	h := handlers.NewHandler(userSvc, tokenSvc, foodSvc, entrySvc, logger)
	return &testApp{router: h.Router, tokens: tokenSvc}
}

func (a *testApp) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func (a *testApp) register(t *testing.T, id int64, username, password string, maxDaily int) {
	t.Helper()
	body := map[string]any{"id": id, "username": username, "password": password}
	if maxDaily > 0 {
		body["max_daily_calories"] = maxDaily
	}
	rr := a.do(t, http.MethodPost, "/create_user", body, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}

func (a *testApp) login(t *testing.T, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func (a *testApp) token(t *testing.T, username, password string) string {
	t.Helper()
	rr := a.login(t, username, password)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "bearer", resp.TokenType)
	return resp.AccessToken
}

func foodBody(id int64, name string, kcal int) map[string]any {
	return map[string]any{
		"id":               id,
		"name":             name,
		"serving_size":     "1 cup",
		"kcal_per_serving": kcal,
		"protein_grams":    2.5,
	}
}

func entryBody(id, userID int64, username string, maxDaily int, food map[string]any, servings float64) map[string]any {
	return map[string]any{
		"id": id,
		"user": map[string]any{
			"id":                 userID,
			"username":           username,
			"password":           "ignored",
			"max_daily_calories": maxDaily,
		},
		"food":            food,
		"number_servings": servings,
	}
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), fmt.Sprintf("body: %s", rr.Body.String()))
	return v
}
