package commands

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/khalilrez/food-log-api/internal/cli/api"
	"github.com/khalilrez/food-log-api/internal/cli/repo"
	fsrepo "github.com/khalilrez/food-log-api/internal/cli/repo/fs"
	"github.com/khalilrez/food-log-api/internal/config"
)

// ErrNotLoggedIn — нет сохранённого токена или сервер его отверг.
var ErrNotLoggedIn = errors.New("not logged in or token expired, run login")

// newSession — можно подменить в тестах.
var newSession = func(cfg *config.Config) repo.SessionStore {
	return fsrepo.AuthFSStore{TokenPath: cfg.TokenFile}
}

func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

func requireToken(cfg *config.Config) (string, error) {
	tok, err := newSession(cfg).Load()
	if err != nil {
		return "", ErrNotLoggedIn
	}
	return tok, nil
}

// serverError превращает неуспешный ответ в ошибку с detail из тела.
func serverError(resp *http.Response, body []byte) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrNotLoggedIn
	case http.StatusNotFound:
		return fmt.Errorf("not found: %s", api.Detail(body))
	case http.StatusBadRequest:
		return fmt.Errorf("rejected: %s", api.Detail(body))
	default:
		return fmt.Errorf("server error %d: %s", resp.StatusCode, api.Detail(body))
	}
}
