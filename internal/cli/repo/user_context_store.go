package repo

import fsrepo "github.com/khalilrez/food-log-api/internal/cli/repo/fs"

// UserContextStore абстракция для хранения контекста пользователя (последний логин).
type UserContextStore interface {
	SaveLogin(login string) error
	LoadLogin() (string, error)
}

// SessionStore — токен и логин вместе, так их видят команды CLI.
type SessionStore interface {
	TokenStore
	UserContextStore
}

var _ SessionStore = fsrepo.AuthFSStore{}
