package repo

import fsrepo "github.com/khalilrez/food-log-api/internal/cli/repo/fs"

// TokenStore описывает абстракцию хранилища access-токена на клиенте.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

var _ TokenStore = fsrepo.AuthFSStore{}
