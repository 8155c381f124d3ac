package service

import "errors"

// Ошибки бизнес-слоя. Хендлеры различают их через errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("already exists")
	ErrQuotaExceeded = errors.New("daily caloric allowance exceeded")
	// ErrUnauthorized одна на все причины отказа в аутентификации.
	ErrUnauthorized = errors.New("could not validate credentials")
)
