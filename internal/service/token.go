package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/khalilrez/food-log-api/internal/model"
)

// UserLookup — источник пользователей для разрешения токена.
type UserLookup interface {
	Lookup(ctx context.Context, username string) (*model.User, error)
}

// TokenService выпускает и проверяет HS256 JWT с логином в sub.
// Токены не хранятся: отзыв и обновление не поддерживаются.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	users  UserLookup
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration, users UserLookup) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, users: users, now: time.Now}
}

// Issue подписывает токен для логина, exp = now + ttl.
func (s *TokenService) Issue(username string) (model.Token, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return model.Token{}, fmt.Errorf("sign token: %w", err)
	}
	return model.Token{AccessToken: signed, TokenType: model.TokenTypeBearer}, nil
}

// Resolve проверяет подпись и срок, затем ищет пользователя из sub.
// Любая неудача даёт ErrUnauthorized без уточнения причины.
func (s *TokenService) Resolve(ctx context.Context, raw string) (*model.User, error) {
	if raw == "" {
		return nil, ErrUnauthorized
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, ErrUnauthorized
	}

	u, err := s.users.Lookup(ctx, claims.Subject)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
