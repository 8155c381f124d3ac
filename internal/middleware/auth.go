package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/khalilrez/food-log-api/internal/model"
)

type ctxKey string

const userCtxKey ctxKey = "user"

// TokenResolver разрешает bearer-токен в пользователя.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*model.User, error)
}

// BearerToken достаёт токен из "Authorization: Bearer <token>".
func BearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// WithAuth кладёт пользователя в контекст, если токен валиден.
// Анонимные запросы проходят дальше без пользователя.
func WithAuth(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := BearerToken(r); ok {
				if u, err := resolver.Resolve(r.Context(), token); err == nil && u != nil {
					r = r.WithContext(context.WithValue(r.Context(), userCtxKey, u))
				} else if err != nil {
					sugar.Debugw("Auth: token rejected", "uri", r.RequestURI)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth отвечает 401, если в контексте нет пользователя.
// Причина отказа клиенту не сообщается.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserFromContext(r.Context()); !ok {
			WriteUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WriteUnauthorized пишет единый ответ 401.
func WriteUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"detail":"could not validate credentials"}` + "\n"))
}

// GetUserFromContext возвращает аутентифицированного пользователя.
func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(userCtxKey).(*model.User)
	return u, ok && u != nil
}
