package model

// TokenTypeBearer — тип токена в ответе /token.
const TokenTypeBearer = "bearer"

// Token — выданный access-токен. На сервере не хранится.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
