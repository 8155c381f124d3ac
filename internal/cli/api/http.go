package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client — HTTP-клиент CLI; по умолчанию с таймаутом, в тестах можно подменить.
var Client = &http.Client{Timeout: 15 * time.Second}

// ErrorBody — тело ошибки сервера.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// DoJSON отправляет запрос с JSON-телом (если payload не nil).
// Непустой token передаётся как Authorization: Bearer.
func DoJSON(ctx context.Context, method, url string, payload any, token string) (*http.Response, []byte, error) {
	var rd io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return send(req)
}

// PostJSON sends a JSON POST request.
func PostJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	return DoJSON(ctx, http.MethodPost, url, payload, token)
}

// GetJSON sends a GET request without a body.
func GetJSON(ctx context.Context, url string, token string) (*http.Response, []byte, error) {
	return DoJSON(ctx, http.MethodGet, url, nil, token)
}

// PostForm отправляет application/x-www-form-urlencoded, нужен для /token.
func PostForm(ctx context.Context, endpoint string, form url.Values) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return send(req)
}

func send(req *http.Request) (*http.Response, []byte, error) {
	resp, err := Client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("read response: %w", err)
	}
	return resp, bytes.TrimSpace(body), nil
}

// Detail достаёт поле detail из тела ошибки, иначе возвращает тело как есть.
func Detail(body []byte) string {
	var eb ErrorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Detail != "" {
		return eb.Detail
	}
	return string(body)
}
