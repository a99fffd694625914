package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"GardenGuru/internal/cli/repo"
)

func requestJSON(ctx context.Context, method, url string, payload any, token string) (*http.Response, []byte, error) {
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
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Cookie", "auth_token="+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as auth cookie.
func PostJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	return requestJSON(ctx, http.MethodPost, url, payload, token)
}

// GetJSON sends a GET request with the auth cookie.
func GetJSON(ctx context.Context, url, token string) (*http.Response, []byte, error) {
	return requestJSON(ctx, http.MethodGet, url, nil, token)
}

// PutJSON sends a JSON PUT request with the auth cookie.
func PutJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	return requestJSON(ctx, http.MethodPut, url, payload, token)
}

// DeleteJSON sends a DELETE request with the auth cookie.
func DeleteJSON(ctx context.Context, url, token string) (*http.Response, []byte, error) {
	return requestJSON(ctx, http.MethodDelete, url, nil, token)
}

// PersistAuthFromResponse извлекает auth cookie из ответа и сохраняет его в store.
func PersistAuthFromResponse(resp *http.Response, store repo.TokenStore) error {
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			return store.Save(c.Value)
		}
	}
	return fmt.Errorf("no auth cookie in response")
}
