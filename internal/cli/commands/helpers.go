package commands

import (
	"fmt"
	"net/http"
	"strings"

	fsrepo "GardenGuru/internal/cli/repo/fs"
	"GardenGuru/internal/config"
)

// apiURL склеивает базовый URL сервера и путь эндпоинта.
func apiURL(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

func tokenStore(cfg *config.Config) fsrepo.AuthFSStore {
	return fsrepo.AuthFSStore{Path: cfg.TokenFile}
}

// loadToken читает сохранённый токен; отсутствие токена — не ошибка,
// сервер сам ответит 401.
func loadToken(cfg *config.Config) string {
	t, _ := tokenStore(cfg).Load()
	return t
}

// apiError превращает не-2xx ответ в ошибку с текстом сервера.
func apiError(resp *http.Response, body []byte) error {
	return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
