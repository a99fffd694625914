package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"GardenGuru/internal/config"
)

// newTestConfig даёт конфиг с токеном во временном файле,
// чтобы тесты не трогали пользовательский каталог.
func newTestConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL: serverURL,
		TokenFile: filepath.Join(t.TempDir(), "token"),
	}
}

// перехват вывода CLI на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
