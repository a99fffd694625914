package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

func TestAuthFSStore_SaveLoadDefaultPath(t *testing.T) {
	withTempConfig(t)
	s := AuthFSStore{}

	if err := s.Save("tok-123"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "tok-123" {
		t.Fatalf("token mismatch: %q", got)
	}
}

func TestAuthFSStore_ExplicitPathAndTrim(t *testing.T) {
	p := filepath.Join(t.TempDir(), "token")
	s := AuthFSStore{Path: p}

	if err := os.WriteFile(p, []byte("tok-xyz\n\t "), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "tok-xyz" {
		t.Fatalf("expected trimmed token, got %q", got)
	}
}

func TestAuthFSStore_LoadErrors(t *testing.T) {
	p := filepath.Join(t.TempDir(), "token")
	s := AuthFSStore{Path: p}

	if _, err := s.Load(); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if err := os.WriteFile(p, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := s.Load(); err == nil {
		t.Fatalf("expected error for empty file")
	}
}
