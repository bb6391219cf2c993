package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("WS_TEST_SET", "value")
	if got := GetEnv("WS_TEST_SET", "fallback"); got != "value" {
		t.Fatalf("GetEnv = %q, want %q", got, "value")
	}
	if got := GetEnv("WS_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv unset = %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("WS_TEST_INT", "42")
	n, err := GetEnvInt("WS_TEST_INT", 7)
	if err != nil || n != 42 {
		t.Fatalf("GetEnvInt = %d, %v; want 42, nil", n, err)
	}

	t.Setenv("WS_TEST_INT", "nope")
	n, err = GetEnvInt("WS_TEST_INT", 7)
	if err == nil || n != 7 {
		t.Fatalf("GetEnvInt bad value = %d, %v; want 7 and an error", n, err)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("WS_TEST_DUR", "1500ms")
	d, err := GetEnvDuration("WS_TEST_DUR", time.Second)
	if err != nil || d != 1500*time.Millisecond {
		t.Fatalf("GetEnvDuration = %v, %v; want 1.5s", d, err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("WS_DOTENV_KEY=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv("WS_DOTENV_KEY")
	t.Cleanup(func() { os.Unsetenv("WS_DOTENV_KEY") })

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("WS_DOTENV_KEY"); got != "from-file" {
		t.Fatalf("WS_DOTENV_KEY = %q, want from-file", got)
	}

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv on missing file: %v", err)
	}
}
