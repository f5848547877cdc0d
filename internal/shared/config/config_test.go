package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg := LoadFrom(viper.New(), "")

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected env dev, got %q", cfg.Env)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Fatalf("unexpected default model %q", cfg.GeminiModel)
	}
	if cfg.GeminiTimeout != 60*time.Second {
		t.Fatalf("unexpected default timeout %s", cfg.GeminiTimeout)
	}
	if len(cfg.CORSAllowOrigin) != 1 || cfg.CORSAllowOrigin[0] != "http://localhost:5173" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("SUPABASE_URL", "https://project.supabase.co/")
	t.Setenv("GEMINI_TIMEOUT_SECONDS", "15")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")

	cfg := LoadFrom(viper.New(), "")

	if cfg.Env != "production" {
		t.Fatalf("expected production, got %q", cfg.Env)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.SupabaseURL != "https://project.supabase.co" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.SupabaseURL)
	}
	if cfg.GeminiTimeout != 15*time.Second {
		t.Fatalf("expected 15s timeout, got %s", cfg.GeminiTimeout)
	}
	if len(cfg.CORSAllowOrigin) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("GEMINI_MODEL=gemini-test\nPORT=7000\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg := LoadFrom(viper.New(), path)

	if cfg.GeminiModel != "gemini-test" {
		t.Fatalf("expected model from file, got %q", cfg.GeminiModel)
	}
	if cfg.Port != "7000" {
		t.Fatalf("expected port from file, got %q", cfg.Port)
	}
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	cfg := LoadFrom(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	if cfg.Port != "8080" {
		t.Fatalf("expected defaults when env file missing, got %q", cfg.Port)
	}
}

func TestLoadReadsPoolOverrides(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_CONN_MAX_LIFETIME", "20m")
	t.Setenv("DB_PING_TIMEOUT", "1s")

	cfg := LoadFrom(viper.New(), "")
	if cfg.DBMaxOpenConns != 7 || cfg.DBMaxIdleConns != 0 {
		t.Fatalf("unexpected pool sizes %d/%d", cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	}
	if cfg.DBConnMaxLifetime != 20*time.Minute || cfg.DBPingTimeout != time.Second {
		t.Fatalf("unexpected pool durations %s/%s", cfg.DBConnMaxLifetime, cfg.DBPingTimeout)
	}
}
