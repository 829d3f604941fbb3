package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_SnapshotBackendValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SNAPSHOT_BACKEND", "redis")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid SNAPSHOT_BACKEND")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_ExportRequiresURLWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ARCHIVE_EXPORT_ENABLED", "true")
	t.Setenv("ARCHIVE_EXPORT_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when ARCHIVE_EXPORT_ENABLED=true without ARCHIVE_EXPORT_URL")
	}
}

func TestLoad_ExportConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ARCHIVE_EXPORT_ENABLED", "true")
	t.Setenv("ARCHIVE_EXPORT_URL", "https://backup.example.com/seasons")
	t.Setenv("ARCHIVE_EXPORT_TOKEN", "token-123")
	t.Setenv("ARCHIVE_EXPORT_TIMEOUT", "4s")
	t.Setenv("ARCHIVE_EXPORT_WORKERS", "8")
	t.Setenv("ARCHIVE_EXPORT_CIRCUIT_FAILURE_COUNT", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.ExportEnabled {
		t.Fatalf("expected ExportEnabled=true")
	}
	if cfg.ExportURL != "https://backup.example.com/seasons" {
		t.Fatalf("unexpected ExportURL: %q", cfg.ExportURL)
	}
	if cfg.ExportToken != "token-123" {
		t.Fatalf("unexpected ExportToken")
	}
	if cfg.ExportTimeout != 4*time.Second {
		t.Fatalf("unexpected ExportTimeout: %s", cfg.ExportTimeout)
	}
	if cfg.ExportWorkers != 8 {
		t.Fatalf("unexpected ExportWorkers: %d", cfg.ExportWorkers)
	}
	if cfg.ExportCircuitFailureCount != 3 {
		t.Fatalf("unexpected ExportCircuitFailureCount: %d", cfg.ExportCircuitFailureCount)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("SNAPSHOT_BACKEND", "")
	t.Setenv("CACHE_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.SnapshotBackend != SnapshotBackendFile {
		t.Fatalf("unexpected SnapshotBackend: %q", cfg.SnapshotBackend)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.LeagueName != "Cosmus League" {
		t.Fatalf("unexpected LeagueName: %q", cfg.LeagueName)
	}
}

func TestLoad_CacheTTLMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_TTL", "-5s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative CACHE_TTL")
	}
}
