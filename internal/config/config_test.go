package config

import (
	"testing"
	"time"
)

func TestGetTablePrefix(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		override string
		want     string
	}{
		{name: "prod", env: "prod", want: "prod_"},
		{name: "test", env: "test", want: "test_"},
		{name: "dev", env: "dev", want: "dev_"},
		{name: "unknown falls back to dev", env: "staging", want: "dev_"},
		{name: "override wins", env: "prod", override: "custom_", want: "custom_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TABLE_PREFIX", tt.override)
			if got := getTablePrefix(tt.env); got != tt.want {
				t.Errorf("getTablePrefix(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "PORT", "STORAGE_DRIVER", "JWT_TTL", "LOG_MAX_FILES", "TABLE_PREFIX"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Environment != "dev" {
		t.Errorf("Environment = %q, want dev", cfg.Environment)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.StorageDriver != "postgres" {
		t.Errorf("StorageDriver = %q, want postgres", cfg.StorageDriver)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Errorf("JWTTTL = %v, want 24h", cfg.JWTTTL)
	}
	if cfg.LogMaxFiles != 10 {
		t.Errorf("LogMaxFiles = %d, want 10", cfg.LogMaxFiles)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("LOG_MAX_FILES", "3")
	t.Setenv("STORAGE_DRIVER", "sqlite")

	cfg := Load()

	if cfg.JWTTTL != 90*time.Minute {
		t.Errorf("JWTTTL = %v, want 90m", cfg.JWTTTL)
	}
	if cfg.LogMaxFiles != 3 {
		t.Errorf("LogMaxFiles = %d, want 3", cfg.LogMaxFiles)
	}
	if cfg.StorageDriver != "sqlite" {
		t.Errorf("StorageDriver = %q, want sqlite", cfg.StorageDriver)
	}
}

func TestLoadIgnoresInvalidDuration(t *testing.T) {
	t.Setenv("JWT_TTL", "soon")

	if got := Load().JWTTTL; got != 24*time.Hour {
		t.Errorf("JWTTTL = %v, want default 24h", got)
	}
}
