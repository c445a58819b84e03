package config

import (
	"testing"
	"time"
)

func TestLoadRequiresBackendURL(t *testing.T) {
	t.Setenv("BACKEND_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when BACKEND_URL is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://localhost:9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.BaseURL != "http://localhost:9090" {
		t.Errorf("BaseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s default", cfg.Backend.Timeout)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080 default", cfg.Server.Port)
	}
	if cfg.Table.DefaultPageSize != 10 {
		t.Errorf("DefaultPageSize = %d, want 10 default", cfg.Table.DefaultPageSize)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://backend:3000")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("REPORT_LOCALE", "fr_FR")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.Backend.Timeout)
	}
	if cfg.Table.DefaultPageSize != 25 {
		t.Errorf("DefaultPageSize = %d", cfg.Table.DefaultPageSize)
	}
	if cfg.Report.Locale != "fr_FR" {
		t.Errorf("Locale = %q", cfg.Report.Locale)
	}
}
