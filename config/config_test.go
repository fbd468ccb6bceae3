package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/art")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("driver = %q, want postgres", cfg.DBDriver)
	}
	if !cfg.DirectOrderRequireAvailable {
		t.Error("direct orders should require availability by default")
	}
	if cfg.PublicArtistReports {
		t.Error("artist reports should not be public by default")
	}
	if cfg.StoreTimeout != 5*time.Second {
		t.Errorf("store timeout = %v", cfg.StoreTimeout)
	}
	if cfg.GoogleEnabled() {
		t.Error("google sign-in should be disabled without credentials")
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DB_URL and JWT_SECRET")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_URL", "file:art.db")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("STORE_TIMEOUT", "750ms")
	t.Setenv("DIRECT_ORDER_REQUIRE_AVAILABLE", "false")
	t.Setenv("PUBLIC_ARTIST_REPORTS", "not-a-bool")
	t.Setenv("PUBLIC_BASE_URL", "https://cdn.example.com/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("driver = %q, want sqlite", cfg.DBDriver)
	}
	if cfg.StoreTimeout != 750*time.Millisecond {
		t.Errorf("store timeout = %v", cfg.StoreTimeout)
	}
	if cfg.DirectOrderRequireAvailable {
		t.Error("expected availability check to be disabled")
	}
	if cfg.PublicArtistReports {
		t.Error("invalid boolean should fall back to default")
	}
	if cfg.PublicBaseURL != "https://cdn.example.com" {
		t.Errorf("base url = %q", cfg.PublicBaseURL)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_URL", "x")
	t.Setenv("JWT_SECRET", "y")
	t.Setenv("DB_DRIVER", "mysql")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
