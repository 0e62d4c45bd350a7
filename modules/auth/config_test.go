package auth

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.DBPath == "" {
		t.Error("DBPath default is empty")
	}
	if cfg.JWTSecret == "" {
		t.Error("JWTSecret default is empty")
	}
	if cfg.JWTLifetime <= 0 {
		t.Errorf("JWTLifetime = %v, want positive", cfg.JWTLifetime)
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		t.Error("admin seed credentials default is empty")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "override-secret")
	t.Setenv("JWT_EXPIRATION", "15m")
	t.Setenv("ADMIN_EMAIL", "root@x.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.JWTSecret != "override-secret" {
		t.Errorf("JWTSecret = %v, want override-secret", cfg.JWTSecret)
	}
	if cfg.JWTLifetime != 15*time.Minute {
		t.Errorf("JWTLifetime = %v, want 15m", cfg.JWTLifetime)
	}
	if cfg.AdminEmail != "root@x.com" {
		t.Errorf("AdminEmail = %v, want root@x.com", cfg.AdminEmail)
	}
}
