package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("default port = %q", cfg.HTTPPort)
	}
	if cfg.VerifyCooldown != 30*time.Second {
		t.Fatalf("default cooldown = %v", cfg.VerifyCooldown)
	}
	if cfg.SessionCookieName != "session_id" {
		t.Fatalf("default cookie name = %q", cfg.SessionCookieName)
	}
	if cfg.MailConfigured() {
		t.Fatal("mail must not be configured by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("VERIFY_RESEND_COOLDOWN", "45s")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPPort != "9090" {
		t.Fatalf("port = %q", cfg.HTTPPort)
	}
	if cfg.VerifyCooldown != 45*time.Second {
		t.Fatalf("cooldown = %v", cfg.VerifyCooldown)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("redis addr = %q", cfg.RedisAddr)
	}
}

func TestLoadRejectsBadDurations(t *testing.T) {
	t.Setenv("VERIFY_RESEND_COOLDOWN", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparsable cooldown")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		SQLitePath:          "data/auth.db",
		SessionTTL:          time.Hour,
		VerifyCooldown:      30 * time.Second,
		AuthRateLimitPerMin: 30,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg.EmailHost = "smtp.example.com"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for EMAIL_HOST without credentials")
	}

	cfg.EmailHost = ""
	cfg.VerifyCooldown = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero cooldown")
	}
}
