package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env      string
	HTTPPort string

	DatabaseURL string
	SQLitePath  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionCookieName string
	SessionTTL        time.Duration
	CookieDomain      string
	CookieSecure      bool
	CookieSameSite    string

	VerifyCooldown time.Duration

	EmailAccount    string
	EmailPasskey    string
	EmailHost       string
	EmailSenderName string

	AuthRateLimitPerMin int

	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		SQLitePath:          getEnv("SQLITE_PATH", "data/auth.db"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		SessionCookieName:   getEnv("SESSION_COOKIE_NAME", "session_id"),
		CookieDomain:        os.Getenv("COOKIE_DOMAIN"),
		CookieSecure:        getEnvBool("COOKIE_SECURE", true),
		CookieSameSite:      strings.ToLower(getEnv("COOKIE_SAMESITE", "lax")),
		EmailAccount:        os.Getenv("EMAIL"),
		EmailPasskey:        os.Getenv("EMAIL_PASSKEY"),
		EmailHost:           os.Getenv("EMAIL_HOST"),
		EmailSenderName:     getEnv("EMAIL_SENDER_NAME", "sender"),
		AuthRateLimitPerMin: getEnvInt("AUTH_RATE_LIMIT_PER_MIN", 30),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("parse SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = sessionTTL

	cooldown, err := time.ParseDuration(getEnv("VERIFY_RESEND_COOLDOWN", "30s"))
	if err != nil {
		return nil, fmt.Errorf("parse VERIFY_RESEND_COOLDOWN: %w", err)
	}
	cfg.VerifyCooldown = cooldown

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []string
	if c.DatabaseURL == "" && c.SQLitePath == "" {
		errs = append(errs, "one of DATABASE_URL or SQLITE_PATH is required")
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, "SESSION_TTL must be > 0")
	}
	if c.VerifyCooldown <= 0 || c.VerifyCooldown > time.Hour {
		errs = append(errs, "VERIFY_RESEND_COOLDOWN must be between 1s and 1h")
	}
	if c.AuthRateLimitPerMin <= 0 {
		errs = append(errs, "AUTH_RATE_LIMIT_PER_MIN must be > 0")
	}
	if c.EmailHost != "" && (c.EmailAccount == "" || c.EmailPasskey == "") {
		errs = append(errs, "EMAIL and EMAIL_PASSKEY are required when EMAIL_HOST is set")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// MailConfigured reports whether real SMTP delivery is available. Without it
// the app falls back to the dev sender that only logs the code.
func (c *Config) MailConfigured() bool {
	return c.EmailHost != "" && c.EmailAccount != "" && c.EmailPasskey != ""
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
