package di

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Kingcxp/auth-service/internal/app"
	"github.com/Kingcxp/auth-service/internal/config"
	"github.com/Kingcxp/auth-service/internal/database"
	"github.com/Kingcxp/auth-service/internal/http/handler"
	"github.com/Kingcxp/auth-service/internal/http/middleware"
	"github.com/Kingcxp/auth-service/internal/observability"
	"github.com/Kingcxp/auth-service/internal/repository"
	"github.com/Kingcxp/auth-service/internal/security"
	"github.com/Kingcxp/auth-service/internal/service"
)

var ConfigSet = wire.NewSet(config.Load)

var ObservabilitySet = wire.NewSet(ProvideLogger)

var RuntimeInfraSet = wire.NewSet(ProvideDB, ProvideRedisClient)

var RepositorySet = wire.NewSet(repository.NewUserRepository)

var SecuritySet = wire.NewSet(ProvideCookieManager)

var ServiceSet = wire.NewSet(
	ProvideSessionStore,
	ProvideSessionService,
	ProvideEmailSender,
	ProvideVerificationService,
	service.NewAuthService,
)

var HTTPSet = wire.NewSet(
	handler.NewAuthHandler,
	ProvideRateLimiter,
	app.NewRouter,
	ProvideServer,
)

var AppSet = wire.NewSet(app.New)

func ProvideLogger(cfg *config.Config) *slog.Logger {
	return observability.NewLogger(cfg.LogLevel)
}

func ProvideDB(cfg *config.Config) (*gorm.DB, error) {
	return database.Open(cfg)
}

// ProvideRedisClient returns nil when no redis address is configured; the
// session store and rate limiter then fall back to their local variants.
func ProvideRedisClient(cfg *config.Config) redis.UniversalClient {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func ProvideSessionStore(cfg *config.Config, client redis.UniversalClient) service.SessionStore {
	if client == nil {
		return service.NewInMemorySessionStore(cfg.SessionTTL)
	}
	return service.NewRedisSessionStore(client, "session", cfg.SessionTTL)
}

func ProvideCookieManager(cfg *config.Config) *security.CookieManager {
	return security.NewCookieManager(cfg.SessionCookieName, cfg.CookieDomain, cfg.CookieSecure, cfg.CookieSameSite)
}

func ProvideSessionService(store service.SessionStore, cookies *security.CookieManager, cfg *config.Config) *service.SessionService {
	return service.NewSessionService(store, cookies, cfg.SessionTTL)
}

func ProvideEmailSender(cfg *config.Config, logger *slog.Logger) service.EmailSender {
	if cfg.MailConfigured() {
		return service.NewSMTPEmailSender(cfg.EmailHost, cfg.EmailAccount, cfg.EmailPasskey, cfg.EmailSenderName, logger)
	}
	logger.Warn("EMAIL_HOST not configured, verification codes will only be logged")
	return service.NewDevEmailSender(logger)
}

func ProvideVerificationService(sender service.EmailSender, cfg *config.Config, logger *slog.Logger) *service.VerificationService {
	return service.NewVerificationService(sender, cfg.VerifyCooldown, logger)
}

func ProvideRateLimiter(cfg *config.Config, client redis.UniversalClient, logger *slog.Logger) *middleware.RateLimiter {
	if client != nil {
		limiter := middleware.NewRedisFixedWindowLimiter(client, "rl")
		return middleware.NewRateLimiter(limiter, cfg.AuthRateLimitPerMin, time.Minute, middleware.FailOpen, logger)
	}
	return middleware.NewRateLimiter(middleware.NewLocalFixedWindowLimiter(), cfg.AuthRateLimitPerMin, time.Minute, middleware.FailClosed, logger)
}

func ProvideServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// MigrationRunner applies the schema before the server is started.
type MigrationRunner struct {
	db *gorm.DB
}

func NewMigrationRunner(db *gorm.DB) *MigrationRunner {
	return &MigrationRunner{db: db}
}

func (m *MigrationRunner) Run() error {
	return database.Migrate(m.db)
}
