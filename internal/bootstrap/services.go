// Package bootstrap construye el grafo de dependencias compartido por la API y el CLI del notificador.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentcare/rentcare-api/internal/application/analytics"
	"github.com/rentcare/rentcare-api/internal/application/calendar"
	"github.com/rentcare/rentcare-api/internal/application/notification"
	"github.com/rentcare/rentcare-api/internal/application/settings"
	"github.com/rentcare/rentcare-api/internal/domain/reminder"
	"github.com/rentcare/rentcare-api/internal/infrastructure/cache"
	"github.com/rentcare/rentcare-api/internal/infrastructure/email"
	"github.com/rentcare/rentcare-api/internal/infrastructure/postgres"
	"github.com/rentcare/rentcare-api/pkg/config"
	"github.com/rentcare/rentcare-api/pkg/logger"
)

// Services casos de uso listos para usar. Close libera pool y registro de envíos.
type Services struct {
	Pool      *pgxpool.Pool
	Engine    *reminder.Engine
	Trigger   *notification.TriggerUseCase
	Calendar  *calendar.UseCase
	Dashboard *analytics.DashboardUseCase
	Settings  *settings.UseCase

	sentLog cache.SentLogCloser
}

// Option ajusta la construcción de los servicios.
type Option func(*options)

type options struct {
	oneShot bool
}

// WithOneShot marca el proceso como de una sola pasada (CLI lanzado por cron).
func WithOneShot() Option {
	return func(o *options) { o.oneShot = true }
}

// New conecta con Postgres y arma los casos de uso. Requiere DATABASE_URL (o DB_*).
func New(ctx context.Context, cfg *config.Config, log *logger.Logger, opts ...Option) (*Services, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}

	sender, err := email.NewSender(cfg.Email, log.Component("email"))
	if err != nil {
		pool.Close()
		return nil, err
	}

	engine := reminder.NewEngine(reminder.WithLocation(cfg.App.Location()))

	propertyRepo := postgres.NewPropertyRepository(pool)
	tenantRepo := postgres.NewTenantRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)
	settingsRepo := postgres.NewNotificationSettingsRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	s := &Services{Pool: pool, Engine: engine}
	s.sentLog = cache.NewSentLog(ctx, cfg.Notifier, cfg.Redis, o.oneShot, log.Component("sentlog"))

	deps := notification.TriggerDeps{
		Settings:   settingsRepo,
		Properties: propertyRepo,
		Tenants:    tenantRepo,
		Documents:  documentRepo,
		Users:      userRepo,
		Sender:     sender,
		Engine:     engine,
		Config: notification.TriggerConfig{
			From:    cfg.Email.From,
			Missing: cfg.MissingForTrigger(),
		},
		Logger: log.Zerolog(),
	}
	// SentLog nil = sin deduplicación
	if s.sentLog != nil {
		deps.SentLog = s.sentLog
	}
	s.Trigger = notification.NewTriggerUseCase(deps)
	s.Calendar = calendar.NewUseCase(propertyRepo, tenantRepo, documentRepo, engine)
	s.Dashboard = analytics.NewDashboardUseCase(propertyRepo, tenantRepo, documentRepo, maintenanceRepo, engine)
	s.Settings = settings.NewUseCase(settingsRepo, userRepo)
	return s, nil
}

// Close libera los recursos.
func (s *Services) Close() {
	if s.sentLog != nil {
		_ = s.sentLog.Close()
	}
	if s.Pool != nil {
		s.Pool.Close()
	}
}
