package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rentcare/rentcare-api/internal/bootstrap"
	"github.com/rentcare/rentcare-api/internal/infrastructure/scheduler"
	httpRouter "github.com/rentcare/rentcare-api/internal/interfaces/http"
	"github.com/rentcare/rentcare-api/pkg/config"
	"github.com/rentcare/rentcare-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Location().String()).
		Str("email_provider", cfg.Email.Provider).
		Msg("iniciando aplicación")

	ctx := context.Background()
	svc, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar servicios")
	}
	defer svc.Close()

	if missing := cfg.MissingForTrigger(); len(missing) > 0 {
		log.Warn().Strs("missing", missing).Msg("el disparador de avisos responderá 500 hasta completar la configuración")
	}
	if cfg.Notifier.CronSecret == "" {
		log.Warn().Msg("NOTIFIER_CRON_SECRET vacío: /api/notifications/trigger sin protección")
	}

	var daily *scheduler.DailyTrigger
	if cfg.Notifier.Enabled {
		daily = scheduler.NewDailyTrigger(scheduler.DailyTriggerConfig{
			Hour:          cfg.Notifier.Hour,
			Minute:        cfg.Notifier.Minute,
			CheckInterval: time.Minute,
			Location:      cfg.App.Location(),
		}, svc.Trigger, log.Zerolog())
		if err := daily.Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("iniciar scheduler diario")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // el disparador recorre todos los propietarios
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Reminders:  svc.Calendar,
		Dashboard:  svc.Dashboard,
		Settings:   svc.Settings,
		Trigger:    svc.Trigger,
		Presence:   cfg.TriggerPresence,
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		CronSecret: cfg.Notifier.CronSecret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if daily != nil {
		if err := daily.Stop(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("apagado del scheduler")
		}
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
