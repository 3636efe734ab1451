// Package scheduler ejecuta el disparador de resúmenes una vez al día dentro del proceso.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentcare/rentcare-api/internal/application/dto"
)

// Runner ejecuta una pasada del disparador (notification.TriggerUseCase).
type Runner interface {
	Run(ctx context.Context) (*dto.TriggerResponse, error)
}

// DailyTriggerConfig hora local de ejecución y frecuencia de comprobación.
type DailyTriggerConfig struct {
	Hour          int
	Minute        int
	CheckInterval time.Duration
	Location      *time.Location
}

// DefaultDailyTriggerConfig 08:00 hora local, comprobando cada minuto.
func DefaultDailyTriggerConfig() DailyTriggerConfig {
	return DailyTriggerConfig{Hour: 8, Minute: 0, CheckInterval: time.Minute, Location: time.Local}
}

// DailyTrigger lanza el disparador una vez por fecha local, en la primera comprobación
// posterior a Hour:Minute. Si el proceso arranca más tarde ese día, ejecuta en la primera comprobación.
type DailyTrigger struct {
	config DailyTriggerConfig
	runner Runner
	log    zerolog.Logger
	now    func() time.Time

	cancel      context.CancelFunc
	wg          sync.WaitGroup
	mu          sync.Mutex
	isRunning   bool
	lastRunDate string
}

// NewDailyTrigger construye el scheduler.
func NewDailyTrigger(config DailyTriggerConfig, runner Runner, log zerolog.Logger) *DailyTrigger {
	if config.CheckInterval <= 0 {
		config.CheckInterval = time.Minute
	}
	if config.Location == nil {
		config.Location = time.Local
	}
	return &DailyTrigger{
		config: config,
		runner: runner,
		log:    log.With().Str("component", "scheduler").Logger(),
		now:    time.Now,
	}
}

// Start arranca el bucle en segundo plano. Llamadas repetidas no tienen efecto.
func (d *DailyTrigger) Start(ctx context.Context) error {
	d.mu.Lock()
	if d.isRunning {
		d.mu.Unlock()
		return nil
	}
	d.isRunning = true
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.mu.Unlock()

	d.wg.Add(1)
	go d.runLoop(ctx)

	d.log.Info().
		Int("hour", d.config.Hour).
		Int("minute", d.config.Minute).
		Str("location", d.config.Location.String()).
		Dur("check_interval", d.config.CheckInterval).
		Msg("scheduler diario iniciado")
	return nil
}

// Stop cancela el bucle y espera a que termine la pasada en curso, o a que venza ctx.
func (d *DailyTrigger) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.isRunning {
		d.mu.Unlock()
		return nil
	}
	d.isRunning = false
	cancel := d.cancel
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.log.Info().Msg("scheduler diario detenido")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *DailyTrigger) runLoop(ctx context.Context) {
	defer d.wg.Done()

	ticker := time.NewTicker(d.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.checkAndTrigger(ctx)
		}
	}
}

// checkAndTrigger ejecuta el disparador si ya es la hora y aún no se ejecutó hoy.
// Devuelve true si lanzó una pasada.
func (d *DailyTrigger) checkAndTrigger(ctx context.Context) bool {
	now := d.now().In(d.config.Location)
	currentDate := now.Format("2006-01-02")

	scheduled := time.Date(now.Year(), now.Month(), now.Day(), d.config.Hour, d.config.Minute, 0, 0, d.config.Location)
	if now.Before(scheduled) {
		return false
	}

	d.mu.Lock()
	if d.lastRunDate == currentDate {
		d.mu.Unlock()
		return false
	}
	d.lastRunDate = currentDate
	d.mu.Unlock()

	d.log.Info().Str("date", currentDate).Msg("ejecutando disparador diario")
	resp, err := d.runner.Run(ctx)
	if err != nil {
		d.log.Error().Err(err).Msg("disparador diario falló")
		return true
	}

	sent := 0
	for _, r := range resp.Results {
		if r.Sent {
			sent++
		}
	}
	d.log.Info().Int("landlords", len(resp.Results)).Int("sent", sent).Msg("disparador diario completado")
	return true
}
