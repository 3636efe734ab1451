// Package cache contiene las implementaciones del registro de envíos del notificador.
package cache

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/rentcare/rentcare-api/internal/application/ports"
	"github.com/rentcare/rentcare-api/pkg/config"
)

// SentLogCloser registro de envíos que libera recursos al cerrar.
type SentLogCloser interface {
	ports.SentLog
	io.Closer
}

// NewSentLog elige la implementación según la configuración:
// deduplicación desactivada → nil; REDIS_ADDR definido → Redis (en memoria si no conecta);
// sin REDIS_ADDR → en memoria.
// Con oneShot (proceso que ejecuta una sola pasada, p. ej. el CLI) el registro en memoria
// se perdería al salir, así que se devuelve nil con un aviso: sin Redis no hay deduplicación.
func NewSentLog(ctx context.Context, notifier config.NotifierConfig, redisCfg config.RedisConfig, oneShot bool, log zerolog.Logger) SentLogCloser {
	if !notifier.Dedup {
		log.Info().Msg("registro de envíos desactivado")
		return nil
	}
	if redisCfg.Addr != "" {
		store, err := NewRedisSentLog(ctx, redisCfg.Addr, redisCfg.Password, redisCfg.DB)
		if err == nil {
			log.Info().Str("addr", redisCfg.Addr).Msg("registro de envíos en Redis")
			return store
		}
		log.Warn().Err(err).Msg("Redis no disponible")
	}
	if oneShot {
		log.Warn().Msg("deduplicación inactiva: el registro en memoria no sobrevive entre ejecuciones, configure REDIS_ADDR")
		return nil
	}
	log.Info().Msg("registro de envíos en memoria")
	return NewInMemorySentLog(0)
}
