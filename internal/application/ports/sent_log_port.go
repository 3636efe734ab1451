package ports

import (
	"context"
	"time"
)

// SentLog registro de avisos ya enviados, para que varias ejecuciones del disparador en el
// mismo día no repitan el mismo aviso. Implementaciones: Redis y memoria.
type SentLog interface {
	WasSent(ctx context.Context, key string) (bool, error)
	MarkSent(ctx context.Context, keys []string, ttl time.Duration) error
}
