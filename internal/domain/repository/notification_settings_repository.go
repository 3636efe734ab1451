package repository

import (
	"context"

	"github.com/rentcare/rentcare-api/internal/domain/entity"
)

// NotificationSettingsRepository define el puerto de persistencia de preferencias de aviso.
type NotificationSettingsRepository interface {
	// ListEnabled devuelve las filas con email_enabled = true (entrada del disparador).
	ListEnabled(ctx context.Context) ([]entity.NotificationSettings, error)
	// GetByUser devuelve nil, nil si el propietario aún no tiene fila.
	GetByUser(ctx context.Context, userID string) (*entity.NotificationSettings, error)
	Create(ctx context.Context, s *entity.NotificationSettings) error
	Update(ctx context.Context, s *entity.NotificationSettings) error
}
