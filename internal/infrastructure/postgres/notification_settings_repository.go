package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentcare/rentcare-api/internal/domain"
	"github.com/rentcare/rentcare-api/internal/domain/entity"
	"github.com/rentcare/rentcare-api/internal/domain/repository"
)

var _ repository.NotificationSettingsRepository = (*NotificationSettingsRepo)(nil)

// NotificationSettingsRepo implementación sobre la tabla notification_settings (una fila por user_id).
type NotificationSettingsRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationSettingsRepository construye el adaptador.
func NewNotificationSettingsRepository(pool *pgxpool.Pool) *NotificationSettingsRepo {
	return &NotificationSettingsRepo{pool: pool}
}

const settingsColumns = `user_id::text, COALESCE(email_enabled, false), COALESCE(notify_5days, true),
		       COALESCE(notify_1day, true), COALESCE(email, '')`

func scanSettings(row pgx.Row) (entity.NotificationSettings, error) {
	var s entity.NotificationSettings
	err := row.Scan(&s.UserID, &s.EmailEnabled, &s.Notify5Days, &s.Notify1Day, &s.Email)
	return s, err
}

// ListEnabled filas con email_enabled = true.
func (r *NotificationSettingsRepo) ListEnabled(ctx context.Context) ([]entity.NotificationSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM notification_settings WHERE email_enabled = true ORDER BY user_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list notification settings: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.NotificationSettings, error) {
		return scanSettings(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan notification settings: %w", err)
	}
	return out, nil
}

// GetByUser devuelve nil, nil si no hay fila.
func (r *NotificationSettingsRepo) GetByUser(ctx context.Context, userID string) (*entity.NotificationSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM notification_settings WHERE user_id = $1`
	s, err := scanSettings(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification settings: %w", err)
	}
	return &s, nil
}

// Create inserta la fila; si otra petición la creó antes no se considera error.
func (r *NotificationSettingsRepo) Create(ctx context.Context, s *entity.NotificationSettings) error {
	query := `
		INSERT INTO notification_settings (user_id, email_enabled, notify_5days, notify_1day, email)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))`
	_, err := r.pool.Exec(ctx, query, s.UserID, s.EmailEnabled, s.Notify5Days, s.Notify1Day, s.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("insert notification settings: %w", err)
	}
	return nil
}

// Update persiste todos los campos de la fila.
func (r *NotificationSettingsRepo) Update(ctx context.Context, s *entity.NotificationSettings) error {
	query := `
		UPDATE notification_settings
		SET email_enabled = $2, notify_5days = $3, notify_1day = $4, email = NULLIF($5, ''), updated_at = now()
		WHERE user_id = $1`
	tag, err := r.pool.Exec(ctx, query, s.UserID, s.EmailEnabled, s.Notify5Days, s.Notify1Day, s.Email)
	if err != nil {
		return fmt.Errorf("update notification settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
