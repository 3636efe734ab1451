package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentcare/rentcare-api/internal/domain/repository"
)

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

// MaintenanceRepo cuenta ocorrências de manutenção acotadas a los imóveis del propietario.
type MaintenanceRepo struct {
	pool *pgxpool.Pool
}

// NewMaintenanceRepository construye el adaptador.
func NewMaintenanceRepository(pool *pgxpool.Pool) *MaintenanceRepo {
	return &MaintenanceRepo{pool: pool}
}

// CountByStatus cuenta las ocorrências en el estado dado.
func (r *MaintenanceRepo) CountByStatus(ctx context.Context, userID, status string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM maintenance_occurrences m
		JOIN properties p ON p.id = m.property_id
		WHERE p.user_id = $1 AND m.status = $2`
	var n int64
	if err := r.pool.QueryRow(ctx, query, userID, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("count maintenance: %w", err)
	}
	return int(n), nil
}
