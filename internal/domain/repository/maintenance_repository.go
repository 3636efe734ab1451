package repository

import "context"

// MaintenanceRepository consultas de ocorrências de manutenção para el dashboard.
type MaintenanceRepository interface {
	// CountByStatus cuenta las ocorrências de los imóveis del propietario en el estado dado.
	CountByStatus(ctx context.Context, userID, status string) (int, error)
}
