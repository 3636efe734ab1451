package repository

import (
	"context"

	"github.com/rentcare/rentcare-api/internal/domain/entity"
)

// TenantRepository puerto de lectura de inquilinos de un propietario.
type TenantRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entity.Tenant, error)
}
