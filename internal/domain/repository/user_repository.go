package repository

import (
	"context"

	"github.com/rentcare/rentcare-api/internal/domain/entity"
)

// UserRepository acceso de solo lectura a las cuentas del proveedor de auth.
type UserRepository interface {
	// GetByID devuelve nil, nil si la cuenta no existe.
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
