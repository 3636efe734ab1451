package repository

import (
	"context"

	"github.com/rentcare/rentcare-api/internal/domain/entity"
)

// PropertyRepository puerto de lectura de imóveis de un propietario.
type PropertyRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entity.Property, error)
}
