package repository

import (
	"context"

	"github.com/rentcare/rentcare-api/internal/domain/entity"
)

// DocumentRepository puerto de lectura de documentos.
// Los documentos no tienen user_id propio: se acotan por los imóveis del propietario.
type DocumentRepository interface {
	ListByProperties(ctx context.Context, propertyIDs []string) ([]entity.Document, error)
}
