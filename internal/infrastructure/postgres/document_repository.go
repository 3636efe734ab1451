package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentcare/rentcare-api/internal/domain/entity"
	"github.com/rentcare/rentcare-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// documents no tiene created_at; el orden de subida es upload_date.
const listDocumentsByPropertiesQuery = `
	SELECT id::text, property_id::text, COALESCE(type, ''), COALESCE(file_name, ''),
	       COALESCE(tenant_name, ''), COALESCE(expiration_date::text, '')
	FROM documents
	WHERE property_id::text = ANY($1)
	ORDER BY upload_date`

// DocumentRepo implementación del puerto DocumentRepository sobre la tabla documents.
type DocumentRepo struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository construye el adaptador.
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

// ListByProperties devuelve los documentos de los imóveis indicados.
// Sin imóveis no se consulta la DB. La fecha de expiración se lee como texto ISO.
func (r *DocumentRepo) ListByProperties(ctx context.Context, propertyIDs []string) ([]entity.Document, error) {
	if len(propertyIDs) == 0 {
		return []entity.Document{}, nil
	}
	rows, err := r.pool.Query(ctx, listDocumentsByPropertiesQuery, propertyIDs)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Document, error) {
		var d entity.Document
		var docType string
		if err := row.Scan(&d.ID, &d.PropertyID, &docType, &d.FileName, &d.TenantName, &d.ExpirationDate); err != nil {
			return d, err
		}
		d.Type = entity.ParseDocumentType(docType)
		return d, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan documents: %w", err)
	}
	return docs, nil
}
