package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/rentcare/rentcare-api/internal/domain/entity"
	"github.com/rentcare/rentcare-api/internal/domain/repository"
)

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

// PropertyRepo implementación del puerto PropertyRepository sobre la tabla properties.
type PropertyRepo struct {
	pool *pgxpool.Pool
}

// NewPropertyRepository construye el adaptador.
func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepo {
	return &PropertyRepo{pool: pool}
}

// ListByUser lista los imóveis del propietario. Columnas nulas se convierten a valores cero.
func (r *PropertyRepo) ListByUser(ctx context.Context, userID string) ([]entity.Property, error) {
	query := `
		SELECT id::text, user_id::text, COALESCE(address, ''), COALESCE(title, ''),
		       payment_day, rent_amount, COALESCE(status, '')
		FROM properties
		WHERE user_id = $1
		ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	props, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Property, error) {
		var p entity.Property
		var day *int64
		var rent decimal.NullDecimal
		if err := row.Scan(&p.ID, &p.UserID, &p.Address, &p.Title, &day, &rent, &p.Status); err != nil {
			return p, err
		}
		if day != nil {
			p.PaymentDay = int(*day)
		}
		if rent.Valid {
			p.RentAmount = rent.Decimal
		}
		return p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan properties: %w", err)
	}
	return props, nil
}
