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

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación del puerto TenantRepository sobre la tabla tenants.
type TenantRepo struct {
	pool *pgxpool.Pool
}

// NewTenantRepository construye el adaptador.
func NewTenantRepository(pool *pgxpool.Pool) *TenantRepo {
	return &TenantRepo{pool: pool}
}

// ListByUser lista los inquilinos del propietario conservando los opcionales como punteros.
func (r *TenantRepo) ListByUser(ctx context.Context, userID string) ([]entity.Tenant, error) {
	query := `
		SELECT id::text, user_id::text, COALESCE(name, ''), property_id::text, rent_amount, payment_day
		FROM tenants
		WHERE user_id = $1
		ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	tenants, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Tenant, error) {
		var t entity.Tenant
		var rent decimal.NullDecimal
		var day *int64
		if err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.PropertyID, &rent, &day); err != nil {
			return t, err
		}
		if rent.Valid {
			t.RentAmount = &rent.Decimal
		}
		if day != nil {
			d := int(*day)
			t.PaymentDay = &d
		}
		return t, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan tenants: %w", err)
	}
	return tenants, nil
}
