package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentcare/rentcare-api/internal/application/analytics"
	"github.com/rentcare/rentcare-api/internal/domain/entity"
	"github.com/rentcare/rentcare-api/internal/domain/reminder"
)

type stubProperties []entity.Property

func (s stubProperties) ListByUser(context.Context, string) ([]entity.Property, error) { return s, nil }

type stubTenants []entity.Tenant

func (s stubTenants) ListByUser(context.Context, string) ([]entity.Tenant, error) { return s, nil }

type stubDocuments []entity.Document

func (s stubDocuments) ListByProperties(context.Context, []string) ([]entity.Document, error) {
	return s, nil
}

type stubMaintenance struct {
	n      int
	err    error
	status string
}

func (s *stubMaintenance) CountByStatus(_ context.Context, _ string, status string) (int, error) {
	s.status = status
	return s.n, s.err
}

func intPtr(v int) *int { return &v }

func engine() *reminder.Engine {
	now := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	return reminder.NewEngine(reminder.WithClock(func() time.Time { return now }), reminder.WithLocation(time.UTC))
}

func property(id string, day int, rent string, status string) entity.Property {
	return entity.Property{ID: id, Title: "Imóvel " + id, PaymentDay: day, RentAmount: decimal.RequireFromString(rent), Status: status}
}

func TestGetSummary_Tarjetas(t *testing.T) {
	props := stubProperties{
		property("a", 25, "750.50", entity.PropertyStatusPaid),
		property("b", 3, "900", entity.PropertyStatusLate),
		property("c", 20, "0", entity.PropertyStatusPending),
		property("d", 0, "500", entity.PropertyStatusLate),
	}
	tenants := stubTenants{
		{ID: "t1", Name: "Ana", PaymentDay: intPtr(21)},
		{ID: "t2", Name: "Bruno", PaymentDay: intPtr(28)},
	}
	docs := stubDocuments{
		{ID: "d1", PropertyID: "a", Type: entity.DocumentContract, ExpirationDate: "2026-10-22"},
		{ID: "d2", PropertyID: "a", Type: entity.DocumentReceipt},
	}
	maint := &stubMaintenance{n: 3}

	got, err := analytics.NewDashboardUseCase(props, tenants, docs, maint, engine()).GetSummary(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, entity.MaintenanceOpen, maint.status)
	assert.Equal(t, 4, got.PropertiesCount)
	assert.Equal(t, 2, got.TenantsCount)
	assert.Equal(t, 2, got.DocumentsCount)
	assert.Equal(t, 3, got.MaintenancePendingCount)
	assert.True(t, decimal.RequireFromString("2150.50").Equal(got.TotalRent), "renta total: %s", got.TotalRent)
	assert.Equal(t, 2, got.LateCount)
	assert.Equal(t, 1, got.PaidCount)
	assert.Equal(t, 2, got.UpcomingInboxCount, "pago t1 a 2 días y contrato d1 a 3 días")

	require.Len(t, got.NextPayments, 3, "el imóvel sin día de pago no aparece")
	assert.Equal(t, "b", got.NextPayments[0].PropertyID)
	assert.Equal(t, time.Date(2026, time.November, 3, 0, 0, 0, 0, time.UTC), got.NextPayments[0].DueDate)
	assert.Equal(t, "c", got.NextPayments[1].PropertyID)
	assert.Equal(t, 1, got.NextPayments[1].DaysLeft)
	assert.Equal(t, "a", got.NextPayments[2].PropertyID)
	assert.Equal(t, "Imóvel a", got.NextPayments[2].Label)
}

func TestGetSummary_MaximoCincoPagos(t *testing.T) {
	props := stubProperties{}
	for i, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		props = append(props, property(id, 28-i, "100", entity.PropertyStatusPending))
	}

	got, err := analytics.NewDashboardUseCase(props, stubTenants{}, stubDocuments{}, &stubMaintenance{}, engine()).
		GetSummary(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, got.NextPayments, 5)
	assert.Equal(t, "g", got.NextPayments[0].PropertyID)
	assert.Equal(t, 22, got.NextPayments[0].PaymentDay)
}

func TestGetSummary_ErrorManutencao(t *testing.T) {
	maint := &stubMaintenance{err: errors.New("relation does not exist")}
	_, err := analytics.NewDashboardUseCase(stubProperties{}, stubTenants{}, stubDocuments{}, maint, engine()).
		GetSummary(context.Background(), "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manutenção")
}
