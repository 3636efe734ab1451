package reminder_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentcare/rentcare-api/internal/domain/entity"
	"github.com/rentcare/rentcare-api/internal/domain/reminder"
)

func TestPropertyLabel(t *testing.T) {
	assert.Equal(t, "Casa Azul", reminder.PropertyLabel(&entity.Property{Title: "Casa Azul", Address: "Rua X"}))
	assert.Equal(t, "Rua X", reminder.PropertyLabel(&entity.Property{Address: "Rua X"}))
	assert.Equal(t, "Rua X", reminder.PropertyLabel(&entity.Property{Title: "  ", Address: "Rua X"}))
	assert.Equal(t, "Imóvel", reminder.PropertyLabel(&entity.Property{}))
	assert.Equal(t, "Imóvel", reminder.PropertyLabel(nil))
}

func TestBuildEvents_LineaDePago(t *testing.T) {
	e := engineAt(baseNow)
	props := []entity.Property{
		{ID: "p1", Title: "Casa Azul", Address: "Rua X"},
		{ID: "p2", Address: "Rua Y"},
	}
	tenants := []entity.Tenant{
		{ID: "t1", Name: "Ana", PropertyID: strPtr("p1"), RentAmount: decPtr(750), PaymentDay: intPtr(25)},
		{ID: "t2", Name: "Bruno", PropertyID: strPtr("p2"), PaymentDay: intPtr(26)},
		{ID: "t3", Name: "Carla", PaymentDay: intPtr(27), RentAmount: decPtr(0)},
	}

	events := e.BuildEvents(tenants, props, nil)
	require.Len(t, events, 3)

	assert.Equal(t, "pay-t1", events[0].ID)
	assert.Equal(t, reminder.KindPayment, events[0].Kind)
	assert.Equal(t, "Ana · Casa Azul · €750.00", events[0].Line)
	assert.Equal(t, "p1", events[0].PropertyID)
	assert.Equal(t, "Bruno · Rua Y", events[1].Line, "sin título se usa la dirección")
	assert.Equal(t, "Carla", events[2].Line, "sin imóvel ni renta solo el nombre")
}

func TestBuildEvents_RentaConDecimales(t *testing.T) {
	e := engineAt(baseNow)
	rent := decimal.RequireFromString("612.5")
	events := e.BuildEvents([]entity.Tenant{{ID: "t1", Name: "Ana", RentAmount: &rent, PaymentDay: intPtr(20)}}, nil, nil)
	require.Len(t, events, 1)
	assert.Equal(t, "Ana · €612.50", events[0].Line)
}

func TestBuildEvents_DiaDePagoInvalidoNoGeneraEvento(t *testing.T) {
	e := engineAt(baseNow)
	tenants := []entity.Tenant{
		{ID: "t1", Name: "Sem dia"},
		{ID: "t2", Name: "Zero", PaymentDay: intPtr(0)},
		{ID: "t3", Name: "Fora", PaymentDay: intPtr(32)},
	}
	assert.Empty(t, e.BuildEvents(tenants, nil, nil))
}

func TestBuildEvents_FinDeContrato(t *testing.T) {
	e := engineAt(baseNow)
	props := []entity.Property{{ID: "p1", Title: "Casa Azul", Address: "Rua X"}}
	docs := []entity.Document{
		{ID: "d1", PropertyID: "p1", Type: entity.DocumentContract, FileName: "contrato.pdf", TenantName: "Ana", ExpirationDate: "2026-11-30"},
		{ID: "d2", PropertyID: "p9", Type: entity.DocumentContract, FileName: "c2.pdf", ExpirationDate: "2026-12-01"},
		{ID: "d3", PropertyID: "p1", Type: entity.DocumentReceipt, FileName: "recibo.pdf", ExpirationDate: "2026-11-01"},
		{ID: "d4", PropertyID: "p1", Type: entity.DocumentContract, FileName: "sem-data.pdf"},
		{ID: "d5", PropertyID: "p1", Type: entity.DocumentContract, FileName: "lixo.pdf", ExpirationDate: "amanhã"},
	}

	events := e.BuildEvents(nil, props, docs)
	require.Len(t, events, 2)

	assert.Equal(t, "exp-d1", events[0].ID)
	assert.Equal(t, reminder.KindContractEnd, events[0].Kind)
	assert.Equal(t, date(2026, time.November, 30), events[0].Date)
	assert.Equal(t, "Ana · Casa Azul · contrato.pdf", events[0].Line)
	assert.Equal(t, "Inquilino · Imóvel · c2.pdf", events[1].Line, "fallbacks de inquilino e imóvel")
}

func TestBuildEvents_OrdenCronologico(t *testing.T) {
	e := engineAt(baseNow)
	docs := []entity.Document{
		{ID: "d10", Type: entity.DocumentContract, FileName: "a", ExpirationDate: "2026-10-29"},
		{ID: "d2", Type: entity.DocumentContract, FileName: "b", ExpirationDate: "2026-10-21"},
		{ID: "d7", Type: entity.DocumentContract, FileName: "c", ExpirationDate: "2026-10-26"},
	}
	tenants := []entity.Tenant{{ID: "t1", Name: "Ana", PaymentDay: intPtr(23)}}

	events := e.BuildEvents(tenants, nil, docs)
	ids := make([]string, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.ID)
	}
	assert.Equal(t, []string{"exp-d2", "pay-t1", "exp-d7", "exp-d10"}, ids)
}

func TestPropertyPaymentEvents(t *testing.T) {
	e := engineAt(baseNow)
	props := []entity.Property{
		{ID: "p1", Title: "Casa Azul", PaymentDay: 8, RentAmount: decimal.NewFromInt(900)},
		{ID: "p2", Address: "Rua Y", PaymentDay: 20},
		{ID: "p3", Address: "Sem dia"},
	}

	events := e.PropertyPaymentEvents(props)
	require.Len(t, events, 2)
	assert.Equal(t, "Rua Y", events[0].Line)
	assert.Equal(t, date(2026, time.October, 20), events[0].Date)
	assert.Equal(t, "Casa Azul · €900.00", events[1].Line)
	assert.Equal(t, date(2026, time.November, 8), events[1].Date)
}

func TestBuildEvents_FinDeContratoConTimestamptz(t *testing.T) {
	e := engineAt(baseNow)
	docs := []entity.Document{
		{ID: "d1", PropertyID: "p1", Type: entity.DocumentContract, FileName: "contrato.pdf", TenantName: "Ana", ExpirationDate: "2026-10-24 00:00:00+00"},
	}

	events := e.BuildEvents(nil, nil, docs)
	require.Len(t, events, 1)
	assert.Equal(t, "exp-d1", events[0].ID)
	assert.Equal(t, 5, e.DaysUntil(events[0].Date))
	assert.Len(t, e.SelectNotifiable(events, entity.NotificationSettings{Notify5Days: true}), 1)
}

func TestBuildEvents_InquilinoSinDiaNoUsaElDelImovel(t *testing.T) {
	e := engineAt(baseNow)
	props := []entity.Property{{ID: "p1", Title: "Casa Azul", PaymentDay: 25}}
	tenants := []entity.Tenant{{ID: "t1", Name: "Ana", PropertyID: strPtr("p1")}}

	assert.Empty(t, e.BuildEvents(tenants, props, nil))
}
