// Package analytics contiene los casos de uso de las tarjetas de estadísticas del dashboard.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rentcare/rentcare-api/internal/application/dto"
	"github.com/rentcare/rentcare-api/internal/domain/entity"
	"github.com/rentcare/rentcare-api/internal/domain/reminder"
	"github.com/rentcare/rentcare-api/internal/domain/repository"
)

const dashboardNextPayments = 5 // número de pagos en el widget del dashboard

// DashboardUseCase genera el resumen del propietario.
//
// Fuente de datos: repositorios de lectura (imóveis, inquilinos, documentos, manutenção).
// Los eventos se calculan con el motor de recordatorios; nada se persiste.
type DashboardUseCase struct {
	properties  repository.PropertyRepository
	tenants     repository.TenantRepository
	documents   repository.DocumentRepository
	maintenance repository.MaintenanceRepository
	engine      *reminder.Engine
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	properties repository.PropertyRepository,
	tenants repository.TenantRepository,
	documents repository.DocumentRepository,
	maintenance repository.MaintenanceRepository,
	engine *reminder.Engine,
) *DashboardUseCase {
	return &DashboardUseCase{
		properties:  properties,
		tenants:     tenants,
		documents:   documents,
		maintenance: maintenance,
		engine:      engine,
	}
}

// GetSummary construye el DashboardSummaryDTO del propietario.
//
// Tres llamadas en paralelo:
//  1. imóveis          → renta total, estados, próximos pagos
//  2. inquilinos       → eventos de pago
//  3. manutenção       → ocorrências "Por resolver"
//
// Los documentos dependen de los ids de imóveis y se cargan después.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, userID string) (*dto.DashboardSummaryDTO, error) {
	type propsResult struct {
		items []entity.Property
		err   error
	}
	type tenantsResult struct {
		items []entity.Tenant
		err   error
	}
	type countResult struct {
		n   int
		err error
	}

	propsCh := make(chan propsResult, 1)
	tenantsCh := make(chan tenantsResult, 1)
	maintCh := make(chan countResult, 1)

	go func() {
		items, err := uc.properties.ListByUser(ctx, userID)
		propsCh <- propsResult{items, err}
	}()
	go func() {
		items, err := uc.tenants.ListByUser(ctx, userID)
		tenantsCh <- tenantsResult{items, err}
	}()
	go func() {
		n, err := uc.maintenance.CountByStatus(ctx, userID, entity.MaintenanceOpen)
		maintCh <- countResult{n, err}
	}()

	props := <-propsCh
	tenants := <-tenantsCh
	maint := <-maintCh

	if props.err != nil {
		return nil, fmt.Errorf("dashboard: imóveis: %w", props.err)
	}
	if tenants.err != nil {
		return nil, fmt.Errorf("dashboard: inquilinos: %w", tenants.err)
	}
	if maint.err != nil {
		return nil, fmt.Errorf("dashboard: manutenção: %w", maint.err)
	}

	ids := make([]string, 0, len(props.items))
	for _, p := range props.items {
		ids = append(ids, p.ID)
	}
	docs, err := uc.documents.ListByProperties(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("dashboard: documentos: %w", err)
	}

	// ── Tarjetas ───────────────────────────────────────────────────────────────
	totalRent := decimal.Zero
	var late, paid int
	for _, p := range props.items {
		totalRent = totalRent.Add(p.RentAmount)
		switch p.Status {
		case entity.PropertyStatusLate:
			late++
		case entity.PropertyStatusPaid:
			paid++
		}
	}

	events := uc.engine.BuildEvents(tenants.items, props.items, docs)

	return &dto.DashboardSummaryDTO{
		PropertiesCount:         len(props.items),
		TenantsCount:            len(tenants.items),
		DocumentsCount:          len(docs),
		MaintenancePendingCount: maint.n,
		TotalRent:               totalRent.Round(2),
		LateCount:               late,
		PaidCount:               paid,
		UpcomingInboxCount:      len(uc.engine.Inbox(events)),
		NextPayments:            uc.nextPayments(props.items),
	}, nil
}

// nextPayments imóveis con día de pago válido ordenados por día del mes (los 5 primeros).
func (uc *DashboardUseCase) nextPayments(props []entity.Property) []dto.NextPaymentDTO {
	byID := make(map[string]entity.Property, len(props))
	for _, p := range props {
		byID[p.ID] = p
	}

	out := make([]dto.NextPaymentDTO, 0, dashboardNextPayments)
	for _, ev := range uc.engine.PropertyPaymentEvents(props) {
		p := byID[ev.PropertyID]
		out = append(out, dto.NextPaymentDTO{
			PropertyID: p.ID,
			Label:      reminder.PropertyLabel(&p),
			RentAmount: p.RentAmount,
			PaymentDay: p.PaymentDay,
			DueDate:    ev.Date,
			DaysLeft:   uc.engine.DaysUntil(ev.Date),
			Status:     p.Status,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PaymentDay < out[j].PaymentDay })
	if len(out) > dashboardNextPayments {
		out = out[:dashboardNextPayments]
	}
	return out
}
