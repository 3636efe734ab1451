package reminder

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentcare/rentcare-api/internal/domain/entity"
)

// Kind tipo de evento. El valor es la etiqueta usada en los avisos.
type Kind string

const (
	KindPayment     Kind = "Pagamento"
	KindContractEnd Kind = "FimContrato"
)

// Textos por defecto cuando falta información en la instantánea.
const (
	FallbackPropertyLabel = "Imóvel"
	FallbackTenantName    = "Inquilino"

	paymentTitle     = "Pagamento de renda"
	contractEndTitle = "Fim de contrato"
	lineSeparator    = " · "
)

// Event ocurrencia calculada (no persistida) de un vencimiento de renta o fin de contrato.
type Event struct {
	ID         string
	Kind       Kind
	Date       time.Time
	Title      string
	Line       string
	TenantID   string
	TenantName string
	PropertyID string
}

// PropertyLabel devuelve el título del imóvel, si no la dirección, si no "Imóvel".
func PropertyLabel(p *entity.Property) string {
	if p == nil {
		return FallbackPropertyLabel
	}
	if t := strings.TrimSpace(p.Title); t != "" {
		return t
	}
	if a := strings.TrimSpace(p.Address); a != "" {
		return a
	}
	return FallbackPropertyLabel
}

// FormatRent formatea un importe con dos decimales y símbolo de euro.
func FormatRent(amount decimal.Decimal) string {
	return "€" + amount.StringFixed(2)
}

// BuildEvents calcula los eventos de pago (uno por inquilino con día de pago válido) y de
// fin de contrato (uno por documento "Contrato" con fecha de expiración), ordenados por fecha.
// Las entradas incompletas se omiten sin error.
func (e *Engine) BuildEvents(tenants []entity.Tenant, properties []entity.Property, documents []entity.Document) []Event {
	byID := make(map[string]*entity.Property, len(properties))
	for i := range properties {
		byID[properties[i].ID] = &properties[i]
	}

	events := make([]Event, 0, len(tenants)+len(documents))

	for _, t := range tenants {
		if t.PaymentDay == nil {
			continue
		}
		date, ok := e.NextPaymentDate(*t.PaymentDay)
		if !ok {
			continue
		}
		var prop *entity.Property
		var propertyID string
		if t.PropertyID != nil {
			propertyID = *t.PropertyID
			prop = byID[propertyID]
		}
		parts := []string{t.Name}
		if prop != nil {
			parts = append(parts, PropertyLabel(prop))
		}
		if t.RentAmount != nil && !t.RentAmount.IsZero() {
			parts = append(parts, FormatRent(*t.RentAmount))
		}
		events = append(events, Event{
			ID:         "pay-" + t.ID,
			Kind:       KindPayment,
			Date:       date,
			Title:      paymentTitle,
			Line:       strings.Join(parts, lineSeparator),
			TenantID:   t.ID,
			TenantName: t.Name,
			PropertyID: propertyID,
		})
	}

	for _, d := range documents {
		if d.Type != entity.DocumentContract {
			continue
		}
		date, ok := e.ParseEventDate(d.ExpirationDate)
		if !ok {
			continue
		}
		tenantName := strings.TrimSpace(d.TenantName)
		if tenantName == "" {
			tenantName = FallbackTenantName
		}
		events = append(events, Event{
			ID:         "exp-" + d.ID,
			Kind:       KindContractEnd,
			Date:       date,
			Title:      contractEndTitle,
			Line:       strings.Join([]string{tenantName, PropertyLabel(byID[d.PropertyID]), d.FileName}, lineSeparator),
			TenantName: strings.TrimSpace(d.TenantName),
			PropertyID: d.PropertyID,
		})
	}

	SortByDate(events)
	return events
}

// PropertyPaymentEvents deriva eventos de pago directamente de los imóveis (sin proyección de
// inquilinos), usando PaymentDay del imóvel. Lo usa el widget de próximos pagos del dashboard.
func (e *Engine) PropertyPaymentEvents(properties []entity.Property) []Event {
	events := make([]Event, 0, len(properties))
	for i := range properties {
		p := &properties[i]
		date, ok := e.NextPaymentDate(p.PaymentDay)
		if !ok {
			continue
		}
		parts := []string{PropertyLabel(p)}
		if !p.RentAmount.IsZero() {
			parts = append(parts, FormatRent(p.RentAmount))
		}
		events = append(events, Event{
			ID:         "pay-property-" + p.ID,
			Kind:       KindPayment,
			Date:       date,
			Title:      paymentTitle,
			Line:       strings.Join(parts, lineSeparator),
			PropertyID: p.ID,
		})
	}
	SortByDate(events)
	return events
}

// SortByDate ordena ascendentemente por fecha; los empates conservan el orden de entrada.
func SortByDate(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}
