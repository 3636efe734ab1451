// Package calendar expone los eventos de recordatorio de un propietario para la vista de
// calendario y la bandeja de próximos avisos.
package calendar

import (
	"context"
	"fmt"

	"github.com/rentcare/rentcare-api/internal/application/dto"
	"github.com/rentcare/rentcare-api/internal/domain/entity"
	"github.com/rentcare/rentcare-api/internal/domain/reminder"
	"github.com/rentcare/rentcare-api/internal/domain/repository"
)

// UseCase calcula los eventos bajo demanda; no persiste nada.
type UseCase struct {
	properties repository.PropertyRepository
	tenants    repository.TenantRepository
	documents  repository.DocumentRepository
	engine     *reminder.Engine
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	properties repository.PropertyRepository,
	tenants repository.TenantRepository,
	documents repository.DocumentRepository,
	engine *reminder.Engine,
) *UseCase {
	return &UseCase{properties: properties, tenants: tenants, documents: documents, engine: engine}
}

// List devuelve todos los eventos del propietario y los de la bandeja (0 a 5 días).
func (uc *UseCase) List(ctx context.Context, userID string) (*dto.RemindersResponse, error) {
	type propsResult struct {
		items []entity.Property
		err   error
	}
	type tenantsResult struct {
		items []entity.Tenant
		err   error
	}

	propsCh := make(chan propsResult, 1)
	tenantsCh := make(chan tenantsResult, 1)

	go func() {
		items, err := uc.properties.ListByUser(ctx, userID)
		propsCh <- propsResult{items, err}
	}()
	go func() {
		items, err := uc.tenants.ListByUser(ctx, userID)
		tenantsCh <- tenantsResult{items, err}
	}()

	props := <-propsCh
	tenants := <-tenantsCh
	if props.err != nil {
		return nil, fmt.Errorf("reminders: imóveis: %w", props.err)
	}
	if tenants.err != nil {
		return nil, fmt.Errorf("reminders: inquilinos: %w", tenants.err)
	}

	ids := make([]string, 0, len(props.items))
	for _, p := range props.items {
		ids = append(ids, p.ID)
	}
	docs, err := uc.documents.ListByProperties(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("reminders: documentos: %w", err)
	}

	events := uc.engine.BuildEvents(tenants.items, props.items, docs)
	inbox := uc.engine.Inbox(events)

	return &dto.RemindersResponse{
		Events:     uc.toDTOs(events),
		Inbox:      uc.toDTOs(inbox),
		InboxCount: len(inbox),
		TotalCount: len(events),
	}, nil
}

func (uc *UseCase) toDTOs(events []reminder.Event) []dto.ReminderEventDTO {
	out := make([]dto.ReminderEventDTO, 0, len(events))
	for _, ev := range events {
		days := uc.engine.DaysUntil(ev.Date)
		out = append(out, dto.ReminderEventDTO{
			ID:         ev.ID,
			Type:       string(ev.Kind),
			Date:       ev.Date,
			Title:      ev.Title,
			Line:       ev.Line,
			PropertyID: ev.PropertyID,
			TenantName: ev.TenantName,
			DaysLeft:   days,
			DueLabel:   reminder.DueLabel(days),
			Urgent:     days >= 0 && reminder.IsUrgent(days),
		})
	}
	return out
}
