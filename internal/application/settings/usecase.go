// Package settings gestiona las preferencias de aviso por email de cada propietario.
package settings

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/rentcare/rentcare-api/internal/application/dto"
	"github.com/rentcare/rentcare-api/internal/domain"
	"github.com/rentcare/rentcare-api/internal/domain/entity"
	"github.com/rentcare/rentcare-api/internal/domain/repository"
)

// UseCase lee y actualiza la fila de preferencias; la crea con valores por defecto si no existe.
type UseCase struct {
	repo  repository.NotificationSettingsRepository
	users repository.UserRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.NotificationSettingsRepository, users repository.UserRepository) *UseCase {
	return &UseCase{repo: repo, users: users}
}

// Get devuelve las preferencias del propietario. La primera lectura persiste los valores por defecto.
func (uc *UseCase) Get(ctx context.Context, userID string) (*dto.NotificationSettingsResponse, error) {
	s, err := uc.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, s), nil
}

// Update aplica solo los campos presentes en la petición.
// Un email vacío elimina el destino alternativo; uno no vacío debe ser una dirección simple válida.
func (uc *UseCase) Update(ctx context.Context, userID string, in dto.UpdateNotificationSettingsRequest) (*dto.NotificationSettingsResponse, error) {
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email != "" {
			addr, err := mail.ParseAddress(email)
			if err != nil || addr.Address != email {
				return nil, fmt.Errorf("%w: email %q", domain.ErrInvalidInput, email)
			}
		}
		in.Email = &email
	}

	s, err := uc.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.EmailEnabled != nil {
		s.EmailEnabled = *in.EmailEnabled
	}
	if in.Notify5Days != nil {
		s.Notify5Days = *in.Notify5Days
	}
	if in.Notify1Day != nil {
		s.Notify1Day = *in.Notify1Day
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("settings: actualizar: %w", err)
	}
	return uc.toResponse(ctx, s), nil
}

func (uc *UseCase) getOrCreate(ctx context.Context, userID string) (*entity.NotificationSettings, error) {
	s, err := uc.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("settings: leer: %w", err)
	}
	if s != nil {
		return s, nil
	}
	def := entity.DefaultNotificationSettings(userID)
	if err := uc.repo.Create(ctx, &def); err != nil {
		return nil, fmt.Errorf("settings: crear: %w", err)
	}
	return &def, nil
}

// toResponse resuelve el destino efectivo igual que el disparador.
func (uc *UseCase) toResponse(ctx context.Context, s *entity.NotificationSettings) *dto.NotificationSettingsResponse {
	sendTo := s.OverrideEmail()
	if sendTo == "" && uc.users != nil {
		if u, err := uc.users.GetByID(ctx, s.UserID); err == nil && u != nil {
			sendTo = strings.TrimSpace(u.Email)
		}
	}
	return &dto.NotificationSettingsResponse{
		EmailEnabled: s.EmailEnabled,
		Notify5Days:  s.Notify5Days,
		Notify1Day:   s.Notify1Day,
		Email:        s.Email,
		SendTo:       sendTo,
	}
}
