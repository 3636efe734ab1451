package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentcare/rentcare-api/internal/application/dto"
	"github.com/rentcare/rentcare-api/internal/application/ports"
	"github.com/rentcare/rentcare-api/internal/domain"
	"github.com/rentcare/rentcare-api/internal/domain/entity"
	"github.com/rentcare/rentcare-api/internal/domain/reminder"
	"github.com/rentcare/rentcare-api/internal/domain/repository"
)

// sentTTL cubre el día del envío con margen para cambios de zona horaria.
const sentTTL = 48 * time.Hour

// TriggerConfig configuración del disparador.
type TriggerConfig struct {
	From    string   // remitente de los emails
	Missing []string // credenciales ausentes; si no está vacío Run falla con ErrNotConfigured
}

// TriggerDeps dependencias del disparador. SentLog es opcional (nil = sin deduplicación).
type TriggerDeps struct {
	Settings   repository.NotificationSettingsRepository
	Properties repository.PropertyRepository
	Tenants    repository.TenantRepository
	Documents  repository.DocumentRepository
	Users      repository.UserRepository
	Sender     ports.EmailSender
	SentLog    ports.SentLog
	Engine     *reminder.Engine
	Config     TriggerConfig
	Logger     zerolog.Logger
}

// TriggerUseCase recorre secuencialmente los propietarios con avisos activos y envía a cada uno
// su resumen. El fallo de un propietario se registra en su resultado y no detiene a los demás.
type TriggerUseCase struct {
	deps TriggerDeps
	log  zerolog.Logger
}

// NewTriggerUseCase construye el caso de uso.
func NewTriggerUseCase(deps TriggerDeps) *TriggerUseCase {
	if deps.Engine == nil {
		deps.Engine = reminder.NewEngine()
	}
	return &TriggerUseCase{deps: deps, log: deps.Logger.With().Str("component", "notifier").Logger()}
}

// Run ejecuta una pasada completa del disparador.
// Devuelve ErrNotConfigured si faltan credenciales del backend o del proveedor de email.
func (uc *TriggerUseCase) Run(ctx context.Context) (*dto.TriggerResponse, error) {
	if len(uc.deps.Config.Missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotConfigured, strings.Join(uc.deps.Config.Missing, ", "))
	}

	rows, err := uc.deps.Settings.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("notifier: listar preferencias: %w", err)
	}

	results := make(map[string]dto.DigestResult, len(rows))
	for _, s := range rows {
		res := uc.processLandlord(ctx, s)
		results[s.UserID] = res

		ev := uc.log.Info()
		if res.Reason != "" {
			ev = uc.log.Warn().Str("reason", res.Reason).Str("detail", res.Message)
		}
		ev.Str("user_id", s.UserID).Bool("sent", res.Sent).Int("count", res.Count).Msg("resumen procesado")
	}

	uc.log.Info().Int("landlords", len(rows)).Msg("disparador finalizado")
	return &dto.TriggerResponse{OK: true, Results: results}, nil
}

// Preview compone el resumen de un propietario sin enviarlo ni consultar el registro de envíos.
// Si el propietario no tiene preferencias guardadas se usan las de por defecto.
func (uc *TriggerUseCase) Preview(ctx context.Context, userID string) (Digest, error) {
	settings, err := uc.deps.Settings.GetByUser(ctx, userID)
	if err != nil {
		return Digest{}, fmt.Errorf("notifier: preferencias: %w", err)
	}
	s := entity.DefaultNotificationSettings(userID)
	if settings != nil {
		s = *settings
	}
	snap, err := uc.loadSnapshot(ctx, s)
	if err != nil {
		return Digest{}, err
	}
	return ComposeDigest(uc.deps.Engine, snap, nil)
}

func (uc *TriggerUseCase) processLandlord(ctx context.Context, s entity.NotificationSettings) dto.DigestResult {
	snap, err := uc.loadSnapshot(ctx, s)
	if err != nil {
		return dto.DigestResult{Sent: false, Reason: dto.ReasonLoadFailed, Message: err.Error()}
	}

	today := uc.deps.Engine.Today().Format("2006-01-02")
	var skip func(reminder.Event) bool
	if uc.deps.SentLog != nil {
		skip = func(ev reminder.Event) bool {
			sent, err := uc.deps.SentLog.WasSent(ctx, uc.sentKey(s.UserID, ev, today))
			if err != nil {
				uc.log.Warn().Err(err).Str("user_id", s.UserID).Msg("registro de envíos no disponible")
				return false
			}
			return sent
		}
	}

	digest, err := ComposeDigest(uc.deps.Engine, snap, skip)
	if err != nil {
		return dto.DigestResult{Sent: false, Reason: dto.ReasonSendFailed, Message: err.Error()}
	}
	if digest.Empty() {
		return dto.DigestResult{Sent: false, Count: 0}
	}
	count := len(digest.Events)

	to := uc.destination(ctx, s)
	if to == "" {
		return dto.DigestResult{Sent: false, Count: count, Reason: dto.ReasonNoEmail}
	}

	msg := ports.EmailMessage{From: uc.deps.Config.From, To: to, Subject: digest.Subject, HTML: digest.HTML}
	if err := uc.deps.Sender.Send(ctx, msg); err != nil {
		return dto.DigestResult{Sent: false, Count: count, Reason: dto.ReasonSendFailed, Message: err.Error()}
	}

	if uc.deps.SentLog != nil {
		keys := make([]string, 0, count)
		for _, ev := range digest.Events {
			keys = append(keys, uc.sentKey(s.UserID, ev, today))
		}
		if err := uc.deps.SentLog.MarkSent(ctx, keys, sentTTL); err != nil {
			uc.log.Warn().Err(err).Str("user_id", s.UserID).Msg("no se pudo registrar el envío")
		}
	}
	return dto.DigestResult{Sent: true, Count: count}
}

// loadSnapshot carga imóveis, inquilinos y documentos del propietario.
func (uc *TriggerUseCase) loadSnapshot(ctx context.Context, s entity.NotificationSettings) (LandlordSnapshot, error) {
	props, err := uc.deps.Properties.ListByUser(ctx, s.UserID)
	if err != nil {
		return LandlordSnapshot{}, fmt.Errorf("imóveis: %w", err)
	}
	tenants, err := uc.deps.Tenants.ListByUser(ctx, s.UserID)
	if err != nil {
		return LandlordSnapshot{}, fmt.Errorf("inquilinos: %w", err)
	}
	ids := make([]string, 0, len(props))
	for _, p := range props {
		ids = append(ids, p.ID)
	}
	docs, err := uc.deps.Documents.ListByProperties(ctx, ids)
	if err != nil {
		return LandlordSnapshot{}, fmt.Errorf("documentos: %w", err)
	}
	return LandlordSnapshot{
		UserID:     s.UserID,
		Settings:   s,
		Properties: props,
		Tenants:    tenants,
		Documents:  docs,
	}, nil
}

// destination email alternativo de las preferencias o, si no hay, el de la cuenta.
func (uc *TriggerUseCase) destination(ctx context.Context, s entity.NotificationSettings) string {
	if to := s.OverrideEmail(); to != "" {
		return to
	}
	user, err := uc.deps.Users.GetByID(ctx, s.UserID)
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", s.UserID).Msg("no se pudo obtener el email de la cuenta")
		return ""
	}
	if user == nil {
		return ""
	}
	return strings.TrimSpace(user.Email)
}

// sentKey identifica un aviso: propietario, evento, umbral cruzado y día del envío.
func (uc *TriggerUseCase) sentKey(userID string, ev reminder.Event, today string) string {
	return fmt.Sprintf("%s:%s:d%d:%s", userID, ev.ID, reminder.Threshold(uc.deps.Engine.DaysUntil(ev.Date)), today)
}
