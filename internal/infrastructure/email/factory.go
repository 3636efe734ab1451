package email

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rentcare/rentcare-api/internal/application/ports"
	"github.com/rentcare/rentcare-api/pkg/config"
)

// NewSender devuelve el adaptador del proveedor configurado en EMAIL_PROVIDER.
func NewSender(cfg config.EmailConfig, log zerolog.Logger) (ports.EmailSender, error) {
	switch cfg.Provider {
	case config.EmailProviderResend:
		return NewResendSender(cfg.ResendAPIKey, ""), nil
	case config.EmailProviderSendGrid:
		return NewSendGridSender(cfg.SendGridAPIKey, ""), nil
	case config.EmailProviderLog:
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("email: proveedor desconocido %q", cfg.Provider)
	}
}
