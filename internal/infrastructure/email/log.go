package email

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rentcare/rentcare-api/internal/application/ports"
)

var _ ports.EmailSender = (*LogSender)(nil)

// LogSender escribe los mensajes en el log en lugar de enviarlos (desarrollo).
type LogSender struct {
	log zerolog.Logger
}

// NewLogSender construye el adaptador.
func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log.With().Str("component", "email.log").Logger()}
}

func (s *LogSender) Send(_ context.Context, msg ports.EmailMessage) error {
	s.log.Info().
		Str("from", msg.From).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("html_bytes", len(msg.HTML)).
		Msg("email no enviado (proveedor log)")
	s.log.Debug().Str("to", msg.To).Msg(msg.HTML)
	return nil
}
