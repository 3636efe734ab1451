package email

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/rentcare/rentcare-api/internal/application/ports"
	"github.com/rentcare/rentcare-api/internal/domain"
)

var _ ports.EmailSender = (*SendGridSender)(nil)

var (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendGridSender adaptador sobre la API v3 de SendGrid.
type SendGridSender struct {
	key  string
	host string
}

// NewSendGridSender construye el adaptador. host vacío usa la API pública.
func NewSendGridSender(apiKey, host string) *SendGridSender {
	if host == "" {
		host = sendgridHost
	}
	return &SendGridSender{key: apiKey, host: host}
}

func (s *SendGridSender) prepare(msg ports.EmailMessage) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(sgEmail(msg.To))

	m := sgmail.NewV3Mail()
	m.SetFrom(sgEmail(msg.From))
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/html", msg.HTML))
	return m
}

// sgEmail admite "Nombre <addr>" o una dirección simple.
func sgEmail(raw string) *sgmail.Email {
	if addr, err := mail.ParseAddress(raw); err == nil {
		return sgmail.NewEmail(addr.Name, addr.Address)
	}
	return sgmail.NewEmail("", raw)
}

// Send envía el mensaje; status >= 400 se devuelve como error con el cuerpo de la respuesta.
// El cliente de SendGrid no acepta context; se comprueba la cancelación antes de enviar.
func (s *SendGridSender) Send(ctx context.Context, msg ports.EmailMessage) error {
	if s.key == "" {
		return fmt.Errorf("%w: SENDGRID_API_KEY", domain.ErrNotConfigured)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	req := sendgrid.GetRequest(s.key, sendgridEndpoint, s.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(s.prepare(msg))

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("%w: sendgrid: %v", domain.ErrSendFailed, err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: SendGrid error: %d %s", domain.ErrSendFailed, res.StatusCode, res.Body)
	}
	return nil
}
