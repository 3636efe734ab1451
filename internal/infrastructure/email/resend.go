// Package email contiene los adaptadores del puerto EmailSender (Resend, SendGrid y log).
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rentcare/rentcare-api/internal/application/ports"
	"github.com/rentcare/rentcare-api/internal/domain"
)

// Verificar en tiempo de compilación que ResendSender implementa EmailSender.
var _ ports.EmailSender = (*ResendSender)(nil)

const resendEmailsURL = "https://api.resend.com/emails"

// ResendSender adaptador sobre la API REST de Resend (POST /emails).
type ResendSender struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewResendSender construye el adaptador. endpoint vacío usa la URL pública de Resend.
func NewResendSender(apiKey, endpoint string) *ResendSender {
	if endpoint == "" {
		endpoint = resendEmailsURL
	}
	return &ResendSender{
		apiKey:     apiKey,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type resendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Send envía un único mensaje. Una respuesta no 2xx devuelve "Resend error: <status> <cuerpo>".
func (s *ResendSender) Send(ctx context.Context, msg ports.EmailMessage) error {
	if s.apiKey == "" {
		return fmt.Errorf("%w: RESEND_API_KEY", domain.ErrNotConfigured)
	}

	body, err := json.Marshal(resendRequest{From: msg.From, To: msg.To, Subject: msg.Subject, HTML: msg.HTML})
	if err != nil {
		return fmt.Errorf("resend: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("resend: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: resend: %v", domain.ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("%w: Resend error: %d %s", domain.ErrSendFailed, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
