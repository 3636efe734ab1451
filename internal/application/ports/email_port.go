package ports

import "context"

// EmailMessage mensaje transaccional ya renderizado.
type EmailMessage struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// EmailSender puerto de salida hacia el proveedor de email (Resend, SendGrid, log).
// Un error significa que el proveedor no aceptó el mensaje (ej. respuesta no 2xx).
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}
