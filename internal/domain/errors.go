package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrNotConfigured = errors.New("servicio no configurado")
	ErrSendFailed    = errors.New("falló el envío del email")
)
