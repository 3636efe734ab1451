package dto

// Motivos de no envío de un resumen.
const (
	ReasonNoEmail    = "no_email"
	ReasonSendFailed = "send_failed"
	ReasonLoadFailed = "load_failed"
)

// DigestResult resultado del disparador para un propietario.
type DigestResult struct {
	Sent    bool   `json:"sent"`
	Count   int    `json:"count"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// TriggerResponse respuesta del disparador: resultados por user_id.
type TriggerResponse struct {
	OK      bool                    `json:"ok"`
	Results map[string]DigestResult `json:"results"`
}

// TriggerErrorResponse respuesta cuando falta configuración (fatal para toda la invocación).
type TriggerErrorResponse struct {
	OK      bool            `json:"ok"`
	Error   string          `json:"error"`
	Details map[string]bool `json:"details,omitempty"`
}
