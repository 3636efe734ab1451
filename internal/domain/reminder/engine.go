// Package reminder calcula los eventos de recordatorio (vencimientos de renta y fin de
// contrato) a partir de una instantánea de imóveis, inquilinos y documentos.
// Todas las operaciones son funciones puras sobre la entrada más la hora actual.
package reminder

import (
	"math"
	"strings"
	"time"
)

const msPerDay = 24 * 60 * 60 * 1000

// OverflowPolicy decide qué fecha producir cuando el día de pago no existe en el mes
// (ej. día 31 en febrero).
type OverflowPolicy int

const (
	// OverflowRoll desborda al mes siguiente como la aritmética de fechas nativa:
	// 31 de febrero → 3 de marzo (2 en años bisiestos).
	OverflowRoll OverflowPolicy = iota
	// OverflowClamp ajusta al último día del mes: 31 de febrero → 28/29 de febrero.
	OverflowClamp
)

// Engine motor de recordatorios. El reloj y la zona horaria son inyectables para tests.
type Engine struct {
	now      func() time.Time
	loc      *time.Location
	overflow OverflowPolicy
}

// Option configura el Engine.
type Option func(*Engine)

// WithClock fija la función que devuelve la hora actual.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLocation fija la zona horaria que define la "fecha local".
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithOverflowPolicy fija la política para días inexistentes en el mes.
func WithOverflowPolicy(p OverflowPolicy) Option {
	return func(e *Engine) { e.overflow = p }
}

// NewEngine construye el motor. Por defecto: time.Now, time.Local y OverflowRoll.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now, loc: time.Local, overflow: OverflowRoll}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now devuelve la hora actual en la zona del motor.
func (e *Engine) Now() time.Time {
	return e.now().In(e.loc)
}

// Location zona horaria del motor.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Today devuelve la medianoche local de hoy.
func (e *Engine) Today() time.Time {
	now := e.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, e.loc)
}

// NextPaymentDate devuelve la próxima fecha de pago (medianoche local) para el día del mes dado.
// Si el día de este mes ya pasó se usa el mismo día del mes siguiente; hoy cuenta como vigente.
// Días fuera de [1,31] devuelven ok=false.
func (e *Engine) NextPaymentDate(paymentDay int) (time.Time, bool) {
	if paymentDay < 1 || paymentDay > 31 {
		return time.Time{}, false
	}
	today := e.Today()
	candidate := e.dateInMonth(today.Year(), today.Month(), paymentDay)
	if candidate.Before(today) {
		return e.dateInMonth(today.Year(), today.Month()+1, paymentDay), true
	}
	return candidate, true
}

func (e *Engine) dateInMonth(year int, month time.Month, day int) time.Time {
	if e.overflow == OverflowClamp {
		if last := daysIn(year, month, e.loc); day > last {
			day = last
		}
	}
	// time.Date normaliza meses > 12 y días desbordados.
	return time.Date(year, month, day, 0, 0, 0, 0, e.loc)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// DaysUntil devuelve ceil((target - ahora) / 1 día) con precisión de milisegundos.
// Una fecha de hoy cuya hora ya pasó da 0; ayer da -1; mañana a medianoche da 1.
func (e *Engine) DaysUntil(target time.Time) int {
	diff := target.Sub(e.now()).Milliseconds()
	d := int(math.Ceil(float64(diff) / msPerDay))
	if d == 0 {
		return 0 // evita -0
	}
	return d
}

// ParseEventDate interpreta una fecha ISO. Fechas sin hora (YYYY-MM-DD) son medianoche UTC,
// fechas con hora sin zona son hora local del motor, y RFC 3339 conserva su offset.
// También acepta el texto de un timestamptz de Postgres ("2026-10-24 00:00:00+00").
func (e *Engine) ParseEventDate(iso string) (time.Time, bool) {
	s := strings.TrimSpace(iso)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05Z07", "2006-01-02 15:04:05Z07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range []string{"2006-01-02T15:04:05.999999999", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, e.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
