// Package notification compone y envía el resumen diario de avisos por email a cada propietario.
package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/rentcare/rentcare-api/internal/domain/entity"
	"github.com/rentcare/rentcare-api/internal/domain/reminder"
)

const digestDateLayout = "02/01/2006" // pt-PT

var digestTmpl = template.Must(template.New("digest").Parse(`
<div style="font-family: system-ui, -apple-system, Segoe UI, Roboto, Ubuntu, Cantarell, Noto Sans, sans-serif; color: #0f172a;">
  <h2 style="margin: 0 0 12px;">Lembretes RentCare</h2>
  <p>Tem eventos a ocorrer em breve:</p>
  <ul>{{range .}}<li><strong>{{.Kind}}</strong> · {{.When}} · {{.Line}}</li>{{end}}</ul>
  <p style="color:#64748b;">Pode configurar estes avisos em Dashboard → Definições.</p>
</div>
`))

type digestLine struct {
	Kind string
	When string
	Line string
}

// FormatDigest genera asunto y cuerpo HTML para los eventos dados (en el orden recibido).
// Las fechas se muestran en la zona loc. El texto de cada línea se escapa.
func FormatDigest(events []reminder.Event, loc *time.Location) (subject, html string, err error) {
	if loc == nil {
		loc = time.Local
	}
	lines := make([]digestLine, 0, len(events))
	for _, ev := range events {
		lines = append(lines, digestLine{
			Kind: string(ev.Kind),
			When: ev.Date.In(loc).Format(digestDateLayout),
			Line: ev.Line,
		})
	}
	var buf bytes.Buffer
	if err := digestTmpl.Execute(&buf, lines); err != nil {
		return "", "", fmt.Errorf("renderizar digest: %w", err)
	}
	return fmt.Sprintf("Lembretes RentCare (%d)", len(events)), buf.String(), nil
}

// LandlordSnapshot datos de un propietario necesarios para componer su resumen.
type LandlordSnapshot struct {
	UserID     string
	Settings   entity.NotificationSettings
	Properties []entity.Property
	Tenants    []entity.Tenant
	Documents  []entity.Document
}

// Digest resumen compuesto para un propietario. Subject y HTML vacíos si no hay eventos.
type Digest struct {
	UserID  string
	Events  []reminder.Event
	Subject string
	HTML    string
}

// Empty indica que no hay nada que enviar; en ese caso no se llama al proveedor.
func (d Digest) Empty() bool { return len(d.Events) == 0 }

// ComposeDigest función pura por propietario: eventos → filtro de umbrales → omitir los ya
// enviados (skip puede ser nil) → orden por fecha → formato.
func ComposeDigest(engine *reminder.Engine, snap LandlordSnapshot, skip func(reminder.Event) bool) (Digest, error) {
	events := engine.BuildEvents(snap.Tenants, snap.Properties, snap.Documents)
	notifiable := engine.SelectNotifiable(events, snap.Settings)

	out := make([]reminder.Event, 0, len(notifiable))
	for _, ev := range notifiable {
		if skip != nil && skip(ev) {
			continue
		}
		out = append(out, ev)
	}
	reminder.SortByDate(out)

	d := Digest{UserID: snap.UserID, Events: out}
	if d.Empty() {
		return d, nil
	}
	subject, html, err := FormatDigest(out, engine.Location())
	if err != nil {
		return Digest{}, err
	}
	d.Subject = subject
	d.HTML = html
	return d, nil
}
