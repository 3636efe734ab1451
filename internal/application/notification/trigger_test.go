package notification_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentcare/rentcare-api/internal/application/dto"
	"github.com/rentcare/rentcare-api/internal/application/notification"
	"github.com/rentcare/rentcare-api/internal/application/ports"
	"github.com/rentcare/rentcare-api/internal/domain"
	"github.com/rentcare/rentcare-api/internal/domain/entity"
)

type fixture struct {
	settings   *fakeSettings
	properties *fakeProperties
	tenants    *fakeTenants
	documents  *fakeDocuments
	users      fakeUsers
	sender     *fakeSender
}

func newFixture() *fixture {
	return &fixture{
		settings:   &fakeSettings{},
		properties: &fakeProperties{byUser: map[string][]entity.Property{}, fail: map[string]bool{}},
		tenants:    &fakeTenants{byUser: map[string][]entity.Tenant{}},
		documents:  &fakeDocuments{},
		users:      fakeUsers{},
		sender:     &fakeSender{failFor: map[string]bool{}},
	}
}

func (f *fixture) useCase(sentLog ports.SentLog, missing ...string) *notification.TriggerUseCase {
	return notification.NewTriggerUseCase(notification.TriggerDeps{
		Settings:   f.settings,
		Properties: f.properties,
		Tenants:    f.tenants,
		Documents:  f.documents,
		Users:      f.users,
		Sender:     f.sender,
		SentLog:    sentLog,
		Engine:     testEngine(now),
		Config:     notification.TriggerConfig{From: "no-reply@rentcare.local", Missing: missing},
		Logger:     zerolog.Nop(),
	})
}

// addLandlord registra un propietario con avisos activos e inquilinos a 1 y 5 días.
func (f *fixture) addLandlord(userID, override string) {
	s := allThresholds(userID)
	s.Email = override
	f.settings.rows = append(f.settings.rows, s)
	f.tenants.byUser[userID] = landlordTenants()
}

func TestRun_SinConfiguracion(t *testing.T) {
	f := newFixture()
	f.addLandlord("u1", "a@x.pt")

	resp, err := f.useCase(nil, "RESEND_API_KEY").Run(context.Background())

	require.ErrorIs(t, err, domain.ErrNotConfigured)
	assert.Nil(t, resp)
	assert.Empty(t, f.sender.sent)
}

func TestRun_SinEventosNoEnvia(t *testing.T) {
	f := newFixture()
	f.settings.rows = append(f.settings.rows, allThresholds("u1"))
	f.tenants.byUser["u1"] = []entity.Tenant{{ID: "t", Name: "Ana", PaymentDay: intPtr(20)}}

	resp, err := f.useCase(nil).Run(context.Background())

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, dto.DigestResult{Sent: false, Count: 0}, resp.Results["u1"])
	assert.Empty(t, f.sender.sent)
}

func TestRun_IgnoraPropietariosDesactivados(t *testing.T) {
	f := newFixture()
	off := allThresholds("u1")
	off.EmailEnabled = false
	f.settings.rows = append(f.settings.rows, off)
	f.tenants.byUser["u1"] = landlordTenants()

	resp, err := f.useCase(nil).Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Empty(t, f.sender.sent)
}

func TestRun_FallosAisladosPorPropietario(t *testing.T) {
	f := newFixture()
	f.addLandlord("ok", "ok@x.pt")
	f.addLandlord("bounce", "bounce@x.pt")
	f.addLandlord("sem-email", "")
	f.addLandlord("db", "db@x.pt")
	f.sender.failFor["bounce@x.pt"] = true
	f.properties.fail["db"] = true

	resp, err := f.useCase(nil).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Results, 4)

	assert.Equal(t, dto.DigestResult{Sent: true, Count: 2}, resp.Results["ok"])

	bounce := resp.Results["bounce"]
	assert.False(t, bounce.Sent)
	assert.Equal(t, 2, bounce.Count)
	assert.Equal(t, dto.ReasonSendFailed, bounce.Reason)
	assert.Contains(t, bounce.Message, "422")

	assert.Equal(t, dto.DigestResult{Sent: false, Count: 2, Reason: dto.ReasonNoEmail}, resp.Results["sem-email"])
	assert.Equal(t, dto.ReasonLoadFailed, resp.Results["db"].Reason)

	require.Len(t, f.sender.sent, 1)
	msg := f.sender.sent[0]
	assert.Equal(t, "ok@x.pt", msg.To)
	assert.Equal(t, "no-reply@rentcare.local", msg.From)
	assert.Equal(t, "Lembretes RentCare (2)", msg.Subject)
}

func TestRun_UsaEmailDeLaCuenta(t *testing.T) {
	f := newFixture()
	f.addLandlord("u1", "   ")
	f.users["u1"] = &entity.User{ID: "u1", Email: " dono@x.pt "}

	resp, err := f.useCase(nil).Run(context.Background())

	require.NoError(t, err)
	assert.True(t, resp.Results["u1"].Sent)
	require.Len(t, f.sender.sent, 1)
	assert.Equal(t, "dono@x.pt", f.sender.sent[0].To)
}

func TestRun_IncluyeFinDeContrato(t *testing.T) {
	f := newFixture()
	f.settings.rows = append(f.settings.rows, allThresholds("u1"))
	f.properties.byUser["u1"] = []entity.Property{{ID: "p1", Title: "Casa Azul"}}
	f.documents.docs = []entity.Document{
		{ID: "d1", PropertyID: "p1", Type: entity.DocumentContract, FileName: "c.pdf", ExpirationDate: "2026-11-01"},
		{ID: "d2", PropertyID: "p-de-outro", Type: entity.DocumentContract, FileName: "x.pdf", ExpirationDate: "2026-11-01"},
	}
	f.users["u1"] = &entity.User{ID: "u1", Email: "dono@x.pt"}

	resp, err := f.useCase(nil).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, dto.DigestResult{Sent: true, Count: 1}, resp.Results["u1"])
	require.Len(t, f.sender.sent, 1)
	assert.Contains(t, f.sender.sent[0].HTML, "Inquilino · Casa Azul · c.pdf")
}

func TestRun_RegistroDeEnviosEvitaDuplicados(t *testing.T) {
	f := newFixture()
	f.addLandlord("u1", "a@x.pt")
	uc := f.useCase(newMemSentLog())

	first, err := uc.Run(context.Background())
	require.NoError(t, err)
	second, err := uc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dto.DigestResult{Sent: true, Count: 2}, first.Results["u1"])
	assert.Equal(t, dto.DigestResult{Sent: false, Count: 0}, second.Results["u1"])
	assert.Len(t, f.sender.sent, 1)
}

func TestRun_FalloDeEnvioNoSeRegistra(t *testing.T) {
	f := newFixture()
	f.addLandlord("u1", "a@x.pt")
	f.sender.failFor["a@x.pt"] = true
	uc := f.useCase(newMemSentLog())

	_, err := uc.Run(context.Background())
	require.NoError(t, err)

	f.sender.failFor["a@x.pt"] = false
	resp, err := uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.DigestResult{Sent: true, Count: 2}, resp.Results["u1"], "el reintento envía lo que falló")
}

func TestRun_SinRegistroSeRepite(t *testing.T) {
	f := newFixture()
	f.addLandlord("u1", "a@x.pt")
	uc := f.useCase(nil)

	_, err := uc.Run(context.Background())
	require.NoError(t, err)
	_, err = uc.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, f.sender.sent, 2)
}

func TestPreview_PreferenciasPorDefecto(t *testing.T) {
	f := newFixture()
	f.tenants.byUser["u1"] = landlordTenants()

	d, err := f.useCase(nil).Preview(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, d.Events, 2)
	assert.Equal(t, "Lembretes RentCare (2)", d.Subject)
	assert.Empty(t, f.sender.sent)
}
