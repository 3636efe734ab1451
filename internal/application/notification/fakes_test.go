package notification_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rentcare/rentcare-api/internal/application/ports"
	"github.com/rentcare/rentcare-api/internal/domain/entity"
)

var errBackend = errors.New("backend caído")

type fakeSettings struct {
	rows []entity.NotificationSettings
}

func (f *fakeSettings) ListEnabled(_ context.Context) ([]entity.NotificationSettings, error) {
	out := make([]entity.NotificationSettings, 0, len(f.rows))
	for _, r := range f.rows {
		if r.EmailEnabled {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSettings) GetByUser(_ context.Context, userID string) (*entity.NotificationSettings, error) {
	for _, r := range f.rows {
		if r.UserID == userID {
			r := r
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeSettings) Create(_ context.Context, s *entity.NotificationSettings) error {
	f.rows = append(f.rows, *s)
	return nil
}

func (f *fakeSettings) Update(_ context.Context, s *entity.NotificationSettings) error {
	for i := range f.rows {
		if f.rows[i].UserID == s.UserID {
			f.rows[i] = *s
		}
	}
	return nil
}

type fakeProperties struct {
	byUser map[string][]entity.Property
	fail   map[string]bool
}

func (f *fakeProperties) ListByUser(_ context.Context, userID string) ([]entity.Property, error) {
	if f.fail[userID] {
		return nil, errBackend
	}
	return f.byUser[userID], nil
}

type fakeTenants struct {
	byUser map[string][]entity.Tenant
}

func (f *fakeTenants) ListByUser(_ context.Context, userID string) ([]entity.Tenant, error) {
	return f.byUser[userID], nil
}

type fakeDocuments struct {
	docs []entity.Document
}

func (f *fakeDocuments) ListByProperties(_ context.Context, ids []string) ([]entity.Document, error) {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	out := make([]entity.Document, 0)
	for _, d := range f.docs {
		if set[d.PropertyID] {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeUsers map[string]*entity.User

func (f fakeUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f[id], nil
}

// fakeSender registra los mensajes y falla para los destinos de failFor.
type fakeSender struct {
	sent    []ports.EmailMessage
	failFor map[string]bool
}

func (f *fakeSender) Send(_ context.Context, msg ports.EmailMessage) error {
	if f.failFor[msg.To] {
		return errors.New("Resend error: 422 invalid to")
	}
	f.sent = append(f.sent, msg)
	return nil
}

type memSentLog struct {
	mu   sync.Mutex
	keys map[string]bool
}

func newMemSentLog() *memSentLog { return &memSentLog{keys: map[string]bool{}} }

func (m *memSentLog) WasSent(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keys[key], nil
}

func (m *memSentLog) MarkSent(_ context.Context, keys []string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		m.keys[k] = true
	}
	return nil
}
