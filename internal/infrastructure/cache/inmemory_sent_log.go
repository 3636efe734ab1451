package cache

import (
	"context"
	"sync"
	"time"

	"github.com/rentcare/rentcare-api/internal/application/ports"
)

// InMemorySentLog registro de envíos en memoria para una única instancia y para tests.
// Una goroutine elimina periódicamente las entradas expiradas.
type InMemorySentLog struct {
	mu        sync.RWMutex
	entries   map[string]time.Time // clave → expiración
	now       func() time.Time
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemorySentLog crea el registro y arranca la limpieza cada cleanupEvery (0 = 5 min).
func NewInMemorySentLog(cleanupEvery time.Duration) *InMemorySentLog {
	if cleanupEvery <= 0 {
		cleanupEvery = 5 * time.Minute
	}
	s := &InMemorySentLog{
		entries:  make(map[string]time.Time),
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
	s.wg.Add(1)
	go s.cleanupLoop(cleanupEvery)
	return s
}

func (s *InMemorySentLog) WasSent(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	exp, ok := s.entries[key]
	return ok && s.now().Before(exp), nil
}

// MarkSent no renueva la expiración de una clave vigente (como SETNX).
func (s *InMemorySentLog) MarkSent(_ context.Context, keys []string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for _, k := range keys {
		if exp, ok := s.entries[k]; ok && now.Before(exp) {
			continue
		}
		s.entries[k] = now.Add(ttl)
	}
	return nil
}

// Close detiene la limpieza. Se puede llamar varias veces.
func (s *InMemorySentLog) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

// Size número de entradas, incluidas las expiradas aún no limpiadas.
func (s *InMemorySentLog) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *InMemorySentLog) cleanupLoop(every time.Duration) {
	defer s.wg.Done()
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *InMemorySentLog) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, exp := range s.entries {
		if !now.Before(exp) {
			delete(s.entries, k)
		}
	}
}

var _ ports.SentLog = (*InMemorySentLog)(nil)
