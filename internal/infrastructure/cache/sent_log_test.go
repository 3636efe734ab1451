package cache

import (
	"bytes"
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentcare/rentcare-api/pkg/config"
)

func TestInMemorySentLog_MarcaYConsulta(t *testing.T) {
	s := NewInMemorySentLog(time.Hour)
	defer s.Close()
	ctx := context.Background()

	sent, err := s.WasSent(ctx, "u1:pay-t1:d5:2026-10-31")
	require.NoError(t, err)
	assert.False(t, sent)

	require.NoError(t, s.MarkSent(ctx, []string{"u1:pay-t1:d5:2026-10-31", "u1:exp-d1:d1:2026-10-31"}, time.Hour))

	sent, _ = s.WasSent(ctx, "u1:pay-t1:d5:2026-10-31")
	assert.True(t, sent)
	sent, _ = s.WasSent(ctx, "u1:pay-t1:d1:2026-10-31")
	assert.False(t, sent, "otro umbral es otra clave")
	assert.Equal(t, 2, s.Size())
}

func TestInMemorySentLog_Expira(t *testing.T) {
	s := NewInMemorySentLog(time.Hour)
	defer s.Close()
	ctx := context.Background()

	clock := time.Date(2026, time.October, 31, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	require.NoError(t, s.MarkSent(ctx, []string{"k"}, 48*time.Hour))

	clock = clock.Add(47 * time.Hour)
	sent, _ := s.WasSent(ctx, "k")
	assert.True(t, sent)

	clock = clock.Add(time.Hour)
	sent, _ = s.WasSent(ctx, "k")
	assert.False(t, sent)

	s.cleanup()
	assert.Zero(t, s.Size())
}

func TestInMemorySentLog_NoRenuevaClaveVigente(t *testing.T) {
	s := NewInMemorySentLog(time.Hour)
	defer s.Close()
	ctx := context.Background()

	clock := time.Date(2026, time.October, 31, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	require.NoError(t, s.MarkSent(ctx, []string{"k"}, time.Hour))
	clock = clock.Add(30 * time.Minute)
	require.NoError(t, s.MarkSent(ctx, []string{"k"}, time.Hour))

	clock = clock.Add(31 * time.Minute)
	sent, _ := s.WasSent(ctx, "k")
	assert.False(t, sent)
}

func TestInMemorySentLog_CloseIdempotente(t *testing.T) {
	s := NewInMemorySentLog(time.Millisecond)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestNewSentLog(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, NewSentLog(ctx, config.NotifierConfig{Dedup: false}, config.RedisConfig{}, false, zerolog.Nop()))

	s := NewSentLog(ctx, config.NotifierConfig{Dedup: true}, config.RedisConfig{}, false, zerolog.Nop())
	require.NotNil(t, s)
	defer s.Close()
	assert.IsType(t, &InMemorySentLog{}, s)
}

// Una pasada única sin Redis no puede deduplicar: sin registro y con aviso en el log.
func TestNewSentLog_PasadaUnicaSinRedis(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	s := NewSentLog(context.Background(), config.NotifierConfig{Dedup: true}, config.RedisConfig{}, true, log)

	assert.Nil(t, s)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "REDIS_ADDR")
}

// Requiere un Redis real: REDIS_TEST_ADDR=localhost:6379 go test ./internal/infrastructure/cache/...
func TestRedisSentLog(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR no definido")
	}
	ctx := context.Background()
	s, err := NewRedisSentLog(ctx, addr, "", 0)
	require.NoError(t, err)
	defer s.Close()
	s.keyPrefix = "rentcare:test:" + strconv.FormatInt(time.Now().UnixNano(), 10) + ":"

	sent, err := s.WasSent(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, sent)

	require.NoError(t, s.MarkSent(ctx, []string{"k1", "k2"}, time.Minute))
	sent, err = s.WasSent(ctx, "k2")
	require.NoError(t, err)
	assert.True(t, sent)
}
