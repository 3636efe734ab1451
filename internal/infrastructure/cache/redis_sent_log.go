package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rentcare/rentcare-api/internal/application/ports"
)

const defaultKeyPrefix = "rentcare:reminder:sent:"

// RedisSentLog registro de envíos compartido entre instancias (API y CLI del notificador).
type RedisSentLog struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisSentLog conecta con Redis y comprueba la conexión.
func NewRedisSentLog(ctx context.Context, addr, password string, db int) (*RedisSentLog, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return NewRedisSentLogWithClient(client, ""), nil
}

// NewRedisSentLogWithClient usa un cliente existente. keyPrefix vacío usa el prefijo por defecto.
func NewRedisSentLogWithClient(client *redis.Client, keyPrefix string) *RedisSentLog {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisSentLog{client: client, keyPrefix: keyPrefix}
}

// WasSent indica si la clave existe (no expirada).
func (s *RedisSentLog) WasSent(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.keyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("consultar registro de envíos: %w", err)
	}
	return n > 0, nil
}

// MarkSent registra las claves con SETNX y TTL en un único pipeline.
func (s *RedisSentLog) MarkSent(ctx context.Context, keys []string, ttl time.Duration) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := s.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for _, k := range keys {
			p.SetNX(ctx, s.keyPrefix+k, time.Now().UTC().Format(time.RFC3339), ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("registrar envíos: %w", err)
	}
	return nil
}

// Close cierra el cliente.
func (s *RedisSentLog) Close() error {
	return s.client.Close()
}

var _ ports.SentLog = (*RedisSentLog)(nil)
