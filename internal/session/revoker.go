package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Revoker guarda os jti de tokens deslogados até expirarem. Apenas
// limpar o cookie não basta: um bearer header antigo continuaria válido.
type Revoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

const keyPrefix = "session:revoked:"

type RedisRevoker struct {
	client *redis.Client
}

func NewRedisRevoker(client *redis.Client) *RedisRevoker {
	return &RedisRevoker{client: client}
}

func (r *RedisRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, keyPrefix+jti, "1", ttl).Err()
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, keyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// NoopRevoker é usado quando REDIS_ADDR não está configurado; o logout
// degrada para apenas limpar o cookie.
type NoopRevoker struct{}

func (NoopRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return nil
}

func (NoopRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return false, nil
}
