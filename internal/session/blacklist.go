package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/timeclock/internal/config"
)

// Blacklist guarda en Redis los jti de tokens revocados (logout).
// La clave expira sola cuando el token habría caducado igualmente.
type Blacklist struct {
	rdb *redis.Client
}

func NewBlacklist(cfg *config.Config) *Blacklist {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return &Blacklist{rdb: rdb}
}

func key(jti string) string {
	return "revoked_token:" + jti
}

func (b *Blacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token ya caducado: nada que revocar.
		return nil
	}
	return b.rdb.Set(ctx, key(jti), "1", ttl).Err()
}

func (b *Blacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.rdb.Exists(ctx, key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (b *Blacklist) Close() error {
	return b.rdb.Close()
}
