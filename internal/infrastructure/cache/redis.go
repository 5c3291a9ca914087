package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/FLAVIOALFA/stockflow-admin/pkg/logger"
)

// Redis caché respaldado en Redis, para compartir el caché de listados entre
// réplicas del gateway. La invalidación por recurso borra por patrón
// query:<recurso>:* (SCAN + DEL).
type Redis struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedis construye el backend Redis.
func NewRedis(client *redis.Client, log *logger.Logger) *Redis {
	return &Redis{client: client, log: log.Named("cache")}
}

// Get devuelve el valor cacheado; cualquier error de Redis cuenta como miss.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn().Err(err).Str("key", key).Msg("lectura de caché fallida")
		}
		return nil, false
	}
	return val, true
}

// Set guarda el valor con TTL. Un fallo de escritura no interrumpe al llamador.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("escritura de caché fallida")
		return err
	}
	return nil
}

// InvalidateResource borra todas las claves del recurso por patrón.
func (r *Redis) InvalidateResource(ctx context.Context, resource string) error {
	pattern := resourcePrefix(resource) + "*"
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return err
	}
	r.log.Debug().Int("count", len(keys)).Str("pattern", pattern).Msg("caché invalidado")
	return nil
}
