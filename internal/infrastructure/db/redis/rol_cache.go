package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/invensys/inventory-api/internal/core/domain"
	"github.com/invensys/inventory-api/internal/core/ports"
)

const cacheTTL = 5 * time.Minute

// RolCache is a read-through cache over a ports.RolLookup. Role documents are
// small and read on every user write and expansion, which makes them the one
// hot read path in the system. Key format: rol:<id>. Only positive results
// are cached; misses and malformed ids always hit the inner lookup. Cache
// failures degrade to the inner lookup rather than failing the request.
type RolCache struct {
	client *redis.Client
	inner  ports.RolLookup
	logger zerolog.Logger
}

// NewRolCache creates a RolCache wrapping the given lookup.
func NewRolCache(client *redis.Client, inner ports.RolLookup, logger zerolog.Logger) *RolCache {
	return &RolCache{client: client, inner: inner, logger: logger}
}

// FindByID resolves a role, serving from cache when possible.
func (c *RolCache) FindByID(ctx context.Context, id string) (*domain.Rol, error) {
	if raw, err := c.client.Get(ctx, c.key(id)).Bytes(); err == nil {
		var rol domain.Rol
		if json.Unmarshal(raw, &rol) == nil {
			return &rol, nil
		}
	} else if err != redis.Nil {
		c.logger.Warn().Err(err).Str("rol_id", id).Msg("rol cache read failed")
	}

	rol, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(rol); err == nil {
		if err := c.client.Set(ctx, c.key(id), raw, cacheTTL).Err(); err != nil {
			c.logger.Warn().Err(err).Str("rol_id", id).Msg("rol cache write failed")
		}
	}
	return rol, nil
}

// Invalidate drops the cached entry for a role. Called after any role update
// or delete so that user writes never validate against a stale role.
func (c *RolCache) Invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.logger.Warn().Err(err).Str("rol_id", id).Msg("rol cache invalidation failed")
	}
}

func (c *RolCache) key(id string) string {
	return "rol:" + id
}
