// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// vibes.go provides a Valkey-backed cache for the vibe catalog list.
// The catalog is read on every generation and by the front-end picker but
// only changes when a custom vibe is inserted, so a short TTL plus explicit
// invalidation keeps it fresh. Cache failures degrade to the database.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"contentforge/internal/models"
)

const (
	// vibeListKey is the Valkey key holding the serialized catalog.
	vibeListKey = "vibes:list"

	// DefaultVibeTTL is how long the catalog stays cached.
	DefaultVibeTTL = 5 * time.Minute
)

// VibeCache manages the cached vibe catalog in Valkey.
type VibeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVibeCache creates a vibe catalog cache backed by the given Valkey client.
func NewVibeCache(client *redis.Client, ttl time.Duration) *VibeCache {
	if ttl == 0 {
		ttl = DefaultVibeTTL
	}
	return &VibeCache{client: client, ttl: ttl}
}

// Get retrieves the cached catalog. Returns false on miss or any error.
func (vc *VibeCache) Get(ctx context.Context) ([]models.Vibe, bool) {
	val, err := vc.client.Get(ctx, vibeListKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("vibe cache get error", "error", err)
		return nil, false
	}

	var vibes []models.Vibe
	if err := json.Unmarshal(val, &vibes); err != nil {
		slog.Warn("vibe cache decode error", "error", err)
		return nil, false
	}
	slog.Debug("vibe cache hit", "count", len(vibes))
	return vibes, true
}

// Set stores the catalog with the configured TTL. Errors are logged and
// swallowed; the database remains the source of truth.
func (vc *VibeCache) Set(ctx context.Context, vibes []models.Vibe) {
	payload, err := json.Marshal(vibes)
	if err != nil {
		slog.Warn("vibe cache encode error", "error", err)
		return
	}
	if err := vc.client.Set(ctx, vibeListKey, payload, vc.ttl).Err(); err != nil {
		slog.Warn("vibe cache set error", "error", err)
	}
}

// Invalidate drops the cached catalog. Called after a custom vibe insert.
func (vc *VibeCache) Invalidate(ctx context.Context) {
	if err := vc.client.Del(ctx, vibeListKey).Err(); err != nil {
		slog.Warn("vibe cache invalidate error", "error", err)
	}
	slog.Debug("vibe cache invalidated")
}
