// Package cache keeps the category fields embedded into product responses
// in Redis so product reads do not hit the category store on every request.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/catalogapp/catalog/internal/models"
)

const (
	categoryRefKeyPrefix = "catalog:category-ref:"

	// DefaultTTL is how long a category reference stays cached.
	DefaultTTL = 5 * time.Minute
)

// Connect creates a Redis client from a redis:// URL and verifies it with a ping.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

type cachedRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryRefCache stores resolved category references. Errors are logged
// and treated as misses.
type CategoryRefCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCategoryRefCache(client *redis.Client, ttl time.Duration) *CategoryRefCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CategoryRefCache{client: client, ttl: ttl}
}

// GetRefs returns the cached references for ids. Ids that are not cached are
// absent from the map.
func (c *CategoryRefCache) GetRefs(ctx context.Context, ids []string) map[string]*models.CategoryRef {
	refs := make(map[string]*models.CategoryRef, len(ids))
	if len(ids) == 0 {
		return refs
	}

	keys := make([]string, len(ids))
	for i, categoryID := range ids {
		keys[i] = categoryRefKeyPrefix + categoryID
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		slog.WarnContext(ctx, "category cache get error", "error", err)
		return refs
	}

	for i, val := range vals {
		s, ok := val.(string)
		if !ok {
			continue
		}
		var cr cachedRef
		if err := json.Unmarshal([]byte(s), &cr); err != nil {
			slog.WarnContext(ctx, "category cache decode error", "key", keys[i], "error", err)
			continue
		}
		refs[ids[i]] = &models.CategoryRef{
			ID:          cr.ID,
			Name:        cr.Name,
			Description: cr.Description,
			Resolved:    true,
		}
	}
	return refs
}

// SetRefs caches resolved references. Unresolved ones are skipped.
func (c *CategoryRefCache) SetRefs(ctx context.Context, refs []*models.CategoryRef) {
	entries := make(map[string][]byte, len(refs))
	for _, ref := range refs {
		if ref == nil || !ref.Resolved {
			continue
		}
		data, err := json.Marshal(cachedRef{ID: ref.ID, Name: ref.Name, Description: ref.Description})
		if err != nil {
			continue
		}
		entries[categoryRefKeyPrefix+ref.ID] = data
	}
	if len(entries) == 0 {
		return
	}

	pipe := c.client.Pipeline()
	for key, data := range entries {
		pipe.Set(ctx, key, data, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		slog.WarnContext(ctx, "category cache set error", "error", err)
	}
}

// Invalidate drops the cached reference for one category.
func (c *CategoryRefCache) Invalidate(ctx context.Context, categoryID string) {
	if err := c.client.Del(ctx, categoryRefKeyPrefix+categoryID).Err(); err != nil {
		slog.WarnContext(ctx, "category cache invalidate error", "category_id", categoryID, "error", err)
	}
}
