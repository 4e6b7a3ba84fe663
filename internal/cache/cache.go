package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pageza/chefmaster/backend/internal/model"
)

// ErrMiss is returned when a draft is not cached or has expired
var ErrMiss = errors.New("draft not cached")

// DraftCache keeps recently generated recipes close at hand
type DraftCache interface {
	Save(ctx context.Context, rec *model.GeneratedRecipe) error
	Get(ctx context.Context, id string) (*model.GeneratedRecipe, error)
	Delete(ctx context.Context, id string) error
}

func draftKey(id string) string {
	return fmt.Sprintf("recipe:draft:%s", id)
}

// RedisCache stores drafts as JSON in Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a new RedisCache instance
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Save saves a draft to Redis
func (c *RedisCache) Save(ctx context.Context, rec *model.GeneratedRecipe) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := c.client.Set(ctx, draftKey(rec.ID.String()), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft to Redis: %w", err)
	}
	return nil
}

// Get retrieves a draft from Redis
func (c *RedisCache) Get(ctx context.Context, id string) (*model.GeneratedRecipe, error) {
	data, err := c.client.Get(ctx, draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft from Redis: %w", err)
	}

	var rec model.GeneratedRecipe
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &rec, nil
}

// Delete removes a draft from Redis
func (c *RedisCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft from Redis: %w", err)
	}
	return nil
}

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// MemoryCache is an in-process DraftCache used when Redis is not configured.
// Expired entries are swept on Save at most once per TTL.
type MemoryCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	nextSweep time.Time
	entries   map[string]memoryEntry
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryCache) Save(ctx context.Context, rec *model.GeneratedRecipe) error {
	// Stored as JSON so callers never share the cached value
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if !now.Before(c.nextSweep) {
		c.sweep(now)
		c.nextSweep = now.Add(c.ttl)
	}
	c.entries[draftKey(rec.ID.String())] = memoryEntry{data: data, expires: now.Add(c.ttl)}
	return nil
}

// sweep drops expired entries. Callers hold mu.
func (c *MemoryCache) sweep(now time.Time) {
	for key, entry := range c.entries {
		if !now.Before(entry.expires) {
			delete(c.entries, key)
		}
	}
}

func (c *MemoryCache) Get(ctx context.Context, id string) (*model.GeneratedRecipe, error) {
	key := draftKey(id)

	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && !c.now().Before(entry.expires) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()

	if !ok {
		return nil, ErrMiss
	}

	var rec model.GeneratedRecipe
	if err := json.Unmarshal(entry.data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &rec, nil
}

func (c *MemoryCache) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, draftKey(id))
	return nil
}
