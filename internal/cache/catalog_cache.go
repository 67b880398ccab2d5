package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CatalogCache keeps recently fetched catalog responses in Redis so repeated
// album pages and searches do not hit the upstream API. A nil *CatalogCache
// is valid and means caching is disabled: every method is a no-op then.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies the connection. Callers that run
// without Redis should simply hold a nil *CatalogCache instead.
func New(redisURL string, ttl time.Duration) (*CatalogCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &CatalogCache{client: rdb, ttl: ttl}, nil
}

// Get unmarshals the cached value for key into dest. Returns false on miss,
// on a disabled cache and on any Redis or decode error: a cache problem is
// never allowed to fail a request.
func (c *CatalogCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// Set stores value under key with the configured TTL. Failures are dropped.
func (c *CatalogCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, c.ttl)
}

// Close releases the underlying Redis connection.
func (c *CatalogCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Key builders keep the namespace in one place.

func AlbumKey(albumID string) string {
	return "catalog:album:" + albumID
}

func ArtistKey(artistID string) string {
	return "catalog:artist:" + artistID
}

func ArtistAlbumsKey(artistID string, offset int) string {
	return fmt.Sprintf("catalog:artist:%s:albums:%d", artistID, offset)
}

func SearchKey(searchType, query string, offset int) string {
	return fmt.Sprintf("catalog:search:%s:%s:%d", searchType, query, offset)
}
