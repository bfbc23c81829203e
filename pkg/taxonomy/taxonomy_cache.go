package taxonomy

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyCategories = "taxonomy:categories"
	cacheKeyTypes      = "taxonomy:types:"     // + category id ("" for all)
	cacheKeySpecs      = "taxonomy:specs:"     // + food type id ("" for all)
	cacheKeyCookTypes  = "taxonomy:cooktypes:" // + category id ("" for all)

	cacheTTL = 10 * time.Minute
)

type (
	// TaxonomyCache keeps the dependent-listing results warm between writes.
	// Every read is best effort: a miss or a redis failure just falls through
	// to the database.
	TaxonomyCache interface {
		Get(ctx context.Context, key string, dest any) bool
		Set(ctx context.Context, key string, value any)
		Invalidate(ctx context.Context, keys ...string)
		InvalidatePrefix(ctx context.Context, prefix string)
	}

	redisTaxonomyCache struct {
		client *redis.Client
	}

	// noopTaxonomyCache backs deployments without redis configured.
	noopTaxonomyCache struct{}
)

func NewTaxonomyCache(client *redis.Client) TaxonomyCache {
	if client == nil {
		return noopTaxonomyCache{}
	}
	return &redisTaxonomyCache{client: client}
}

func (c *redisTaxonomyCache) Get(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *redisTaxonomyCache) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, raw, cacheTTL).Err()
}

func (c *redisTaxonomyCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	_ = c.client.Del(ctx, keys...).Err()
}

func (c *redisTaxonomyCache) InvalidatePrefix(ctx context.Context, prefix string) {
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		_ = c.client.Del(ctx, iter.Val()).Err()
	}
}

func (noopTaxonomyCache) Get(context.Context, string, any) bool    { return false }
func (noopTaxonomyCache) Set(context.Context, string, any)         {}
func (noopTaxonomyCache) Invalidate(context.Context, ...string)    {}
func (noopTaxonomyCache) InvalidatePrefix(context.Context, string) {}
