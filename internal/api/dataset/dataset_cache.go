package dataset

import (
	"context"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/FACorreiaa/go-kemet-travel-planner/internal/types"
)

var _ Repository = (*CachedRepository)(nil)

// CachedRepository keeps the last successful snapshot of another Repository.
// The workbook is assumed not to change while the process runs; failed loads
// are not cached so the next request tries again.
type CachedRepository struct {
	source Repository
	key    string
	cache  *cache.Cache
	group  singleflight.Group
	logger *slog.Logger
}

// NewCachedRepository caches source under key. A ttl of zero keeps the
// snapshot for the lifetime of the process.
func NewCachedRepository(source Repository, key string, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	expiration := cache.NoExpiration
	var cleanup time.Duration
	if ttl > 0 {
		expiration = ttl
		cleanup = ttl
	}
	return &CachedRepository{
		source: source,
		key:    key,
		cache:  cache.New(expiration, cleanup),
		logger: logger,
	}
}

func (c *CachedRepository) Attractions(ctx context.Context) ([]types.AttractionRecord, error) {
	if records, ok := c.cached(); ok {
		return records, nil
	}

	v, err, shared := c.group.Do(c.key, func() (any, error) {
		if records, ok := c.cached(); ok {
			return records, nil
		}
		records, err := c.source.Attractions(ctx)
		if err != nil {
			return nil, err
		}
		c.cache.SetDefault(c.key, records)
		c.logger.InfoContext(ctx, "Cached attraction snapshot",
			slog.String("key", c.key),
			slog.Int("records", len(records)))
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.DebugContext(ctx, "Shared in-flight dataset load", slog.String("key", c.key))
	}
	return v.([]types.AttractionRecord), nil
}

// invalidate drops the cached snapshot.
func (c *CachedRepository) invalidate() {
	c.cache.Delete(c.key)
}

func (c *CachedRepository) cached() ([]types.AttractionRecord, bool) {
	v, ok := c.cache.Get(c.key)
	if !ok {
		return nil, false
	}
	records, ok := v.([]types.AttractionRecord)
	return records, ok
}
