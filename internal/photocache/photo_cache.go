// Package photocache remembers the last photo URL seen for each employee in
// redis, so list rows can still show a face when a record arrives without one.
package photocache

import (
	"context"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "employees:photo:"

// DefaultTTL applies when no TTL is configured.
const DefaultTTL = 7 * 24 * time.Hour

type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func New(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *Cache {
	l := zap.L().Named("photocache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("photocache")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{rdb: rdb, ttl: ttl, logger: l}
}

func Key(employeeID string) string {
	return keyPrefix + employeeID
}

// Lookup returns the cached URLs of the given employees. Employees with no
// entry are absent from the map.
func (c *Cache) Lookup(ctx context.Context, employeeIDs []string) (map[string]string, error) {
	out := make(map[string]string, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return out, nil
	}

	keys := make([]string, len(employeeIDs))
	for i, id := range employeeIDs {
		keys[i] = Key(id)
	}

	vals, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		if s, ok := v.(string); ok && s != "" {
			out[employeeIDs[i]] = s
		}
	}
	c.logger.Debug("photo lookup", zap.Int("requested", len(employeeIDs)), zap.Int("hits", len(out)))
	return out, nil
}

// Remember stores the URLs in one pipeline, refreshing their TTL.
func (c *Cache) Remember(ctx context.Context, photos map[string]string) error {
	if len(photos) == 0 {
		return nil
	}

	ids := make([]string, 0, len(photos))
	for id := range photos {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	pipe := c.rdb.Pipeline()
	for _, id := range ids {
		pipe.Set(ctx, Key(id), photos[id], c.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}
