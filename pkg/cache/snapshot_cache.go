package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// SnapshotTTL bounds how long a stored snapshot outlives its last refresh.
	SnapshotTTL = 7 * 24 * time.Hour

	snapshotKeyPrefix = "snapshot"
)

// SnapshotMeta describes a stored snapshot without loading its payload.
type SnapshotMeta struct {
	Name     string    `json:"name"`
	Source   string    `json:"source"`
	Count    int       `json:"count"`
	StoredAt time.Time `json:"stored_at"`
}

// SnapshotCache stores whole-collection JSON snapshots (the catalog, for one).
// Each snapshot is two keys written in one transaction:
//
//	"snapshot:{name}:data"  JSON payload
//	"snapshot:{name}:meta"  hash of source, count, stored_at
type SnapshotCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewSnapshotCache creates a SnapshotCache backed by the given RedisClient.
func NewSnapshotCache(r *RedisClient) *SnapshotCache {
	return &SnapshotCache{client: r, ttl: SnapshotTTL}
}

// Get decodes the named snapshot into out and returns its metadata.
// Returns redis.Nil when the snapshot does not exist or has expired.
func (c *SnapshotCache) Get(ctx context.Context, name string, out any) (*SnapshotMeta, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.metaKey(name)).Result()
	if err != nil {
		return nil, fmt.Errorf("snapshot get meta: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}

	count, err := strconv.Atoi(vals["count"])
	if err != nil {
		return nil, fmt.Errorf("snapshot parse count: %w", err)
	}
	storedAt, err := time.Parse(time.RFC3339Nano, vals["stored_at"])
	if err != nil {
		return nil, fmt.Errorf("snapshot parse stored_at: %w", err)
	}

	data, err := c.client.Client().Get(ctx, c.dataKey(name)).Bytes()
	if err != nil {
		// redis.Nil passes through: meta without data is a missing snapshot.
		return nil, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}

	return &SnapshotMeta{
		Name:     name,
		Source:   vals["source"],
		Count:    count,
		StoredAt: storedAt,
	}, nil
}

// Set replaces the named snapshot. Payload and metadata are written in a
// MULTI/EXEC transaction so readers never observe one without the other.
func (c *SnapshotCache) Set(ctx context.Context, meta SnapshotMeta, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}
	if meta.StoredAt.IsZero() {
		meta.StoredAt = time.Now()
	}

	pipe := c.client.Client().TxPipeline()
	pipe.Set(ctx, c.dataKey(meta.Name), data, c.ttl)
	pipe.HSet(ctx, c.metaKey(meta.Name),
		"source", meta.Source,
		"count", strconv.Itoa(meta.Count),
		"stored_at", meta.StoredAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, c.metaKey(meta.Name), c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("snapshot set: %w", err)
	}
	return nil
}

// Delete removes the named snapshot.
func (c *SnapshotCache) Delete(ctx context.Context, name string) error {
	if err := c.client.Client().Del(ctx, c.dataKey(name), c.metaKey(name)).Err(); err != nil {
		return fmt.Errorf("snapshot delete: %w", err)
	}
	return nil
}

func (c *SnapshotCache) dataKey(name string) string {
	return fmt.Sprintf("%s:%s:data", snapshotKeyPrefix, name)
}

func (c *SnapshotCache) metaKey(name string) string {
	return fmt.Sprintf("%s:%s:meta", snapshotKeyPrefix, name)
}
