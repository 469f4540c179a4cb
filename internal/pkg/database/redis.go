package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/streetcab/dispatch/internal/pkg/models"
)

// defaultOpTimeout bounds every store round-trip so a slow Redis cannot hang
// dispatch. Callers receive a timeout error instead of blocking.
const defaultOpTimeout = 2 * time.Second

// RedisClient represents a Redis client
type RedisClient struct {
	Client    *redis.Client
	opTimeout time.Duration
}

// NewRedisClient creates a new Redis client
func NewRedisClient(config models.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	opTimeout := defaultOpTimeout
	if config.OpTimeout > 0 {
		opTimeout = time.Duration(config.OpTimeout) * time.Millisecond
	}

	return &RedisClient{Client: client, opTimeout: opTimeout}, nil
}

// NewRedisClientWithConn wraps an existing connection (used by tests)
func NewRedisClientWithConn(client *redis.Client) *RedisClient {
	return &RedisClient{Client: client, opTimeout: defaultOpTimeout}
}

// WithTimeout derives a bounded context for a single store operation
func (r *RedisClient) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.opTimeout)
}

// Set stores a key-value pair with an optional expiration
func (r *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.Get(ctx, key).Result()
}

// Delete removes one or more keys
func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.Del(ctx, keys...).Err()
}

// Expire sets a TTL on a key
func (r *RedisClient) Expire(ctx context.Context, key string, ttl time.Duration) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.Expire(ctx, key, ttl).Err()
}

// GeoAdd adds geospatial data to a sorted set
func (r *RedisClient) GeoAdd(ctx context.Context, key string, longitude, latitude float64, member string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.GeoAdd(ctx, key, &redis.GeoLocation{
		Longitude: longitude,
		Latitude:  latitude,
		Name:      member,
	}).Err()
}

// GeoRadius finds members within a radius from a point, nearest first
func (r *RedisClient) GeoRadius(ctx context.Context, key string, longitude, latitude, radiusM float64, limit int) ([]redis.GeoLocation, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.GeoRadius(ctx, key, longitude, latitude, &redis.GeoRadiusQuery{
		Radius:    radiusM,
		Unit:      "m",
		WithCoord: true,
		WithDist:  true,
		Count:     limit,
		Sort:      "ASC",
	}).Result()
}

// ZRem removes members from a sorted set
func (r *RedisClient) ZRem(ctx context.Context, key string, members ...interface{}) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.ZRem(ctx, key, members...).Err()
}

// ZAddScore adds a member with a score to a sorted set
func (r *RedisClient) ZAddScore(ctx context.Context, key, member string, score float64) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.ZAdd(ctx, key, &redis.Z{Score: score, Member: member}).Err()
}

// ZRangeByScore returns members with scores within [min, max]
func (r *RedisClient) ZRangeByScore(ctx context.Context, key, min, max string) ([]string, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.ZRangeByScore(ctx, key, &redis.ZRangeBy{Min: min, Max: max}).Result()
}

// SAdd adds members to a set
func (r *RedisClient) SAdd(ctx context.Context, key string, members ...interface{}) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.SAdd(ctx, key, members...).Err()
}

// SRem removes members from a set
func (r *RedisClient) SRem(ctx context.Context, key string, members ...interface{}) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.SRem(ctx, key, members...).Err()
}

// SIsMember checks set membership
func (r *RedisClient) SIsMember(ctx context.Context, key, member string) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.SIsMember(ctx, key, member).Result()
}

// SMembers returns all members of a set
func (r *RedisClient) SMembers(ctx context.Context, key string) ([]string, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.SMembers(ctx, key).Result()
}

// HMSet stores multiple hash fields
func (r *RedisClient) HMSet(ctx context.Context, key string, fields map[string]interface{}) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.HSet(ctx, key, fields).Err()
}

// HMGet retrieves hash field values; missing fields come back as empty strings
func (r *RedisClient) HMGet(ctx context.Context, key string, fields ...string) ([]string, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	values, err := r.Client.HMGet(ctx, key, fields...).Result()
	if err != nil {
		return nil, err
	}

	result := make([]string, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			result[i] = s
		}
	}
	return result, nil
}

// HGetAll retrieves all fields of a hash
func (r *RedisClient) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.HGetAll(ctx, key).Result()
}

// HSet stores a single hash field
func (r *RedisClient) HSet(ctx context.Context, key, field string, value interface{}) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.HSet(ctx, key, field, value).Err()
}

// HDel removes fields from a hash
func (r *RedisClient) HDel(ctx context.Context, key string, fields ...string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.HDel(ctx, key, fields...).Err()
}

// Exists reports whether a key exists
func (r *RedisClient) Exists(ctx context.Context, key string) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	n, err := r.Client.Exists(ctx, key).Result()
	return n > 0, err
}

// Eval runs a Lua script atomically on the server
func (r *RedisClient) Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()
	return r.Client.Eval(ctx, script, keys, args...).Result()
}

// TxPipeline returns a transactional pipeline for multi-key writes
func (r *RedisClient) TxPipeline() redis.Pipeliner {
	return r.Client.TxPipeline()
}

// Close closes the Redis client
func (r *RedisClient) Close() error {
	return r.Client.Close()
}
