package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/saverentacar/saverent-backend/internal/airtable"
)

var RedisClient *redis.Client

const (
	fleetCacheKey = "fleet:cars"
	fleetCacheTTL = 5 * time.Minute
)

// InitRedis initializes the Redis client. The fleet cache is optional:
// without REDIS_URL every fleet request goes straight to the record store.
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// CachedFleet returns the cached car list, or ok=false on a miss.
func CachedFleet(ctx context.Context) ([]airtable.Car, bool) {
	if RedisClient == nil {
		return nil, false
	}

	data, err := RedisClient.Get(ctx, fleetCacheKey).Result()
	if err != nil {
		return nil, false
	}

	var cars []airtable.Car
	if err := json.Unmarshal([]byte(data), &cars); err != nil {
		return nil, false
	}
	return cars, true
}

// CacheFleet stores the car list for fleetCacheTTL. Failures are ignored;
// the cache is never load-bearing.
func CacheFleet(ctx context.Context, cars []airtable.Car) {
	if RedisClient == nil {
		return
	}

	data, err := json.Marshal(cars)
	if err != nil {
		return
	}
	RedisClient.Set(ctx, fleetCacheKey, data, fleetCacheTTL)
}

// InvalidateFleet drops the cached car list, for when the operator knows the
// inventory just changed.
func InvalidateFleet(ctx context.Context) {
	if RedisClient == nil {
		return
	}
	RedisClient.Del(ctx, fleetCacheKey)
}
