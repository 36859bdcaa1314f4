package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"freight-route-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisGeocodeCache is a Redis-backed cache mapping addresses to
// coordinates. Entries expire so stale provider data eventually ages
// out.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client) *RedisGeocodeCache {
	return &RedisGeocodeCache{
		Client: client,
		TTL:    30 * 24 * time.Hour,
	}
}

type redisCoordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func redisKey(address string) string {
	return "geocode:" + address
}

// Fetch the cached coordinate for the given address.
func (r *RedisGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinate, bool, error) {
	if r.Client == nil {
		return domain.Coordinate{}, false, errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinate{}, false, nil
	}

	raw, err := r.Client.Get(ctx, redisKey(address)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinate{}, false, nil
	}
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	var c redisCoordinate
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache: decode entry for %q: %w", address, err)
	}

	return domain.Coordinate{Lat: c.Lat, Lon: c.Lon}, true, nil
}

// Store an address -> coordinate mapping in the cache.
func (r *RedisGeocodeCache) Put(ctx context.Context, address string, coord domain.Coordinate) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("insert geocode cache: empty address key")
	}

	raw, err := json.Marshal(redisCoordinate{Lat: coord.Lat, Lon: coord.Lon})
	if err != nil {
		return fmt.Errorf("insert geocode cache coord=%q: %w", address, err)
	}

	if err := r.Client.Set(ctx, redisKey(address), raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert geocode cache coord=%q: %w", address, err)
	}

	return nil
}
