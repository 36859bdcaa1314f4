package cache

import (
	"context"
	"testing"

	"freight-route-service/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisCache(t *testing.T) *RedisGeocodeCache {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisGeocodeCache(client)
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	coord := domain.Coordinate{Lat: -22.9068, Lon: -43.1729}
	if err := c.Put(ctx, "Rio de Janeiro", coord); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "Rio de Janeiro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got != coord {
		t.Fatalf("coordinate = %+v, want %+v", got, coord)
	}
}

func TestRedisGeocodeCacheMiss(t *testing.T) {
	c := newTestRedisCache(t)

	_, ok, err := c.Get(context.Background(), "Lugar Nenhum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected a cache miss")
	}
}

func TestRedisGeocodeCacheRejectsEmptyKey(t *testing.T) {
	c := newTestRedisCache(t)

	if err := c.Put(context.Background(), "   ", domain.Coordinate{}); err == nil {
		t.Fatal("expected error for empty address key")
	}

	_, ok, err := c.Get(context.Background(), "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("empty address must never hit")
	}
}
