package cache

import (
	"context"
	"database/sql"
	"testing"

	"freight-route-service/internal/domain"

	_ "modernc.org/sqlite"
)

func newTestSqliteCache(t *testing.T) *SqliteGeocodeCache {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSqliteSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return NewSqliteGeocodeCache(db)
}

func TestSqliteGeocodeCacheRoundTrip(t *testing.T) {
	c := newTestSqliteCache(t)
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

func TestSqliteGeocodeCacheOverwrite(t *testing.T) {
	c := newTestSqliteCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "Salvador", domain.Coordinate{Lat: 1, Lon: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	updated := domain.Coordinate{Lat: -12.9714, Lon: -38.5014}
	if err := c.Put(ctx, "Salvador", updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "Salvador")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || got != updated {
		t.Fatalf("coordinate = %+v ok=%v, want overwrite to %+v", got, ok, updated)
	}
}

func TestSqliteGeocodeCacheMiss(t *testing.T) {
	c := newTestSqliteCache(t)

	_, ok, err := c.Get(context.Background(), "Lugar Nenhum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected a cache miss")
	}
}
