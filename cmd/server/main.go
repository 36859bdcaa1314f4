package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"freight-route-service/internal/adapters/cache"
	"freight-route-service/internal/adapters/geocode"
	"freight-route-service/internal/adapters/routing"
	"freight-route-service/internal/api"
	"freight-route-service/internal/config"
	"freight-route-service/internal/domain"
	"freight-route-service/internal/platform/db"
	"freight-route-service/internal/ports"
	"freight-route-service/internal/services"
	"freight-route-service/internal/state"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, GraphHopper, geocode caches)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	nominatimURL := config.Get("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	graphhopperURL := config.Get("GRAPHHOPPER_URL", "https://graphhopper.com/api/1")

	// A missing routing credential is a fatal startup condition, not a
	// per-request error.
	ghKey := os.Getenv("GRAPHHOPPER_API_KEY")
	if strings.TrimSpace(ghKey) == "" {
		log.Fatal("GRAPHHOPPER_API_KEY is required")
	}

	geocodeCache, closeCache, err := openGeocodeCache()
	if err != nil {
		log.Fatal(err)
	}
	if closeCache != nil {
		defer closeCache()
	}

	geocoder := geocode.NewNominatimGeocoder(nominatimURL, geocodeCache)

	engine, err := routing.NewGraphHopperEngine(ghKey, graphhopperURL)
	if err != nil {
		log.Fatal(err)
	}

	store := state.NewStore(domain.CacadorAirport)
	session := services.NewSession(store, geocoder, engine)

	// Session events are consumed here purely for logging; display
	// consumers read snapshots over HTTP.
	go func() {
		for e := range session.Events() {
			if e.Err != "" {
				log.Printf("session event kind=%s err=%q", e.Kind, e.Err)
				continue
			}
			log.Printf("session event kind=%s", e.Kind)
		}
	}()

	router := api.NewRouter(session)

	// Timeouts are tuned for cold-cache geocoding and routing calls
	// (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openGeocodeCache picks a cache backend from the environment:
// Postgres when DATABASE_URL is set, Redis when REDIS_ADDR is set,
// a local SQLite file otherwise.
func openGeocodeCache() (ports.GeocodeCache, func(), error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.InitSQLSchema(pg); err != nil {
			pg.Close()
			return nil, nil, err
		}
		log.Println("geocode cache backend=postgres")
		return cache.NewSQLGeocodeCache(pg), func() { pg.Close() }, nil
	}

	if redisAddr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(redisAddr) != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		log.Println("geocode cache backend=redis")
		return cache.NewRedisGeocodeCache(client), func() { client.Close() }, nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	lite, err := openSqlite(dbPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cache.InitSqliteSchema(lite); err != nil {
		lite.Close()
		return nil, nil, err
	}
	log.Println("geocode cache backend=sqlite")
	return cache.NewSqliteGeocodeCache(lite), func() { lite.Close() }, nil
}

func openSqlite(dbPath string) (*sql.DB, error) {
	lite, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := lite.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return lite, nil
}
