package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"freight-route-service/internal/domain"
	"freight-route-service/internal/platform/obs"
	"freight-route-service/internal/ports"
)

// NominatimGeocoder implements Geocoder using the OSM Nominatim search
// endpoint, restricted to Brazil. It coordinates:
//   - Address normalization
//   - Optional persistent geocode caching
//   - The external search call (first candidate wins)
//
// Failures are never retried here; the caller must resubmit.
type NominatimGeocoder struct {
	session *http.Client
	baseURL string
	country string
	cache   ports.GeocodeCache
}

func NewNominatimGeocoder(baseURL string, cache ports.GeocodeCache) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}

	return &NominatimGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		country: "br",
		cache:   cache,
	}
}

// searchResult mirrors the jsonv2 candidate shape. Nominatim encodes
// lat/lon as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *NominatimGeocoder) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Resolve an address to the first geocoding candidate.
func (g *NominatimGeocoder) Resolve(ctx context.Context, address string) (_ ports.GeocodeResult, err error) {
	defer obs.Time(ctx, "nominatim.Resolve")(&err)

	norm := g.normalize(address)
	if norm == "" {
		return ports.GeocodeResult{}, fmt.Errorf("%w: address must be non-empty", domain.ErrInvalidInput)
	}

	// Check the persistent cache before issuing an external call.
	if g.cache != nil {
		coord, ok, err := g.cache.Get(ctx, norm)
		if err != nil {
			log.Printf("geocode cache read failed: %v", err)
		} else if ok {
			return ports.GeocodeResult{Coordinate: coord, DisplayName: norm}, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search", nil)
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("create geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("q", norm)
	q.Set("format", "jsonv2")
	q.Set("limit", "1")
	q.Set("countrycodes", g.country)
	q.Set("addressdetails", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := g.session.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return ports.GeocodeResult{}, err
		}
		return ports.GeocodeResult{}, fmt.Errorf("%w: geocode request for %q: %v", domain.ErrServiceUnavailable, norm, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.GeocodeResult{}, fmt.Errorf("%w: geocode status %d for %q", domain.ErrServiceUnavailable, resp.StatusCode, norm)
	}

	var decoded []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("%w: decode geocode response: %v", domain.ErrServiceUnavailable, err)
	}

	if len(decoded) == 0 {
		return ports.GeocodeResult{}, fmt.Errorf("%w: no geocode results for %q", domain.ErrNotFound, norm)
	}

	first := decoded[0]

	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("%w: invalid latitude %q", domain.ErrServiceUnavailable, first.Lat)
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("%w: invalid longitude %q", domain.ErrServiceUnavailable, first.Lon)
	}

	coord, err := domain.NewCoordinate(lat, lon)
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("%w: geocode candidate for %q: %v", domain.ErrServiceUnavailable, norm, err)
	}

	if g.cache != nil {
		if err := g.cache.Put(ctx, norm, coord); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return ports.GeocodeResult{Coordinate: coord, DisplayName: first.DisplayName}, nil
}
