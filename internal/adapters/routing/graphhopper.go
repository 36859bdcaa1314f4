package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"freight-route-service/internal/domain"
	"freight-route-service/internal/platform/obs"

	"github.com/paulmach/orb"
)

// GraphHopperEngine implements RoutingEngine against the GraphHopper
// Directions API. Exactly the first returned route alternative is
// normalized into the domain Route shape. Requests are never retried.
type GraphHopperEngine struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
	locale  string
}

func NewGraphHopperEngine(apiKey, baseURL string) (*GraphHopperEngine, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("graphhopper api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://graphhopper.com/api/1"
	}

	return &GraphHopperEngine{
		session: &http.Client{Timeout: 30 * time.Second},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: "car",
		locale:  "pt-BR",
	}, nil
}

type routeResponse struct {
	Paths []struct {
		Distance float64 `json:"distance"`
		Time     int64   `json:"time"`
		Points   struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"points"`
		Instructions []struct {
			Text       string  `json:"text"`
			Distance   float64 `json:"distance"`
			Time       int64   `json:"time"`
			Sign       int     `json:"sign"`
			StreetName string  `json:"street_name"`
		} `json:"instructions"`
	} `json:"paths"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// ComputeRoute requests directions through the given waypoints.
func (e *GraphHopperEngine) ComputeRoute(ctx context.Context, waypoints []domain.Coordinate) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "graphhopper.ComputeRoute")(&err)

	if len(waypoints) < 2 {
		return nil, fmt.Errorf("%w: at least 2 waypoints required, got %d", domain.ErrInvalidInput, len(waypoints))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/route", nil)
	if err != nil {
		return nil, fmt.Errorf("create route request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	for _, wp := range waypoints {
		q.Add("point", fmt.Sprintf("%v,%v", wp.Lat, wp.Lon))
	}
	q.Set("profile", e.profile)
	q.Set("locale", e.locale)
	q.Set("instructions", "true")
	q.Set("points_encoded", "false")
	q.Set("key", e.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := e.session.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: route request: %v", domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("%w: routing engine status %d", domain.ErrServiceUnavailable, resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		// Engine-reported routing error. Surface its message when the
		// payload carries one, falling back to a generic message.
		b, _ := io.ReadAll(resp.Body)
		var decoded errorResponse
		msg := "unknown routing error"
		if err := json.Unmarshal(b, &decoded); err == nil && strings.TrimSpace(decoded.Message) != "" {
			msg = decoded.Message
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrRoutingFailed, msg)
	}

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode route response: %v", domain.ErrServiceUnavailable, err)
	}

	if len(decoded.Paths) == 0 {
		return nil, fmt.Errorf("%w: engine returned no route alternatives", domain.ErrRoutingFailed)
	}

	// First alternative only.
	path := decoded.Paths[0]

	instructions := make([]domain.RouteInstruction, 0, len(path.Instructions))
	for _, in := range path.Instructions {
		instructions = append(instructions, domain.RouteInstruction{
			Text:           in.Text,
			DistanceMeters: in.Distance,
			TimeSeconds:    float64(in.Time) / 1000,
			Maneuver:       maneuverFromSign(in.Sign),
			RoadName:       in.StreetName,
		})
	}

	geometry := make(orb.LineString, 0, len(path.Points.Coordinates))
	for _, c := range path.Points.Coordinates {
		if len(c) < 2 {
			return nil, fmt.Errorf("%w: invalid geometry point in route response", domain.ErrServiceUnavailable)
		}
		geometry = append(geometry, orb.Point{c[0], c[1]})
	}

	return &domain.Route{
		Summary: domain.RouteSummary{
			TotalDistanceMeters: path.Distance,
			TotalTimeSeconds:    float64(path.Time) / 1000,
		},
		Instructions: instructions,
		Geometry:     geometry,
	}, nil
}

// maneuverFromSign maps GraphHopper instruction sign codes onto the
// domain maneuver set.
func maneuverFromSign(sign int) domain.Maneuver {
	switch sign {
	case 0:
		return domain.ManeuverStraight
	case -1, -2, -3:
		return domain.ManeuverTurnLeft
	case 1, 2, 3:
		return domain.ManeuverTurnRight
	case 6:
		return domain.ManeuverRoundabout
	case 4:
		return domain.ManeuverDestination
	}
	return domain.ManeuverOther
}
