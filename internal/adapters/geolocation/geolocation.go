package geolocation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"poi-viewer/internal/domain"
	"poi-viewer/internal/platform/httpclient"
	"poi-viewer/internal/platform/obs"
	"strconv"
	"strings"
)

// ErrUnavailable means no position source is configured or the source refused.
var ErrUnavailable = errors.New("geolocation: position unavailable")

// Unavailable is the provider used when nothing can report a position.
type Unavailable struct{}

func (Unavailable) CurrentPosition(context.Context) (domain.Coordinate, error) {
	return domain.Coordinate{}, ErrUnavailable
}

// StaticProvider reports a configured position.
type StaticProvider struct {
	coord domain.Coordinate
}

func NewStaticProvider(position string) (*StaticProvider, error) {
	c, err := ParsePosition(position)
	if err != nil {
		return nil, err
	}
	return &StaticProvider{coord: c}, nil
}

func (p *StaticProvider) CurrentPosition(ctx context.Context) (domain.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return domain.Coordinate{}, err
	}
	return p.coord, nil
}

// ParsePosition parses "lat,lng".
func ParsePosition(s string) (domain.Coordinate, error) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return domain.Coordinate{}, fmt.Errorf("parse position %q: expected \"lat,lng\"", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("parse position %q: invalid latitude: %w", s, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("parse position %q: invalid longitude: %w", s, err)
	}

	c := domain.Coordinate{Lat: lat, Lng: lng}
	if !c.Valid() {
		return domain.Coordinate{}, fmt.Errorf("parse position %q: out of range", s)
	}
	return c, nil
}

// Accepts both the ip-api.com and the ipapi.co field names.
type positionResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// HTTPProvider looks up the position of the current network address.
type HTTPProvider struct {
	client   *httpclient.Client
	endpoint string
}

func NewHTTPProvider(endpoint string, client *httpclient.Client) (*HTTPProvider, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.New("geolocation: endpoint is empty")
	}
	if client == nil {
		client = httpclient.New(0)
	}
	return &HTTPProvider{client: client, endpoint: endpoint}, nil
}

func (p *HTTPProvider) CurrentPosition(ctx context.Context) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, "geolocation.lookup")(&err)

	req, err := p.client.NewRequest(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geolocation request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded positionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinate{}, fmt.Errorf("decode geolocation response: %w", err)
	}

	if decoded.Status != "" && decoded.Status != "success" {
		return domain.Coordinate{}, fmt.Errorf("%w: %s", ErrUnavailable, decoded.Message)
	}

	lat, lng := decoded.Lat, decoded.Lon
	if lat == nil || lng == nil {
		lat, lng = decoded.Latitude, decoded.Longitude
	}
	if lat == nil || lng == nil {
		return domain.Coordinate{}, errors.New("invalid coordinate format in geolocation response")
	}

	return domain.Coordinate{Lat: *lat, Lng: *lng}, nil
}
