package markers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"poi-viewer/internal/domain"
	"poi-viewer/internal/platform/httpclient"
	"poi-viewer/internal/platform/obs"
	"strings"
)

type markerPayload struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
	Tags []string `json:"tags,omitempty"`
}

// HTTPMarkerSource implements MarkerSource against the category endpoints
// (GET <base>/api/<category>).
//
// Each call is a single attempt. Error statuses, undecodable bodies and
// markers without a usable position all fail the whole fetch.
// The source is safe for concurrent use.
type HTTPMarkerSource struct {
	client  *httpclient.Client
	baseURL string
}

func NewHTTPMarkerSource(baseURL string, client *httpclient.Client) (*HTTPMarkerSource, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("marker source: base url is empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("marker source: invalid base url %q", baseURL)
	}
	if client == nil {
		client = httpclient.New(0)
	}

	return &HTTPMarkerSource{client: client, baseURL: baseURL}, nil
}

// Endpoint returns the fixed URL serving a category.
func (s *HTTPMarkerSource) Endpoint(c domain.Category) string {
	return s.baseURL + "/api/" + url.PathEscape(string(c))
}

func (s *HTTPMarkerSource) FetchMarkers(
	ctx context.Context,
	category domain.Category,
) (_ []domain.Marker, err error) {
	defer obs.Time(ctx, "markers.fetch")(&err)

	if !category.Valid() {
		return nil, fmt.Errorf("fetch markers: unknown category %q", category)
	}

	endpoint := s.Endpoint(category)
	req, err := s.client.NewRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch markers %s: %w", category, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch markers GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	var decoded []markerPayload
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("fetch markers %s: decode response: %w", category, err)
	}

	out := make([]domain.Marker, 0, len(decoded))
	for i, p := range decoded {
		if p.Lat == nil || p.Lng == nil {
			return nil, fmt.Errorf("fetch markers %s: item %d: missing lat/lng", category, i)
		}
		m := domain.Marker{
			Name: p.Name,
			Lat:  *p.Lat,
			Lng:  *p.Lng,
			Tags: p.Tags,
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("fetch markers %s: item %d: %w", category, i, err)
		}
		out = append(out, m)
	}

	return out, nil
}
