package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"poi-viewer/internal/domain"
	"poi-viewer/internal/ports"
	"strings"
)

// MarkerSeed is one entry of the seed file, keyed by category:
//
//	{"trending": [{"name": "...", "lat": 37.5, "lng": 126.9, "tags": ["#x"]}], ...}
type MarkerSeed struct {
	Name string   `json:"name"`
	Lat  float64  `json:"lat"`
	Lng  float64  `json:"lng"`
	Tags []string `json:"tags,omitempty"`
}

// Read and validate a seed file.
func LoadSeed(jsonPath string) (map[domain.Category][]domain.Marker, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed markers: read %q: %w", jsonPath, err)
	}

	var data map[string][]MarkerSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed markers: parse json: %w", err)
	}

	out := make(map[domain.Category][]domain.Marker, len(data))
	for key, items := range data {
		category, err := domain.ParseCategory(key)
		if err != nil {
			return nil, fmt.Errorf("seed markers: %w", err)
		}

		markers := make([]domain.Marker, 0, len(items))
		for i, item := range items {
			m := domain.Marker{
				Name: strings.TrimSpace(item.Name),
				Lat:  item.Lat,
				Lng:  item.Lng,
				Tags: item.Tags,
			}
			if err := m.Validate(); err != nil {
				return nil, fmt.Errorf("seed markers: %s item at index %d: %w", category, i+1, err)
			}
			markers = append(markers, m)
		}
		out[category] = markers
	}

	return out, nil
}

// Populate the repository with the markers of a seed file. Categories absent
// from the file are left untouched.
func Seed(ctx context.Context, repo ports.MarkerRepository, jsonPath string) error {
	sets, err := LoadSeed(jsonPath)
	if err != nil {
		return err
	}

	for _, c := range domain.Categories() {
		markers, ok := sets[c]
		if !ok {
			continue
		}
		if err := repo.ReplaceCategory(ctx, c, markers); err != nil {
			return fmt.Errorf("seed markers: %w", err)
		}
	}

	return nil
}
