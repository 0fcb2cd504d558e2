package markers

import (
	"context"
	"fmt"
	"poi-viewer/internal/domain"
)

// MockMarkerSource serves fixed marker sets; a category listed in Fail errors.
type MockMarkerSource struct {
	sets map[domain.Category][]domain.Marker
	Fail map[domain.Category]error
}

func NewMockMarkerSource(sets map[domain.Category][]domain.Marker) *MockMarkerSource {
	return &MockMarkerSource{sets: sets, Fail: map[domain.Category]error{}}
}

func (s *MockMarkerSource) FetchMarkers(ctx context.Context, category domain.Category) ([]domain.Marker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := s.Fail[category]; ok {
		return nil, err
	}
	ms, ok := s.sets[category]
	if !ok {
		return nil, fmt.Errorf("missing category %q", category)
	}
	return ms, nil
}
