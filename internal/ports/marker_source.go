package ports

import (
	"context"
	"poi-viewer/internal/domain"
)

// Contract for fetching the markers of one category from its endpoint.
type MarkerSource interface {
	FetchMarkers(ctx context.Context, category domain.Category) ([]domain.Marker, error)
}
