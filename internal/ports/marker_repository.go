package ports

import (
	"context"
	"poi-viewer/internal/domain"
)

// Port: a boundary for the stored markers served by the category endpoints.
type MarkerRepository interface {
	// Retrieve the markers of a category in display order.
	ListMarkers(ctx context.Context, category domain.Category) ([]domain.Marker, error)
	// Replace every marker of a category.
	ReplaceCategory(ctx context.Context, category domain.Category, markers []domain.Marker) error
}
