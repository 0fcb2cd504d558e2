package ports

import (
	"context"
	"poi-viewer/internal/domain"
)

// Contract for a one-shot lookup of the device's current position.
type GeolocationProvider interface {
	// Return the current position, or an error when it cannot be determined.
	CurrentPosition(ctx context.Context) (domain.Coordinate, error)
}
