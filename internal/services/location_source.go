package services

import (
	"context"
	"fmt"
	"poi-viewer/internal/domain"
	"poi-viewer/internal/platform/obs"
	"poi-viewer/internal/ports"
	"sync"

	"github.com/rs/zerolog"
)

// LocationSource resolves the device position once and falls back to
// domain.DefaultCoordinate when that fails.
//
// The provider is asked at most once per source, no matter how often or from
// how many goroutines Resolve is called. A failed lookup is not retried.
type LocationSource struct {
	provider ports.GeolocationProvider

	once     sync.Once
	mu       sync.RWMutex
	current  domain.Coordinate
	resolved bool
}

func NewLocationSource(provider ports.GeolocationProvider) *LocationSource {
	return &LocationSource{
		provider: provider,
		current:  domain.DefaultCoordinate,
	}
}

// Resolve performs the one-shot lookup and returns the coordinate in force afterwards.
func (s *LocationSource) Resolve(ctx context.Context) domain.Coordinate {
	s.once.Do(func() { s.resolve(ctx) })
	return s.Current()
}

// Current returns the resolved coordinate, or the default while none is known.
func (s *LocationSource) Current() domain.Coordinate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Resolved reports whether a device position replaced the default.
func (s *LocationSource) Resolved() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolved
}

func (s *LocationSource) resolve(ctx context.Context) {
	if s.provider == nil {
		return
	}

	var err error
	defer obs.Time(ctx, "location.resolve")(&err)

	var c domain.Coordinate
	c, err = s.provider.CurrentPosition(ctx)
	if err == nil && !c.Valid() {
		err = fmt.Errorf("resolve location: provider returned out of range coordinate %s", c)
	}
	if err != nil {
		zerolog.Ctx(ctx).Info().Err(err).
			Str("fallback", domain.DefaultCoordinate.String()).
			Msg("location unavailable, keeping default")
		return
	}

	s.mu.Lock()
	s.current = c
	s.resolved = true
	s.mu.Unlock()
}
