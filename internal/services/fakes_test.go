package services

import (
	"context"
	"fmt"
	"poi-viewer/internal/domain"
	"sync"
	"sync/atomic"
	"testing"
)

type stubGeolocation struct {
	coord   domain.Coordinate
	err     error
	release chan struct{}
	calls   atomic.Int32
}

func (s *stubGeolocation) CurrentPosition(ctx context.Context) (domain.Coordinate, error) {
	s.calls.Add(1)
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return domain.Coordinate{}, ctx.Err()
		}
	}
	return s.coord, s.err
}

type staticLanguage string

func (l staticLanguage) Language() string { return string(l) }

type fetchResult struct {
	markers []domain.Marker
	err     error
}

// gatedMarkerSource answers a category fetch only once the test releases it.
type gatedMarkerSource struct {
	gates map[domain.Category]chan fetchResult
}

func newGatedMarkerSource() *gatedMarkerSource {
	g := &gatedMarkerSource{gates: map[domain.Category]chan fetchResult{}}
	for _, c := range domain.Categories() {
		g.gates[c] = make(chan fetchResult, 4)
	}
	return g
}

func (g *gatedMarkerSource) FetchMarkers(ctx context.Context, c domain.Category) ([]domain.Marker, error) {
	select {
	case r := <-g.gates[c]:
		return r.markers, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *gatedMarkerSource) resolve(c domain.Category, markers []domain.Marker) {
	g.gates[c] <- fetchResult{markers: markers}
}

func (g *gatedMarkerSource) fail(c domain.Category) {
	g.gates[c] <- fetchResult{err: fmt.Errorf("GET /api/%s: Code 502: bad gateway", c)}
}

type recordingRenderer struct {
	mu     sync.Mutex
	frames []domain.ViewSnapshot
}

func (r *recordingRenderer) Render(s domain.ViewSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, s)
}

func (r *recordingRenderer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func (r *recordingRenderer) all() []domain.ViewSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ViewSnapshot, len(r.frames))
	copy(out, r.frames)
	return out
}

func makeMarkers(prefix string, n int) []domain.Marker {
	out := make([]domain.Marker, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Marker{
			Name: fmt.Sprintf("%s-%d", prefix, i+1),
			Lat:  37.5 + float64(i)/100,
			Lng:  127.0,
		})
	}
	return out
}

func startView(
	t *testing.T,
	geo *stubGeolocation,
	lang string,
	src *gatedMarkerSource,
) (*ViewState, *recordingRenderer) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	rr := &recordingRenderer{}
	v := NewViewState(
		NewLocationSource(geo),
		NewLocaleResolver(staticLanguage(lang)),
		NewCategoryDataLoader(src),
		rr,
	)

	errCh := make(chan error, 1)
	go func() { errCh <- v.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-errCh
	})

	return v, rr
}
