package services

import (
	"context"
	"poi-viewer/internal/domain"
	"poi-viewer/internal/platform/obs"
	"poi-viewer/internal/ports"

	"github.com/rs/zerolog"
)

// CategoryLoaded carries the full marker set of one category after a successful fetch.
type CategoryLoaded struct {
	Category domain.Category
	Markers  []domain.Marker
}

// CategoryDataLoader fetches every category independently.
//
// Each fetch runs in its own goroutine and reports through deliver as soon as
// it succeeds. There is no join: callers never learn when all three are done,
// and a failed fetch reports nothing, leaving that category at its last value.
type CategoryDataLoader struct {
	source ports.MarkerSource
}

func NewCategoryDataLoader(source ports.MarkerSource) *CategoryDataLoader {
	return &CategoryDataLoader{source: source}
}

// LoadAll starts one fetch per category and returns immediately. Without a
// source nothing is fetched and every category keeps its value.
func (l *CategoryDataLoader) LoadAll(ctx context.Context, deliver func(CategoryLoaded)) {
	if l == nil || l.source == nil {
		zerolog.Ctx(ctx).Warn().Msg("category loader has no marker source, skipping fetch")
		return
	}
	for _, c := range domain.Categories() {
		go l.load(ctx, c, deliver)
	}
}

func (l *CategoryDataLoader) load(ctx context.Context, c domain.Category, deliver func(CategoryLoaded)) {
	var err error
	defer obs.Time(ctx, "categories.load."+string(c))(&err)

	var markers []domain.Marker
	markers, err = l.source.FetchMarkers(ctx, c)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Str("category", string(c)).
			Msg("category fetch failed, keeping last known markers")
		return
	}
	if markers == nil {
		markers = []domain.Marker{}
	}

	deliver(CategoryLoaded{Category: c, Markers: markers})
}
