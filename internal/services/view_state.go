package services

import (
	"context"
	"errors"
	"fmt"
	"poi-viewer/internal/domain"
	"poi-viewer/internal/ports"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var (
	ErrViewStopped = errors.New("view state: not running")
	errViewStarted = errors.New("view state: already running")
)

type (
	locationResolved struct{ coord domain.Coordinate }
	localeResolved   struct{ tag domain.LocaleTag }
	categorySelected struct{ category domain.Category }
	refreshRequested struct{}
)

// viewModel is owned by the Run goroutine and never shared.
type viewModel struct {
	coord   domain.Coordinate
	locale  domain.LocaleTag
	dataset domain.CategoryDataset
	modes   *ModeSelector
}

func (m *viewModel) snapshot() domain.ViewSnapshot {
	return domain.ViewSnapshot{
		Coordinate: m.coord,
		Category:   m.modes.Active(),
		Markers:    m.modes.CurrentMarkers(m.dataset),
		Locale:     m.locale,
	}
}

// ViewState is the composition root of the viewer.
//
// Run owns the dataset and the mode selector. Every asynchronous completion
// (position, locale, each category) and every user selection arrives as an
// event on one channel and is applied in arrival order, so the state needs no
// lock. After each change the snapshot is recomputed and handed to the
// renderer; nothing is debounced and nothing waits for the other inputs.
type ViewState struct {
	location *LocationSource
	locale   *LocaleResolver
	loader   *CategoryDataLoader
	renderer ports.Renderer

	events  chan any
	done    chan struct{}
	started atomic.Bool
	current atomic.Pointer[domain.ViewSnapshot]
}

func NewViewState(
	location *LocationSource,
	locale *LocaleResolver,
	loader *CategoryDataLoader,
	renderer ports.Renderer,
) *ViewState {
	return &ViewState{
		location: location,
		locale:   locale,
		loader:   loader,
		renderer: renderer,
		events:   make(chan any, 32),
		done:     make(chan struct{}),
	}
}

// Run starts the startup lookups and processes events until ctx is done.
// It may be called once.
func (v *ViewState) Run(ctx context.Context) error {
	if !v.started.CompareAndSwap(false, true) {
		return errViewStarted
	}
	defer close(v.done)

	m := &viewModel{
		coord:   v.location.Current(),
		locale:  domain.DefaultLocale,
		dataset: domain.NewCategoryDataset(),
		modes:   NewModeSelector(),
	}
	v.publish(m)

	go func() {
		coord := v.location.Resolve(ctx)
		_ = v.post(ctx, locationResolved{coord: coord})
	}()
	go func() {
		_ = v.post(ctx, localeResolved{tag: v.locale.Resolve()})
	}()
	v.startLoad(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-v.events:
			if v.apply(ctx, m, ev) {
				v.publish(m)
			}
		}
	}
}

// SelectCategory queues a user selection. It never waits on network activity.
func (v *ViewState) SelectCategory(ctx context.Context, c domain.Category) error {
	if !c.Valid() {
		return fmt.Errorf("select category: unknown category %q", c)
	}
	return v.post(ctx, categorySelected{category: c})
}

// Refresh fetches all three categories again. Each result replaces the
// category it belongs to when it arrives.
func (v *ViewState) Refresh(ctx context.Context) error {
	return v.post(ctx, refreshRequested{})
}

// Snapshot returns the most recently rendered snapshot.
func (v *ViewState) Snapshot() domain.ViewSnapshot {
	if s := v.current.Load(); s != nil {
		return *s
	}
	return domain.ViewSnapshot{
		Coordinate: v.location.Current(),
		Category:   domain.CategoryTrending,
		Markers:    []domain.Marker{},
		Locale:     domain.DefaultLocale,
	}
}

func (v *ViewState) startLoad(ctx context.Context) {
	v.loader.LoadAll(ctx, func(l CategoryLoaded) {
		_ = v.post(ctx, l)
	})
}

func (v *ViewState) post(ctx context.Context, ev any) error {
	select {
	case <-v.done:
		return ErrViewStopped
	default:
	}

	select {
	case v.events <- ev:
		return nil
	case <-v.done:
		return ErrViewStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// apply mutates m and reports whether the snapshot must be recomputed.
func (v *ViewState) apply(ctx context.Context, m *viewModel, ev any) bool {
	switch e := ev.(type) {
	case locationResolved:
		if e.coord == m.coord {
			return false
		}
		m.coord = e.coord
		return true
	case localeResolved:
		if e.tag == m.locale {
			return false
		}
		m.locale = e.tag
		return true
	case CategoryLoaded:
		m.dataset.Replace(e.Category, e.Markers)
		return true
	case categorySelected:
		changed, err := m.modes.SetActive(e.category)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("ignoring category selection")
		}
		return changed
	case refreshRequested:
		v.startLoad(ctx)
		return false
	}
	return false
}

func (v *ViewState) publish(m *viewModel) {
	s := m.snapshot()
	v.current.Store(&s)
	if v.renderer != nil {
		v.renderer.Render(s)
	}
}
