// Package tui is the terminal rendering surface of the viewer.
package tui

import (
	"context"
	"poi-viewer/internal/adapters/catalog"
	"poi-viewer/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Viewer is the part of services.ViewState the UI drives.
type Viewer interface {
	SelectCategory(ctx context.Context, c domain.Category) error
	Refresh(ctx context.Context) error
}

// Localizer translates a marker name for display and never fails.
type Localizer interface {
	Localize(ctx context.Context, text string, target domain.LocaleTag) string
}

type localizedMsg struct {
	frame int
	index int
	text  string
}

type Model struct {
	ctx       context.Context
	viewer    Viewer
	frames    *FrameQueue
	captions  *catalog.Captions
	localizer Localizer

	// pending is the most recent selection; frames may still show an older mode.
	pending domain.Category

	snap    domain.ViewSnapshot
	hasSnap bool
	frame   int
	names   []string
	width   int
}

func New(
	ctx context.Context,
	viewer Viewer,
	frames *FrameQueue,
	captions *catalog.Captions,
	localizer Localizer,
) Model {
	return Model{
		ctx:       ctx,
		viewer:    viewer,
		frames:    frames,
		captions:  captions,
		localizer: localizer,
		pending:   domain.CategoryTrending,
		snap: domain.ViewSnapshot{
			Coordinate: domain.DefaultCoordinate,
			Category:   domain.CategoryTrending,
			Markers:    []domain.Marker{},
			Locale:     domain.DefaultLocale,
		},
	}
}

func (m Model) Init() tea.Cmd {
	return m.frames.wait(m.ctx)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case SnapshotMsg:
		m.snap = domain.ViewSnapshot(msg)
		m.hasSnap = true
		m.frame++
		m.names = make([]string, len(m.snap.Markers))
		for i, mk := range m.snap.Markers {
			m.names[i] = mk.Name
		}
		cmds := []tea.Cmd{m.frames.wait(m.ctx)}
		cmds = append(cmds, m.localizeNames()...)
		return m, tea.Batch(cmds...)

	case localizedMsg:
		// Results for an older frame are dropped.
		if msg.frame == m.frame && msg.index < len(m.names) {
			m.names[msg.index] = msg.text
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "1", "2", "3":
		cats := domain.Categories()
		m.selectMode(cats[int(msg.String()[0]-'1')])
	case "tab", "right", "l":
		m.selectMode(m.step(1))
	case "shift+tab", "left", "h":
		m.selectMode(m.step(-1))
	case "r":
		if err := m.viewer.Refresh(m.ctx); err != nil {
			zerolog.Ctx(m.ctx).Warn().Err(err).Msg("refresh failed")
		}
	}
	return m, nil
}

// step returns the mode offset by delta from the last selection, wrapping.
func (m Model) step(delta int) domain.Category {
	cats := domain.Categories()
	idx := 0
	for i, c := range cats {
		if c == m.pending {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(cats)) % len(cats)
	return cats[idx]
}

// selectMode posts the selection from the UI goroutine so key presses reach
// the view state in the order they were typed. Posting only blocks while the
// view's event buffer is full.
func (m *Model) selectMode(c domain.Category) {
	if err := m.viewer.SelectCategory(m.ctx, c); err != nil {
		zerolog.Ctx(m.ctx).Warn().Err(err).Str("category", string(c)).Msg("select mode failed")
		return
	}
	m.pending = c
}

// localizeNames starts one translation per displayed marker name.
func (m Model) localizeNames() []tea.Cmd {
	if m.localizer == nil {
		return nil
	}
	ctx, l, frame, target := m.ctx, m.localizer, m.frame, m.snap.Locale
	cmds := make([]tea.Cmd, 0, len(m.snap.Markers))
	for i, mk := range m.snap.Markers {
		name := mk.Name
		cmds = append(cmds, func() tea.Msg {
			return localizedMsg{frame: frame, index: i, text: l.Localize(ctx, name, target)}
		})
	}
	return cmds
}
