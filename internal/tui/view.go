package tui

import (
	"fmt"
	"poi-viewer/internal/adapters/catalog"
	"poi-viewer/internal/domain"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderButtons())
	b.WriteString("\n")
	b.WriteString(captionStyle.Render(m.captions.Caption(m.snap.Category, m.snap.Locale)))
	b.WriteString("\n")
	b.WriteString(m.renderMarkers())
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(m.captions.Text(catalog.KeyHelp, m.snap.Locale)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("📍 " + m.snap.Coordinate.String())
	meta := metaStyle.Render(fmt.Sprintf("  zoom %d  %s", MapZoom, CenterTileURL(m.snap.Coordinate, MapZoom)))
	return title + meta + "\n" + mutedStyle.Render(MapAttribution)
}

func (m Model) renderButtons() string {
	buttons := make([]string, 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		style := outlineButtonStyle
		if c == m.snap.Category {
			style = activeButtonStyle
		}
		buttons = append(buttons, style.Render(m.captions.ModeLabel(c, m.snap.Locale)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m Model) renderMarkers() string {
	if !m.hasSnap {
		return mutedStyle.Render(m.captions.Text(catalog.KeyLoading, m.snap.Locale))
	}
	if len(m.snap.Markers) == 0 {
		return mutedStyle.Render(m.captions.Text(catalog.KeyEmpty, m.snap.Locale))
	}

	lines := make([]string, 0, len(m.snap.Markers))
	for i, mk := range m.snap.Markers {
		name := mk.Name
		if i < len(m.names) {
			name = m.names[i]
		}
		line := fmt.Sprintf("%2d. %s %s", i+1, markerStyle.Render(name), coordStyle.Render("("+mk.Position().String()+")"))
		if len(mk.Tags) > 0 {
			line += " " + tagStyle.Render(strings.Join(mk.Tags, " "))
		}
		lines = append(lines, line)
	}

	out := strings.Join(lines, "\n")
	if m.width > 0 {
		out = lipgloss.NewStyle().MaxWidth(m.width).Render(out)
	}
	return out
}
