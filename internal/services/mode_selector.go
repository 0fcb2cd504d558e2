package services

import (
	"fmt"
	"poi-viewer/internal/domain"
)

// ModeSelector holds the active category. It is not safe for concurrent use;
// the view loop is its only writer.
type ModeSelector struct {
	active domain.Category
}

func NewModeSelector() *ModeSelector {
	return &ModeSelector{active: domain.CategoryTrending}
}

// SetActive switches the active category and reports whether it changed.
func (m *ModeSelector) SetActive(c domain.Category) (bool, error) {
	if !c.Valid() {
		return false, fmt.Errorf("set active category: unknown category %q", c)
	}
	if c == m.active {
		return false, nil
	}
	m.active = c
	return true, nil
}

func (m *ModeSelector) Active() domain.Category {
	return m.active
}

// CurrentMarkers returns the markers of the active category, empty until it loads.
func (m *ModeSelector) CurrentMarkers(ds domain.CategoryDataset) []domain.Marker {
	return ds.Markers(m.active)
}
