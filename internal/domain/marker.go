package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Represents a single point of interest shown on the map.
// Tags are optional and keep the order the backend sent them in.
type Marker struct {
	Name string
	Lat  float64
	Lng  float64
	Tags []string
}

func (m Marker) Position() Coordinate { return Coordinate{Lat: m.Lat, Lng: m.Lng} }

// Validate rejects markers a map surface could not place.
func (m Marker) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("marker: name must not be empty")
	}
	if !m.Position().Valid() {
		return fmt.Errorf("marker %q: coordinate %s out of range", m.Name, m.Position())
	}
	return nil
}

// PopupText is the name followed by the tags, each tag followed by a space.
func (m Marker) PopupText() string {
	if len(m.Tags) == 0 {
		return m.Name
	}
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteString("\n")
	for _, t := range m.Tags {
		b.WriteString(t)
		b.WriteString(" ")
	}
	return b.String()
}
