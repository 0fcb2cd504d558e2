package domain

// ViewSnapshot is everything a rendering surface needs for one frame.
// It is derived from the other entities and has no lifecycle of its own.
type ViewSnapshot struct {
	Coordinate Coordinate
	Category   Category
	Markers    []Marker
	Locale     LocaleTag
}
