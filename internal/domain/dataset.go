package domain

// CategoryDataset maps every category to its most recently loaded markers.
//
// All three keys are present from construction on and are never deleted.
// A category is replaced wholesale on each successful load; there is no
// item-level merge and no deduplication.
type CategoryDataset map[Category][]Marker

func NewCategoryDataset() CategoryDataset {
	ds := make(CategoryDataset, len(Categories()))
	for _, c := range Categories() {
		ds[c] = []Marker{}
	}
	return ds
}

// Replace stores markers as the full set for c.
func (ds CategoryDataset) Replace(c Category, markers []Marker) {
	stored := make([]Marker, len(markers))
	copy(stored, markers)
	ds[c] = stored
}

// Markers returns the set for c, or an empty slice when nothing is loaded.
func (ds CategoryDataset) Markers(c Category) []Marker {
	if ms, ok := ds[c]; ok && ms != nil {
		return ms
	}
	return []Marker{}
}

