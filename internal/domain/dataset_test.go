package domain

import "testing"

func TestNewCategoryDatasetHasAllKeys(t *testing.T) {
	ds := NewCategoryDataset()

	for _, c := range Categories() {
		ms, ok := ds[c]
		if !ok {
			t.Fatalf("category %q missing from new dataset", c)
		}
		if ms == nil || len(ms) != 0 {
			t.Fatalf("category %q = %v, want empty non-nil slice", c, ms)
		}
	}
}

func TestCategoryDatasetReplaceIsWholesale(t *testing.T) {
	ds := NewCategoryDataset()

	ds.Replace(CategoryRoutes, []Marker{{Name: "A"}, {Name: "B"}, {Name: "A"}})
	ds.Replace(CategoryRoutes, []Marker{{Name: "C"}})

	got := ds.Markers(CategoryRoutes)
	if len(got) != 1 || got[0].Name != "C" {
		t.Fatalf("routes = %v, want only C", got)
	}
}

func TestCategoryDatasetReplaceCopiesInput(t *testing.T) {
	ds := NewCategoryDataset()
	in := []Marker{{Name: "A"}}

	ds.Replace(CategoryTrending, in)
	in[0].Name = "mutated"

	if got := ds.Markers(CategoryTrending)[0].Name; got != "A" {
		t.Errorf("stored marker changed with caller slice: %q", got)
	}
}

func TestCategoryDatasetMarkersUnknownCategory(t *testing.T) {
	var ds CategoryDataset

	got := ds.Markers(CategoryEssentials)
	if got == nil || len(got) != 0 {
		t.Fatalf("Markers on nil dataset = %v, want empty slice", got)
	}
}
