package dto

import "poi-viewer/internal/domain"

// MarkerResponse is one element of the array served by GET /api/:category.
type MarkerResponse struct {
	Name string   `json:"name"`
	Lat  float64  `json:"lat"`
	Lng  float64  `json:"lng"`
	Tags []string `json:"tags,omitempty"`
}

// FromMarkers always returns a non-nil slice so an empty category encodes as [].
func FromMarkers(markers []domain.Marker) []MarkerResponse {
	out := make([]MarkerResponse, 0, len(markers))
	for _, m := range markers {
		out = append(out, MarkerResponse{
			Name: m.Name,
			Lat:  m.Lat,
			Lng:  m.Lng,
			Tags: m.Tags,
		})
	}
	return out
}
