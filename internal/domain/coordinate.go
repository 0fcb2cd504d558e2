package domain

import "fmt"

// Seoul city hall. Used until a device position has been resolved.
var DefaultCoordinate = Coordinate{Lat: 37.5665, Lng: 126.9780}

// Immutable geographic coordinates (latitude, longitude).
type Coordinate struct {
	Lat float64
	Lng float64
}

// Valid reports whether the coordinate lies within WGS84 bounds.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lng)
}
