package tui

import (
	"math"
	"poi-viewer/internal/domain"
	"strconv"
	"strings"
)

const (
	MapZoom        = 15
	TileURL        = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	MapAttribution = "© OpenStreetMap contributors"

	// Web Mercator stops here; the poles project to infinity.
	maxMercatorLat = 85.05112878
)

// TileFor returns the slippy-map tile containing c at zoom.
func TileFor(c domain.Coordinate, zoom int) (x, y int) {
	n := math.Exp2(float64(zoom))
	lat := min(max(c.Lat, -maxMercatorLat), maxMercatorLat)
	latRad := lat * math.Pi / 180

	x = int(math.Floor((c.Lng + 180) / 360 * n))
	y = int(math.Floor((1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * n))

	maxIdx := int(n) - 1
	x = min(max(x, 0), maxIdx)
	y = min(max(y, 0), maxIdx)
	return x, y
}

// CenterTileURL expands TileURL for the tile under c, using the "a" subdomain.
func CenterTileURL(c domain.Coordinate, zoom int) string {
	x, y := TileFor(c, zoom)
	return strings.NewReplacer(
		"{s}", "a",
		"{z}", strconv.Itoa(zoom),
		"{x}", strconv.Itoa(x),
		"{y}", strconv.Itoa(y),
	).Replace(TileURL)
}
