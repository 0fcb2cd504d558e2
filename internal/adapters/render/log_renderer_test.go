package render

import (
	"bytes"
	"encoding/json"
	"poi-viewer/internal/adapters/catalog"
	"poi-viewer/internal/domain"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	r := NewLogRenderer(zerolog.New(&buf), catalog.MustNew())

	r.Render(domain.ViewSnapshot{
		Coordinate: domain.DefaultCoordinate,
		Category:   domain.CategoryEssentials,
		Markers: []domain.Marker{
			{Name: "GS25 명동점", Lat: 37.56, Lng: 126.98},
			{Name: "명동 공중화장실", Lat: 37.5635, Lng: 126.9860, Tags: []string{"#무료", "#24시간"}},
		},
		Locale: domain.LocaleKorean,
	})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "view updated", line["message"])
	assert.Equal(t, "37.5665,126.9780", line["center"])
	assert.Equal(t, "essentials", line["mode"])
	assert.Equal(t, float64(2), line["markers"])
	assert.Equal(t, []any{"GS25 명동점", "명동 공중화장실\n#무료 #24시간 "}, line["popups"])
	assert.Equal(t, "당장 필요한 장소 (화장실, 편의점 등)를 찾을 수 있어요.", line["caption"])
}
