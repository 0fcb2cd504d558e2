package repositories

import (
	"context"
	"os"
	"path/filepath"
	"poi-viewer/internal/domain"
	"poi-viewer/internal/platform/db"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SqliteMarkerRepository {
	t.Helper()

	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, InitSchema(context.Background(), conn))
	return NewSqliteMarkerRepository(conn)
}

func TestSqliteMarkerRepository_ReplaceAndList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	first := []domain.Marker{
		{Name: "Gyeongbokgung", Lat: 37.5796, Lng: 126.9770, Tags: []string{"#palace", "#hanbok"}},
		{Name: "N Seoul Tower", Lat: 37.5512, Lng: 126.9882},
	}
	require.NoError(t, repo.ReplaceCategory(ctx, domain.CategoryTrending, first))

	got, err := repo.ListMarkers(ctx, domain.CategoryTrending)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	second := []domain.Marker{{Name: "Myeongdong", Lat: 37.5636, Lng: 126.9827}}
	require.NoError(t, repo.ReplaceCategory(ctx, domain.CategoryTrending, second))

	got, err = repo.ListMarkers(ctx, domain.CategoryTrending)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestSqliteMarkerRepository_CategoriesAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.ReplaceCategory(ctx, domain.CategoryRoutes, []domain.Marker{
		{Name: "Bukchon", Lat: 37.5826, Lng: 126.9836},
	}))

	got, err := repo.ListMarkers(ctx, domain.CategoryEssentials)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestSqliteMarkerRepository_RejectsInvalidMarker(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.ReplaceCategory(ctx, domain.CategoryEssentials, []domain.Marker{
		{Name: "Toilet", Lat: 37.5, Lng: 126.9},
	}))

	err := repo.ReplaceCategory(ctx, domain.CategoryEssentials, []domain.Marker{
		{Name: "ok", Lat: 37.5, Lng: 126.9},
		{Name: "bad", Lat: 123, Lng: 126.9},
	})
	require.Error(t, err)

	// The failed replace rolled back; the previous set survives.
	got, err := repo.ListMarkers(ctx, domain.CategoryEssentials)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Toilet", got[0].Name)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	path := filepath.Join(t.TempDir(), "markers.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"trending": [{"name": "Ikseon-dong", "lat": 37.5743, "lng": 126.9897, "tags": ["#hanok"]}],
		"routes": [
			{"name": "Stop 1", "lat": 37.57, "lng": 126.97},
			{"name": "Stop 2", "lat": 37.58, "lng": 126.98}
		]
	}`), 0o600))

	require.NoError(t, Seed(ctx, repo, path))

	trending, err := repo.ListMarkers(ctx, domain.CategoryTrending)
	require.NoError(t, err)
	assert.Equal(t, []domain.Marker{
		{Name: "Ikseon-dong", Lat: 37.5743, Lng: 126.9897, Tags: []string{"#hanok"}},
	}, trending)

	routes, err := repo.ListMarkers(ctx, domain.CategoryRoutes)
	require.NoError(t, err)
	assert.Len(t, routes, 2)
}

func TestLoadSeed_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed", content: `{"trending": [`},
		{name: "unknown category", content: `{"nightlife": []}`},
		{name: "blank name", content: `{"trending": [{"name": " ", "lat": 1, "lng": 1}]}`},
		{name: "latitude out of range", content: `{"routes": [{"name": "x", "lat": 91, "lng": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "seed.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := LoadSeed(path)
			assert.Error(t, err)
		})
	}

	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
