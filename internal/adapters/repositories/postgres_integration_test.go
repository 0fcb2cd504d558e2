//go:build integration

package repositories

import (
	"context"
	"database/sql"
	"testing"

	"poi-viewer/internal/domain"
	"poi-viewer/internal/platform/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDatabase(t *testing.T) *sql.DB {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	conn, err := db.Open(connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
	})

	require.NoError(t, InitPostgresSchema(ctx, conn))
	return conn
}

func TestSQLMarkerRepository_Integration(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLMarkerRepository(setupTestDatabase(t))

	t.Run("replace then list keeps order and tags", func(t *testing.T) {
		markers := []domain.Marker{
			{Name: "Seongsu Cafe Street", Lat: 37.5446, Lng: 127.0557, Tags: []string{"#cafe", "#popup"}},
			{Name: "Hongdae", Lat: 37.5563, Lng: 126.9236},
		}
		require.NoError(t, repo.ReplaceCategory(ctx, domain.CategoryTrending, markers))

		got, err := repo.ListMarkers(ctx, domain.CategoryTrending)
		require.NoError(t, err)
		assert.Equal(t, markers, got)
	})

	t.Run("replace is wholesale", func(t *testing.T) {
		require.NoError(t, repo.ReplaceCategory(ctx, domain.CategoryTrending, []domain.Marker{
			{Name: "Euljiro", Lat: 37.5660, Lng: 126.9910},
		}))

		got, err := repo.ListMarkers(ctx, domain.CategoryTrending)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Euljiro", got[0].Name)
	})

	t.Run("empty category", func(t *testing.T) {
		got, err := repo.ListMarkers(ctx, domain.CategoryRoutes)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
