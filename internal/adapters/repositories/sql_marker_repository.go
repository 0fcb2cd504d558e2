package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"poi-viewer/internal/domain"
	"poi-viewer/internal/platform/obs"
)

// SQLMarkerRepository is the Postgres-backed MarkerRepository.
type SQLMarkerRepository struct {
	DB *sql.DB
}

func NewSQLMarkerRepository(db *sql.DB) *SQLMarkerRepository {
	return &SQLMarkerRepository{DB: db}
}

func (s *SQLMarkerRepository) ListMarkers(
	ctx context.Context,
	category domain.Category,
) (_ []domain.Marker, err error) {
	defer obs.Time(ctx, "markers.sql.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql marker repository: db is nil")
	}

	q := `
	SELECT name, lat, lng, tags
	FROM markers
	WHERE category = $1
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, q, string(category))
	if err != nil {
		return nil, fmt.Errorf("list markers: query markers table: %w", err)
	}
	defer rows.Close()

	return scanMarkers(rows)
}

func (s *SQLMarkerRepository) ReplaceCategory(
	ctx context.Context,
	category domain.Category,
	markers []domain.Marker,
) (err error) {
	defer obs.Time(ctx, "markers.sql.Replace")(&err)

	if s.DB == nil {
		return errors.New("sql marker repository: db is nil")
	}

	return replaceCategory(ctx, s.DB, category, markers,
		`DELETE FROM markers WHERE category = $1;`,
		`
	INSERT INTO markers (category, position, name, lat, lng, tags)
	VALUES ($1, $2, $3, $4, $5, $6);
	`)
}
