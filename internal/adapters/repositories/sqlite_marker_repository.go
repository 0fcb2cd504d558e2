package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"poi-viewer/internal/domain"
	"poi-viewer/internal/platform/obs"
)

// SQLite-backed implementation of the MarkerRepository port.
type SqliteMarkerRepository struct{ DB *sql.DB }

func NewSqliteMarkerRepository(db *sql.DB) *SqliteMarkerRepository {
	return &SqliteMarkerRepository{DB: db}
}

// Return the markers of a category in stored order.
func (s *SqliteMarkerRepository) ListMarkers(
	ctx context.Context,
	category domain.Category,
) (_ []domain.Marker, err error) {
	defer obs.Time(ctx, "markers.sqlite.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite marker repository: DB is nil")
	}

	query := `
	SELECT
		name,
		lat,
		lng,
		tags
	FROM markers
	WHERE category = ?
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("list markers: query markers table: %w", err)
	}
	defer rows.Close()

	return scanMarkers(rows)
}

// Replace every marker of a category in one transaction.
func (s *SqliteMarkerRepository) ReplaceCategory(
	ctx context.Context,
	category domain.Category,
	markers []domain.Marker,
) (err error) {
	defer obs.Time(ctx, "markers.sqlite.Replace")(&err)

	if s.DB == nil {
		return errors.New("sqlite marker repository: DB is nil")
	}

	return replaceCategory(ctx, s.DB, category, markers,
		`DELETE FROM markers WHERE category = ?;`,
		`
	INSERT INTO markers (
		category,
		position,
		name,
		lat,
		lng,
		tags
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
}

func scanMarkers(rows *sql.Rows) ([]domain.Marker, error) {
	markers := make([]domain.Marker, 0, 16)
	for rows.Next() {
		var m domain.Marker
		var tags sql.NullString
		if err := rows.Scan(&m.Name, &m.Lat, &m.Lng, &tags); err != nil {
			return nil, fmt.Errorf("list markers: scan row: %w", err)
		}
		decoded, err := decodeTags(tags)
		if err != nil {
			return nil, fmt.Errorf("list markers: marker %q: %w", m.Name, err)
		}
		m.Tags = decoded
		markers = append(markers, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list markers: row iteration: %w", err)
	}

	return markers, nil
}

func replaceCategory(
	ctx context.Context,
	db *sql.DB,
	category domain.Category,
	markers []domain.Marker,
	deleteQuery, insertQuery string,
) error {
	if !category.Valid() {
		return fmt.Errorf("replace markers: unknown category %q", category)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace markers: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteQuery, string(category)); err != nil {
		return fmt.Errorf("replace markers: delete %s: %w", category, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("replace markers: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range markers {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("replace markers: %w", err)
		}
		tags, err := encodeTags(m.Tags)
		if err != nil {
			return fmt.Errorf("replace markers: marker %q: %w", m.Name, err)
		}
		if _, err := stmt.ExecContext(ctx, string(category), i, m.Name, m.Lat, m.Lng, tags); err != nil {
			return fmt.Errorf("replace markers: insert %s #%d: %w", category, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace markers: commit tx: %w", err)
	}

	return nil
}
