package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ListRenderings returns every row of the book, ordered deterministically
// by portfolio, name, and id.
//
// Returns an empty slice (not nil) when the book is empty.
func (s *Store) ListRenderings(ctx context.Context) ([]Rendering, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, portfolio, name, rendering, depth, nodes, created_at
		FROM renderings
		ORDER BY portfolio ASC, name ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query renderings: %w", err)
	}
	defer rows.Close()

	renderings := []Rendering{}
	for rows.Next() {
		rec, err := scanRendering(rows)
		if err != nil {
			return nil, err
		}
		renderings = append(renderings, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate renderings: %w", err)
	}

	return renderings, nil
}

// GetRendering returns the record with the given ID, or ErrNotFound.
func (s *Store) GetRendering(ctx context.Context, id string) (Rendering, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, portfolio, name, rendering, depth, nodes, created_at
		FROM renderings
		WHERE id = ?
	`, id)

	var rec Rendering
	err := row.Scan(&rec.ID, &rec.Portfolio, &rec.Name, &rec.Rendering, &rec.Depth, &rec.Nodes, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Rendering{}, fmt.Errorf("rendering %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Rendering{}, fmt.Errorf("get rendering: %w", err)
	}

	return rec, nil
}

func scanRendering(rows *sql.Rows) (Rendering, error) {
	var rec Rendering
	if err := rows.Scan(&rec.ID, &rec.Portfolio, &rec.Name, &rec.Rendering, &rec.Depth, &rec.Nodes, &rec.CreatedAt); err != nil {
		return Rendering{}, fmt.Errorf("scan rendering: %w", err)
	}
	return rec, nil
}
