package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Rendering is one row of the contract book.
type Rendering struct {
	ID        string // UUIDv7, assigned on save when empty
	Portfolio string
	Name      string
	Rendering string
	Depth     int
	Nodes     int
	CreatedAt string
}

// SaveRendering inserts a rendered contract into the book.
//
// Uses ON CONFLICT DO NOTHING on the (portfolio, name, rendering) natural
// key for idempotency: saving the same rendering twice is a no-op. Returns
// the record ID (newly assigned when rec.ID was empty).
func (s *Store) SaveRendering(ctx context.Context, rec Rendering) (string, error) {
	if rec.ID == "" {
		// UUIDv7 keeps book IDs sortable by save time.
		rec.ID = uuid.Must(uuid.NewV7()).String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO renderings (id, portfolio, name, rendering, depth, nodes)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (portfolio, name, rendering) DO NOTHING
	`,
		rec.ID,
		rec.Portfolio,
		rec.Name,
		rec.Rendering,
		rec.Depth,
		rec.Nodes,
	)
	if err != nil {
		return "", fmt.Errorf("save rendering: %w", err)
	}

	return rec.ID, nil
}
