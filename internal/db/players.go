package db

import (
	"context"
	"database/sql"
	"fmt"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// upsertPlayer keeps the last seen name and colour for a connection id.
func upsertPlayer(ctx context.Context, ex execer, id, name, color string) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO players (id, name, color)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = $2, color = $3, last_seen = now()
	`, id, name, color)
	if err != nil {
		return fmt.Errorf("upserting player: %w", err)
	}
	return nil
}
