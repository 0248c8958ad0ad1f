package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateLookupIndexes creates custom indexes not expressible in ent/schema.
func CreateLookupIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Partial index for live-signal dedup scans: the exact-title and vector
	// layers only ever look at non-expired signals.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_signals_live_title
		ON signals (region, title_key, node_type) WHERE expired_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create live title index: %w", err)
	}

	// GIN index for summary full-text search used by the admin debugging
	// queries.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_signals_summary_gin
		ON signals USING gin(to_tsvector('english', summary))`)
	if err != nil {
		return fmt.Errorf("failed to create summary GIN index: %w", err)
	}

	return nil
}
