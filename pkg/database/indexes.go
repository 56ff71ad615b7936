package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates the PostgreSQL partial unique indexes
// the committed SQL migrations define. Tests that migrate with Ent's
// Schema.Create call this to get the same constraints.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one current specification per (project, category, key).
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS specification_project_id_category_spec_key_current
		ON specifications (project_id, category, spec_key)
		WHERE is_current`)
	if err != nil {
		return fmt.Errorf("failed to create current-specification index: %w", err)
	}

	return nil
}
