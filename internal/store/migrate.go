package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Jack28cas/zeroshade/internal/store/schema"
)

// Models lists every table owned by the store
func Models() []any {
	return []any{
		&schema.Token{},
		&schema.KeyValueStore{},
	}
}

// Migrate creates or updates the tables and indexes the store relies on.
// It is safe to call on every startup.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return nil
}
