package repository

import (
	"strings"
	"testing"

	"homelet/internal/database"

	"gorm.io/gorm"
)

// openTestDB gives each test its own in-memory SQLite database. The shared
// cache keeps every pooled connection on the same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := database.Connect("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}
