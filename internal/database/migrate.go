package database

import (
	"homelet/internal/domain"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every entity. The unique index on
// reviews.booking_id and, on Postgres, the bookings range-exclusion
// constraint back the engine's constraint fallbacks.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Listing{},
		&domain.Booking{},
		&domain.Review{},
		&domain.SearchQuery{},
		&domain.ViewHistory{},
	); err != nil {
		return err
	}

	if err := db.Exec(
		`CREATE INDEX IF NOT EXISTS idx_bookings_listing_dates ON bookings (listing_id, start_date, end_date)`,
	).Error; err != nil {
		return err
	}

	// DB-level overlap guard. SQLite has no exclusion constraints; there the
	// per-listing lock in the booking service is the only serializer.
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
			return err
		}
		return db.Exec(`
DO $$
BEGIN
	ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
	EXCLUDE USING gist (
		listing_id WITH =,
		daterange(start_date::date, end_date::date, '[)') WITH &&
	) WHERE (status IN ('pending', 'confirmed'));
EXCEPTION
	WHEN duplicate_object THEN NULL;
	WHEN duplicate_table THEN NULL;
END $$`).Error
	}

	return nil
}
