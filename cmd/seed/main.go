package main

import (
	"log"
	"time"

	"homelet/internal/config"
	"homelet/internal/database"
	"homelet/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Demo data for local development: two landlords, two tenants, a handful of
// listings and a booking history that exercises every status.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM view_histories")
	db.Exec("DELETE FROM search_queries")
	db.Exec("DELETE FROM listings")
	db.Exec("DELETE FROM users")

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	landlord := seedUser(db, "landlord@example.com", "Max", domain.RoleLandlord, string(hash))
	landlord2 := seedUser(db, "landlord2@example.com", "Erika", domain.RoleLandlord, string(hash))
	tenant := seedUser(db, "tenant@example.com", "Anna", domain.RoleTenant, string(hash))
	tenant2 := seedUser(db, "tenant2@example.com", "Jonas", domain.RoleTenant, string(hash))

	listings := []struct {
		owner int64
		title string
		city  string
		price float64
		rooms int
		ht    string
	}{
		{landlord, "Cozy Apartment am Park", "Berlin", 85, 2, "apartment"},
		{landlord, "Altbau Studio Mitte", "Berlin", 60, 1, "studio"},
		{landlord2, "Family House with Garden", "Hamburg", 140, 4, "house"},
		{landlord2, "Bright Apartment near Alster", "Hamburg", 95, 3, "apartment"},
	}

	ids := make([]int64, 0, len(listings))
	for _, l := range listings {
		var id int64
		db.Raw(`INSERT INTO listings (owner_id, title, description, city, price, rooms, housing_type, is_active, is_deleted, created_at, updated_at)
VALUES (?, ?, '', ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
			l.owner, l.title, l.city, l.price, l.rooms, l.ht, true, false, time.Now(), time.Now()).Scan(&id)
		ids = append(ids, id)
	}

	today := domain.Midnight(time.Now())
	seedBooking(db, ids[0], tenant, today.AddDate(0, 0, 10), today.AddDate(0, 0, 12), 170, "pending")
	seedBooking(db, ids[0], tenant2, today.AddDate(0, 0, 20), today.AddDate(0, 0, 25), 425, "confirmed")
	seedBooking(db, ids[2], tenant, today.AddDate(0, 0, -15), today.AddDate(0, 0, -10), 700, "confirmed")
	seedBooking(db, ids[3], tenant2, today.AddDate(0, 0, 5), today.AddDate(0, 0, 7), 190, "cancelled")

	log.Println("Seed complete")
}

func seedUser(db *gorm.DB, email, name string, role domain.Role, hash string) int64 {
	var id int64
	db.Raw(`INSERT INTO users (email, password_hash, first_name, role, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		email, hash, name, string(role), true, time.Now(), time.Now()).Scan(&id)
	return id
}

func seedBooking(db *gorm.DB, listingID, tenantID int64, start, end time.Time, total float64, status string) {
	db.Exec(`INSERT INTO bookings (listing_id, tenant_id, start_date, end_date, total_price, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		listingID, tenantID, start, end, total, status, time.Now(), time.Now())
}
