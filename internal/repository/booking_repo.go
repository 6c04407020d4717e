package repository

import (
	"context"
	"time"

	"homelet/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	ListingID  int64     `gorm:"column:listing_id;index"`
	TenantID   int64     `gorm:"column:tenant_id;index"`
	StartDate  time.Time `gorm:"column:start_date"`
	EndDate    time.Time `gorm:"column:end_date"`
	TotalPrice float64   `gorm:"column:total_price"`
	Status     string    `gorm:"column:status"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:         m.ID,
		ListingID:  m.ListingID,
		TenantID:   m.TenantID,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		TotalPrice: m.TotalPrice,
		Status:     domain.BookingStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:         b.ID,
		ListingID:  b.ListingID,
		TenantID:   b.TenantID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// HasOverlap reports whether any blocking booking on the listing intersects
// the half-open range [start, end). Adjacent ranges do not count.
func (r *BookingRepository) HasOverlap(ctx context.Context, listingID int64, start, end time.Time) (bool, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings
WHERE listing_id = ?
  AND status IN ('pending', 'confirmed')
  AND start_date < ?
  AND ? < end_date
`
	tx := r.db.WithContext(ctx).Raw(q, listingID, end, start).Scan(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// UpdateStatusFrom flips the status only when the current status is one of
// from. The conditional WHERE makes the transition atomic: of two concurrent
// actions on the same booking at most one matches.
func (r *BookingRepository) UpdateStatusFrom(ctx context.Context, id int64, from []domain.BookingStatus, to domain.BookingStatus) (bool, error) {
	states := make([]string, 0, len(from))
	for _, s := range from {
		states = append(states, string(s))
	}

	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND status IN ?", id, states).
		Updates(map[string]any{"status": string(to), "updated_at": time.Now().UTC()})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *BookingRepository) ListByTenant(ctx context.Context, tenantID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(rows), nil
}

// ListByListingOwner returns bookings placed against listings the landlord owns.
func (r *BookingRepository) ListByListingOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	q := `
SELECT b.*
FROM bookings b
JOIN listings l ON l.id = b.listing_id
WHERE l.owner_id = ?
ORDER BY b.created_at DESC
`
	tx := r.db.WithContext(ctx).Raw(q, ownerID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(rows), nil
}

func toDomainBookings(rows []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
