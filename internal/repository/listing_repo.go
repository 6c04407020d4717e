package repository

import (
	"context"
	"time"

	"homelet/internal/domain"

	"gorm.io/gorm"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

type listingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	OwnerID     int64     `gorm:"column:owner_id;index"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	City        string    `gorm:"column:city"`
	PostalCode  *string   `gorm:"column:postal_code"`
	Price       float64   `gorm:"column:price"`
	Rooms       int       `gorm:"column:rooms"`
	HousingType string    `gorm:"column:housing_type"`
	IsActive    bool      `gorm:"column:is_active"`
	IsDeleted   bool      `gorm:"column:is_deleted"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (listingModel) TableName() string { return "listings" }

func toDomainListing(m listingModel) *domain.Listing {
	var postal string
	if m.PostalCode != nil {
		postal = *m.PostalCode
	}

	return &domain.Listing{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Description: m.Description,
		City:        m.City,
		PostalCode:  postal,
		Price:       m.Price,
		Rooms:       m.Rooms,
		HousingType: domain.HousingType(m.HousingType),
		IsActive:    m.IsActive,
		IsDeleted:   m.IsDeleted,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toListingModel(l *domain.Listing) listingModel {
	var postal *string
	if l.PostalCode != "" {
		v := l.PostalCode
		postal = &v
	}

	return listingModel{
		ID:          l.ID,
		OwnerID:     l.OwnerID,
		Title:       l.Title,
		Description: l.Description,
		City:        l.City,
		PostalCode:  postal,
		Price:       l.Price,
		Rooms:       l.Rooms,
		HousingType: string(l.HousingType),
		IsActive:    l.IsActive,
		IsDeleted:   l.IsDeleted,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// ListingFilter narrows the public listing feed. Nil numeric bounds are
// ignored. Ordering accepts price, -price, created_at, -created_at.
type ListingFilter struct {
	Search      string
	City        string
	PriceMin    *float64
	PriceMax    *float64
	RoomsMin    *int
	RoomsMax    *int
	HousingType string
	Ordering    string
	Limit       int
	Offset      int
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	m := toListingModel(l)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = *toDomainListing(m)
	return nil
}

// GetByID returns a listing unless it is soft-deleted.
func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var m listingModel
	tx := r.db.WithContext(ctx).Where("is_deleted = ?", false).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainListing(m), nil
}

func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	m := toListingModel(l)
	return r.db.WithContext(ctx).Save(&m).Error
}

// SoftDelete marks the listing deleted. Historical bookings and reviews keep
// their references.
func (r *ListingRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&listingModel{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (r *ListingRepository) List(ctx context.Context, f ListingFilter) ([]domain.Listing, error) {
	q := r.db.WithContext(ctx).Model(&listingModel{}).
		Where("is_active = ? AND is_deleted = ?", true, false)

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("lower(title) LIKE lower(?) OR lower(description) LIKE lower(?)", pattern, pattern)
	}
	if f.City != "" {
		q = q.Where("lower(city) LIKE lower(?)", "%"+f.City+"%")
	}
	if f.PriceMin != nil {
		q = q.Where("price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("price <= ?", *f.PriceMax)
	}
	if f.RoomsMin != nil {
		q = q.Where("rooms >= ?", *f.RoomsMin)
	}
	if f.RoomsMax != nil {
		q = q.Where("rooms <= ?", *f.RoomsMax)
	}
	if f.HousingType != "" {
		q = q.Where("housing_type = ?", f.HousingType)
	}

	switch f.Ordering {
	case "price":
		q = q.Order("price ASC")
	case "-price":
		q = q.Order("price DESC")
	case "created_at":
		q = q.Order("created_at ASC")
	default:
		q = q.Order("created_at DESC")
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var rows []listingModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Listing, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainListing(m))
	}
	return out, nil
}

// Popular returns the most viewed active listings.
func (r *ListingRepository) Popular(ctx context.Context, limit int) ([]domain.Listing, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []listingModel
	q := `
SELECT l.*
FROM listings l
LEFT JOIN view_histories v ON v.listing_id = l.id
WHERE l.is_active = ? AND l.is_deleted = ?
GROUP BY l.id
ORDER BY COUNT(v.id) DESC
LIMIT ?
`
	tx := r.db.WithContext(ctx).Raw(q, true, false, limit).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Listing, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainListing(m))
	}
	return out, nil
}
