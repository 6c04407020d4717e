package repository

import (
	"context"
	"time"

	"homelet/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	BookingID int64     `gorm:"column:booking_id;uniqueIndex"`
	ListingID int64     `gorm:"column:listing_id;index"`
	AuthorID  int64     `gorm:"column:author_id"`
	Rating    int       `gorm:"column:rating"`
	Comment   string    `gorm:"column:comment;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:        m.ID,
		BookingID: m.BookingID,
		ListingID: m.ListingID,
		AuthorID:  m.AuthorID,
		Rating:    m.Rating,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := reviewModel{
		BookingID: rv.BookingID,
		ListingID: rv.ListingID,
		AuthorID:  rv.AuthorID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: rv.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rv = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&reviewModel{}).
		Where("booking_id = ?", bookingID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *ReviewRepository) GetByListing(ctx context.Context, listingID int64, limit, offset int) ([]domain.Review, error) {
	if limit <= 0 {
		limit = 10
	} else if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	var rows []reviewModel
	tx := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}
