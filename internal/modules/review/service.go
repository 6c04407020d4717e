package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"homelet/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	reviews  ReviewRepository
	bookings BookingGate

	now func() time.Time
}

func NewService(reviews ReviewRepository, bookings BookingGate) *Service {
	return &Service{reviews: reviews, bookings: bookings, now: time.Now}
}

// CanReview is the single completion predicate: the stay counts as completed
// when the stored status says so, or when a confirmed stay's end date has
// passed. Cancelled and still-pending bookings never qualify.
func (s *Service) CanReview(b *domain.Booking) bool {
	return b.EffectiveStatus(s.now()) == domain.BookingCompleted
}

func (s *Service) Create(ctx context.Context, authorID, listingID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.TenantID != authorID {
		return nil, ErrForbidden
	}
	if b.ListingID != listingID {
		return nil, ErrValidation
	}
	if !s.CanReview(b) {
		return nil, ErrNotEligible
	}

	exists, err := s.reviews.ExistsForBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	rv := &domain.Review{
		BookingID: b.ID,
		ListingID: b.ListingID,
		AuthorID:  b.TenantID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) GetByListing(ctx context.Context, listingID int64, limit, offset int) ([]domain.Review, error) {
	if listingID <= 0 {
		return nil, ErrValidation
	}
	return s.reviews.GetByListing(ctx, listingID, limit, offset)
}

// isUniqueViolation covers both the Postgres unique index on booking_id and
// the SQLite message used in local runs.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
