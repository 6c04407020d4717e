package review

import (
	"context"

	"homelet/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	ExistsForBooking(ctx context.Context, bookingID int64) (bool, error)
	GetByListing(ctx context.Context, listingID int64, limit, offset int) ([]domain.Review, error)
}

// BookingGate exposes the one booking read the eligibility check needs.
type BookingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
