package booking

import (
	"context"
	"time"

	"homelet/internal/domain"
)

// BookingRepository defines the persistence surface of the booking engine.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	HasOverlap(ctx context.Context, listingID int64, start, end time.Time) (bool, error)
	UpdateStatusFrom(ctx context.Context, id int64, from []domain.BookingStatus, to domain.BookingStatus) (bool, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]domain.Booking, error)
	ListByListingOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error)
}

// ListingDirectory is the listing collaborator. The engine only reads owner,
// price and the active/deleted flags.
type ListingDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}
