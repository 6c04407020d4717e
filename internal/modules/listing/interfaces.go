package listing

import (
	"context"

	"homelet/internal/domain"
	"homelet/internal/repository"
)

type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	Update(ctx context.Context, l *domain.Listing) error
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context, f repository.ListingFilter) ([]domain.Listing, error)
	Popular(ctx context.Context, limit int) ([]domain.Listing, error)
}

// HistoryRecorder receives fire-and-forget search/view events. Implementations
// must never fail the parent request.
type HistoryRecorder interface {
	RecordSearch(ctx context.Context, userID int64, query string) error
	RecordView(ctx context.Context, userID, listingID int64) error
}
