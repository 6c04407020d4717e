package history

import (
	"context"
	"time"

	"homelet/internal/domain"
)

type SearchHistoryRepository interface {
	PopularSearches(ctx context.Context, since time.Time, minLength, limit int) ([]domain.PopularQuery, error)
}

// PopularCache is an optional read-through cache for the aggregation.
type PopularCache interface {
	Get(ctx context.Context) ([]domain.PopularQuery, error)
	Set(ctx context.Context, items []domain.PopularQuery) error
}
