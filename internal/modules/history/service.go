package history

import (
	"context"
	"time"

	"homelet/internal/domain"

	"github.com/rs/zerolog"
)

const (
	popularWindowDays = 30
	popularMinLength  = 3
	popularLimit      = 10
)

type Service struct {
	searches SearchHistoryRepository
	cache    PopularCache
	log      zerolog.Logger

	now func() time.Time
}

func NewService(searches SearchHistoryRepository, cache PopularCache, log zerolog.Logger) *Service {
	return &Service{searches: searches, cache: cache, log: log, now: time.Now}
}

// Top returns the most frequent search queries of the trailing 30 days,
// ranked by count, capped at 10. Cache failures fall through to the database
// and are only logged.
func (s *Service) Top(ctx context.Context) ([]domain.PopularQuery, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("popular search cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	since := s.now().AddDate(0, 0, -popularWindowDays)
	items, err := s.searches.PopularSearches(ctx, since, popularMinLength, popularLimit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, items); err != nil {
			s.log.Warn().Err(err).Msg("popular search cache write failed")
		}
	}

	return items, nil
}
