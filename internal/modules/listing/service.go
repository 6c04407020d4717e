package listing

import (
	"context"
	"errors"

	"homelet/internal/domain"
	"homelet/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Service struct {
	listings ListingRepository
	history  HistoryRecorder
	log      zerolog.Logger
}

func NewService(listings ListingRepository, history HistoryRecorder, log zerolog.Logger) *Service {
	return &Service{listings: listings, history: history, log: log}
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreateListingRequest) (*domain.Listing, error) {
	ht := domain.HousingType(req.HousingType)
	if !ht.Valid() {
		return nil, ErrValidation
	}

	l := &domain.Listing{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Price:       req.Price,
		Rooms:       req.Rooms,
		HousingType: ht,
		IsActive:    true,
	}

	if err := s.listings.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Get returns a listing and records the view for authenticated callers.
// History recording is best-effort: failures are logged and swallowed.
func (s *Service) Get(ctx context.Context, id, viewerID int64) (*domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if viewerID > 0 {
		if err := s.history.RecordView(ctx, viewerID, l.ID); err != nil {
			s.log.Error().Err(err).Int64("user_id", viewerID).Int64("listing_id", l.ID).
				Msg("failed to record listing view")
		}
	}

	return l, nil
}

func (s *Service) List(ctx context.Context, viewerID int64, f repository.ListingFilter) ([]domain.Listing, error) {
	items, err := s.listings.List(ctx, f)
	if err != nil {
		return nil, err
	}

	if f.Search != "" && viewerID > 0 {
		if err := s.history.RecordSearch(ctx, viewerID, f.Search); err != nil {
			s.log.Error().Err(err).Int64("user_id", viewerID).Str("query", f.Search).
				Msg("failed to record search query")
		}
	}

	return items, nil
}

func (s *Service) Update(ctx context.Context, id, actorID int64, req UpdateListingRequest) (*domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if l.OwnerID != actorID {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		l.Title = *req.Title
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.City != nil {
		l.City = *req.City
	}
	if req.PostalCode != nil {
		l.PostalCode = *req.PostalCode
	}
	if req.Price != nil {
		l.Price = *req.Price
	}
	if req.Rooms != nil {
		l.Rooms = *req.Rooms
	}
	if req.HousingType != nil {
		ht := domain.HousingType(*req.HousingType)
		if !ht.Valid() {
			return nil, ErrValidation
		}
		l.HousingType = ht
	}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}

	if err := s.listings.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Delete(ctx context.Context, id, actorID int64) error {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if l.OwnerID != actorID {
		return ErrForbidden
	}

	return s.listings.SoftDelete(ctx, id)
}

func (s *Service) Popular(ctx context.Context) ([]domain.Listing, error) {
	return s.listings.Popular(ctx, 10)
}
