package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"homelet/internal/domain"
	"homelet/internal/pkg/keyedmutex"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// minCancelNotice is the tenant cancellation window: a booking can be
// cancelled only while at least this many days remain before the stay starts.
const minCancelNotice = 7

type Service struct {
	bookings BookingRepository
	listings ListingDirectory

	// listingLocks serializes overlap-check-then-insert per listing;
	// bookingLocks serializes status transitions per booking.
	listingLocks *keyedmutex.KeyedMutex
	bookingLocks *keyedmutex.KeyedMutex

	now func() time.Time
}

func NewService(bookings BookingRepository, listings ListingDirectory) *Service {
	return &Service{
		bookings:     bookings,
		listings:     listings,
		listingLocks: keyedmutex.New(),
		bookingLocks: keyedmutex.New(),
		now:          time.Now,
	}
}

func (s *Service) Create(ctx context.Context, tenantID int64, req CreateBookingRequest) (*domain.Booking, error) {
	start, err := time.Parse(domain.DateLayout, req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := time.Parse(domain.DateLayout, req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}
	start = domain.Midnight(start)
	end = domain.Midnight(end)

	if !start.Before(end) {
		return nil, ErrValidation
	}

	today := domain.Midnight(s.now())
	if start.Before(today) {
		return nil, ErrValidation
	}

	s.listingLocks.Lock(req.ListingID)
	defer s.listingLocks.Unlock(req.ListingID)

	listing, err := s.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !listing.IsActive {
		return nil, ErrNotFound
	}

	// Ownership is checked regardless of role: a landlord can never book
	// their own listing, and a tenant can never own one they book.
	if listing.OwnerID == tenantID {
		return nil, ErrOwnListing
	}

	conflict, err := s.bookings.HasOverlap(ctx, req.ListingID, start, end)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrDateConflict
	}

	b := &domain.Booking{
		ListingID: req.ListingID,
		TenantID:  tenantID,
		StartDate: start,
		EndDate:   end,
		Status:    domain.BookingPending,
	}

	nights := b.Nights()
	if nights <= 0 {
		return nil, ErrValidation
	}
	b.TotalPrice = math.Round(float64(nights)*listing.Price*100) / 100

	if err := s.bookings.Create(ctx, b); err != nil {
		if isOverlapViolation(err) {
			return nil, ErrDateConflict
		}
		return nil, err
	}

	return b, nil
}

// Action applies a state transition requested by actor. Permission failures
// are reported before state failures so a 403 never leaks booking state.
func (s *Service) Action(ctx context.Context, bookingID, actorID int64, action string) (*domain.Booking, error) {
	switch action {
	case ActionConfirm, ActionReject, ActionCancel:
	default:
		return nil, ErrInvalidAction
	}

	s.bookingLocks.Lock(bookingID)
	defer s.bookingLocks.Unlock(bookingID)

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	listing, err := s.listings.GetByID(ctx, b.ListingID)
	if err != nil {
		return nil, err
	}

	// A finished stay reads as completed, and completed is terminal: the
	// stored row still says confirmed, so the effective state must be
	// checked here before any conditional update.
	completed := b.EffectiveStatus(s.now()) == domain.BookingCompleted

	switch action {
	case ActionConfirm:
		if actorID != listing.OwnerID {
			return nil, ErrForbidden
		}
		if completed {
			return nil, ErrInvalidTransition
		}
		return s.transition(ctx, bookingID, []domain.BookingStatus{domain.BookingPending}, domain.BookingConfirmed)

	case ActionReject:
		if actorID != listing.OwnerID {
			return nil, ErrForbidden
		}
		if completed {
			return nil, ErrInvalidTransition
		}
		// The owner may still back out of a booking they already confirmed.
		return s.transition(ctx, bookingID,
			[]domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed},
			domain.BookingCancelled)

	default: // cancel
		if actorID != b.TenantID {
			return nil, ErrForbidden
		}
		if completed || !b.Blocking() {
			return nil, ErrInvalidTransition
		}

		today := domain.Midnight(s.now())
		daysUntilStart := int(b.StartDate.Sub(today).Hours() / 24)
		if daysUntilStart < minCancelNotice {
			return nil, ErrLateCancellation
		}

		return s.transition(ctx, bookingID,
			[]domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed},
			domain.BookingCancelled)
	}
}

// isOverlapViolation matches the Postgres backstop for concurrent inserts:
// 23P01 from the bookings range-exclusion constraint, 23505 from a unique
// index racing the same dates.
func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && (pgErr.Code == "23P01" || pgErr.Code == "23505")
}

func (s *Service) transition(ctx context.Context, bookingID int64, from []domain.BookingStatus, to domain.BookingStatus) (*domain.Booking, error) {
	ok, err := s.bookings.UpdateStatusFrom(ctx, bookingID, from, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}
	return s.bookings.GetByID(ctx, bookingID)
}

// ListForUser scopes the booking list to the caller: tenants see their own
// bookings, landlords see bookings placed against their listings.
func (s *Service) ListForUser(ctx context.Context, userID int64, role domain.Role) ([]domain.Booking, error) {
	var (
		rows []domain.Booking
		err  error
	)
	if role == domain.RoleLandlord {
		rows, err = s.bookings.ListByListingOwner(ctx, userID)
	} else {
		rows, err = s.bookings.ListByTenant(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	for i := range rows {
		rows[i].Status = rows[i].EffectiveStatus(now)
	}
	return rows, nil
}

func (s *Service) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	b.Status = b.EffectiveStatus(s.now())
	return b, nil
}
