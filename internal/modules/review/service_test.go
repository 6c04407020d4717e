package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"homelet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil {
		rv.ID = 501 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReviewRepository) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) GetByListing(ctx context.Context, listingID int64, limit, offset int) ([]domain.Review, error) {
	args := m.Called(ctx, listingID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

type MockBookingGate struct {
	mock.Mock
}

func (m *MockBookingGate) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

var testToday = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func newTestService(reviews *MockReviewRepository, bookings *MockBookingGate) *Service {
	svc := NewService(reviews, bookings)
	svc.now = func() time.Time { return testToday }
	return svc
}

// finishedStay is a confirmed booking whose end date has passed, so it reads
// as completed and qualifies for a review.
func finishedStay(id, listingID, tenantID int64) *domain.Booking {
	end := testToday.AddDate(0, 0, -5)
	return &domain.Booking{
		ID:        id,
		ListingID: listingID,
		TenantID:  tenantID,
		StartDate: end.AddDate(0, 0, -3),
		EndDate:   end,
		Status:    domain.BookingConfirmed,
	}
}

func TestService_CreateReview_Success(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBookings := new(MockBookingGate)

	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(finishedStay(5, 10, 2), nil)
	mockReviews.On("ExistsForBooking", mock.Anything, int64(5)).Return(false, nil)
	mockReviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockReviews, mockBookings)

	rv, err := service.Create(context.Background(), 2, 10, CreateReviewRequest{
		BookingID: 5,
		Rating:    4,
		Comment:   "Great place",
	})

	assert.NoError(t, err)
	assert.NotNil(t, rv)
	assert.Equal(t, int64(5), rv.BookingID)
	assert.Equal(t, int64(10), rv.ListingID)
	assert.Equal(t, int64(2), rv.AuthorID)
	assert.Equal(t, 4, rv.Rating)
	mockReviews.AssertExpectations(t)
}

func TestService_CreateReview_RatingBounds(t *testing.T) {
	service := newTestService(new(MockReviewRepository), new(MockBookingGate))

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := service.Create(context.Background(), 2, 10, CreateReviewRequest{
			BookingID: 5,
			Rating:    rating,
		})
		assert.ErrorIs(t, err, ErrValidation, "rating %d", rating)
	}
}

func TestService_CreateReview_NotAuthor(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBookings := new(MockBookingGate)

	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(finishedStay(5, 10, 2), nil)

	service := newTestService(mockReviews, mockBookings)

	// user 9 did not make the booking
	_, err := service.Create(context.Background(), 9, 10, CreateReviewRequest{BookingID: 5, Rating: 5})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_CreateReview_ListingMismatch(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBookings := new(MockBookingGate)

	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(finishedStay(5, 10, 2), nil)

	service := newTestService(mockReviews, mockBookings)

	// booking belongs to listing 10, review posted under listing 11
	_, err := service.Create(context.Background(), 2, 11, CreateReviewRequest{BookingID: 5, Rating: 5})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateReview_NotEligible(t *testing.T) {
	cases := []struct {
		name string
		mod  func(b *domain.Booking)
	}{
		{"still pending", func(b *domain.Booking) {
			b.Status = domain.BookingPending
		}},
		{"cancelled", func(b *domain.Booking) {
			b.Status = domain.BookingCancelled
		}},
		{"confirmed but stay not over", func(b *domain.Booking) {
			b.StartDate = testToday.AddDate(0, 0, 2)
			b.EndDate = testToday.AddDate(0, 0, 5)
		}},
		{"confirmed, stay in progress", func(b *domain.Booking) {
			b.StartDate = testToday.AddDate(0, 0, -1)
			b.EndDate = testToday.AddDate(0, 0, 2)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockReviews := new(MockReviewRepository)
			mockBookings := new(MockBookingGate)

			b := finishedStay(5, 10, 2)
			tc.mod(b)
			mockBookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)

			service := newTestService(mockReviews, mockBookings)

			_, err := service.Create(context.Background(), 2, 10, CreateReviewRequest{BookingID: 5, Rating: 5})
			assert.ErrorIs(t, err, ErrNotEligible)
			mockReviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_CreateReview_CompletedStatusQualifies(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBookings := new(MockBookingGate)

	b := finishedStay(5, 10, 2)
	b.Status = domain.BookingCompleted
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)
	mockReviews.On("ExistsForBooking", mock.Anything, int64(5)).Return(false, nil)
	mockReviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockReviews, mockBookings)

	_, err := service.Create(context.Background(), 2, 10, CreateReviewRequest{BookingID: 5, Rating: 3})
	assert.NoError(t, err)
}

func TestService_CreateReview_Duplicate(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBookings := new(MockBookingGate)

	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(finishedStay(5, 10, 2), nil)
	mockReviews.On("ExistsForBooking", mock.Anything, int64(5)).Return(true, nil)

	service := newTestService(mockReviews, mockBookings)

	_, err := service.Create(context.Background(), 2, 10, CreateReviewRequest{BookingID: 5, Rating: 5})
	assert.ErrorIs(t, err, ErrDuplicate)
	mockReviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateReview_DuplicateRace(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBookings := new(MockBookingGate)

	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(finishedStay(5, 10, 2), nil)
	mockReviews.On("ExistsForBooking", mock.Anything, int64(5)).Return(false, nil)
	// a concurrent insert wins; the unique index reports it
	mockReviews.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("constraint failed: UNIQUE constraint failed: reviews.booking_id"))

	service := newTestService(mockReviews, mockBookings)

	_, err := service.Create(context.Background(), 2, 10, CreateReviewRequest{BookingID: 5, Rating: 5})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestService_CreateReview_BookingNotFound(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBookings := new(MockBookingGate)

	mockBookings.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(mockReviews, mockBookings)

	_, err := service.Create(context.Background(), 2, 10, CreateReviewRequest{BookingID: 404, Rating: 5})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetByListing_InvalidID(t *testing.T) {
	service := newTestService(new(MockReviewRepository), new(MockBookingGate))

	_, err := service.GetByListing(context.Background(), 0, 10, 0)
	assert.ErrorIs(t, err, ErrValidation)
}
