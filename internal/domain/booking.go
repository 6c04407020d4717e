package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// DateLayout is the wire format for booking dates. Bookings are calendar-date
// granular; stored values are UTC midnight.
const DateLayout = "2006-01-02"

type Booking struct {
	ID         int64         `json:"id"`
	ListingID  int64         `json:"listing_id" validate:"required"`
	TenantID   int64         `json:"tenant_id" validate:"required"`
	StartDate  time.Time     `json:"start_date" validate:"required"`
	EndDate    time.Time     `json:"end_date" validate:"required"`
	TotalPrice float64       `json:"total_price" validate:"gte=0"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
}

// Nights returns the length of the stay in nights, half-open [start, end).
func (b *Booking) Nights() int {
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}

// Blocking reports whether the booking counts toward overlap exclusion.
func (b *Booking) Blocking() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// EffectiveStatus derives the read-time status: a confirmed booking whose stay
// has ended reads as completed. The stored status only changes through actions.
func (b *Booking) EffectiveStatus(today time.Time) BookingStatus {
	if b.Status == BookingConfirmed && b.EndDate.Before(Midnight(today)) {
		return BookingCompleted
	}
	return b.Status
}

// Midnight truncates t to UTC midnight.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
