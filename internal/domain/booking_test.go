package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBooking_Nights(t *testing.T) {
	b := &Booking{StartDate: day(2026, 3, 10), EndDate: day(2026, 3, 13)}
	assert.Equal(t, 3, b.Nights())

	b = &Booking{StartDate: day(2026, 3, 10), EndDate: day(2026, 3, 10)}
	assert.Equal(t, 0, b.Nights())
}

func TestBooking_Blocking(t *testing.T) {
	cases := map[BookingStatus]bool{
		BookingPending:   true,
		BookingConfirmed: true,
		BookingCancelled: false,
		BookingCompleted: false,
	}
	for status, want := range cases {
		b := &Booking{Status: status}
		assert.Equal(t, want, b.Blocking(), "status %s", status)
	}
}

func TestBooking_EffectiveStatus(t *testing.T) {
	today := day(2026, 3, 1)

	// confirmed stay that ended reads as completed
	b := &Booking{Status: BookingConfirmed, StartDate: day(2026, 2, 20), EndDate: day(2026, 2, 25)}
	assert.Equal(t, BookingCompleted, b.EffectiveStatus(today))

	// end date today: checkout day, not yet completed
	b = &Booking{Status: BookingConfirmed, StartDate: day(2026, 2, 27), EndDate: day(2026, 3, 1)}
	assert.Equal(t, BookingConfirmed, b.EffectiveStatus(today))

	// only confirmed stays complete; pending and cancelled keep their status
	b = &Booking{Status: BookingPending, StartDate: day(2026, 2, 20), EndDate: day(2026, 2, 25)}
	assert.Equal(t, BookingPending, b.EffectiveStatus(today))

	b = &Booking{Status: BookingCancelled, StartDate: day(2026, 2, 20), EndDate: day(2026, 2, 25)}
	assert.Equal(t, BookingCancelled, b.EffectiveStatus(today))
}
