// Package pricing computes the monetary figures displayed for a
// booking: venue price, add-on subtotal and grand total. Cancellation
// state comes from the booking's option ledger, never from the
// selected options themselves.
package pricing

import (
	"errors"
	"math"
	"time"

	"venuespace/internal/domain"
)

// ErrInvalidTimeRange is returned for hourly pricing when the time
// strings are malformed or the end does not come after the start.
// Midnight-crossing bookings are rejected rather than priced.
var ErrInvalidTimeRange = errors.New("invalid booking time range")

// VenuePrice computes the venue line item.
//
// perPerson multiplies the amount by the guest count, hourly charges
// per started hour between start and end time, anything else (fixed
// included) is the amount unchanged. A missing price is zero-cost.
func VenuePrice(b *domain.Booking) (float64, error) {
	if b == nil || b.Venue == nil {
		return 0, nil
	}
	price := b.Venue.Price
	switch price.Type {
	case domain.PricingPerPerson:
		return price.Amount * float64(b.Guests()), nil
	case domain.PricingHourly:
		h, err := elapsedHours(b.StartTime, b.EndTime)
		if err != nil {
			return 0, err
		}
		return price.Amount * h, nil
	default:
		return price.Amount, nil
	}
}

// OptionsTotal sums the selected add-on options, skipping any option
// whose ledger entry is cancelled. perPerson options multiply by the
// guest count.
func OptionsTotal(b *domain.Booking) float64 {
	if b == nil {
		return 0
	}
	total := 0.0
	for _, opt := range b.SelectedOptions {
		if b.OptionStatuses.IsCancelled(opt.OptionID) {
			continue
		}
		if opt.Price.Type == domain.PricingPerPerson {
			total += opt.Price.Amount * float64(b.Guests())
			continue
		}
		total += opt.Price.Amount
	}
	return total
}

// TotalPrice is venue + options + service fee - discount, rounded to
// cents. No floor is applied: a discount larger than the remaining
// terms yields a negative total.
func TotalPrice(b *domain.Booking) (float64, error) {
	venue, err := VenuePrice(b)
	if err != nil {
		return 0, err
	}
	total := venue + OptionsTotal(b)
	if b != nil {
		total += b.ServiceFee.Float64()
		total -= b.Discount.Float64()
	}
	return math.Round(total*100) / 100, nil
}

// elapsedHours returns the number of charged hours between two clock
// strings on the same day, rounded up to the next whole hour.
func elapsedHours(startStr, endStr string) (float64, error) {
	start, err := parseClock(startStr)
	if err != nil {
		return 0, ErrInvalidTimeRange
	}
	end, err := parseClock(endStr)
	if err != nil {
		return 0, ErrInvalidTimeRange
	}
	d := end.Sub(start)
	if d <= 0 {
		return 0, ErrInvalidTimeRange
	}
	return math.Ceil(d.Hours()), nil
}

// parseClock accepts HH:MM:SS or HH:MM.
func parseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04:05", s)
	if err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}
