package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuespace/internal/domain"
)

func bookingWithVenuePrice(p domain.Price) *domain.Booking {
	return &domain.Booking{
		NumberOfGuests: 1,
		Venue:          &domain.Venue{Price: p},
	}
}

func TestVenuePrice_Fixed_IgnoresGuestsAndTimes(t *testing.T) {
	b := bookingWithVenuePrice(domain.Price{Amount: 500, Currency: "USD", Type: domain.PricingFixed})
	b.NumberOfGuests = 75
	b.StartTime = "10:00"
	b.EndTime = "23:00"

	got, err := VenuePrice(b)
	require.NoError(t, err)
	assert.Equal(t, 500.0, got)
}

func TestVenuePrice_PerPerson(t *testing.T) {
	b := bookingWithVenuePrice(domain.Price{Amount: 25, Currency: "USD", Type: domain.PricingPerPerson})
	b.NumberOfGuests = 4

	got, err := VenuePrice(b)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)
}

func TestVenuePrice_PerPerson_GuestsDefaultToOne(t *testing.T) {
	b := bookingWithVenuePrice(domain.Price{Amount: 25, Type: domain.PricingPerPerson})
	b.NumberOfGuests = 0

	got, err := VenuePrice(b)
	require.NoError(t, err)
	assert.Equal(t, 25.0, got)
}

func TestVenuePrice_Hourly_RoundsUpPartialHours(t *testing.T) {
	b := bookingWithVenuePrice(domain.Price{Amount: 50, Type: domain.PricingHourly})
	b.StartTime = "10:00:00"
	b.EndTime = "12:30:00"

	got, err := VenuePrice(b)
	require.NoError(t, err)
	assert.Equal(t, 150.0, got) // ceil(2.5h) = 3h x 50
}

func TestVenuePrice_Hourly_AcceptsShortClockFormat(t *testing.T) {
	b := bookingWithVenuePrice(domain.Price{Amount: 40, Type: domain.PricingHourly})
	b.StartTime = "09:00"
	b.EndTime = "11:00"

	got, err := VenuePrice(b)
	require.NoError(t, err)
	assert.Equal(t, 80.0, got)
}

func TestVenuePrice_Hourly_EndBeforeStart(t *testing.T) {
	b := bookingWithVenuePrice(domain.Price{Amount: 50, Type: domain.PricingHourly})
	b.StartTime = "22:00"
	b.EndTime = "02:00"

	_, err := VenuePrice(b)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestVenuePrice_Hourly_MalformedClock(t *testing.T) {
	b := bookingWithVenuePrice(domain.Price{Amount: 50, Type: domain.PricingHourly})
	b.StartTime = "not-a-time"
	b.EndTime = "12:00"

	_, err := VenuePrice(b)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestVenuePrice_UnknownTypeFallsBackToFixed(t *testing.T) {
	b := bookingWithVenuePrice(domain.Price{Amount: 300, Type: "subscription"})

	got, err := VenuePrice(b)
	require.NoError(t, err)
	assert.Equal(t, 300.0, got)
}

func TestVenuePrice_MissingVenueIsZero(t *testing.T) {
	got, err := VenuePrice(&domain.Booking{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestOptionsTotal_MixedPricingTypes(t *testing.T) {
	b := &domain.Booking{
		NumberOfGuests: 4,
		SelectedOptions: domain.BookingOptions{
			{OptionID: 1, ServiceID: 10, Price: domain.Price{Amount: 20, Type: domain.PricingFixed}},
			{OptionID: 2, ServiceID: 11, Price: domain.Price{Amount: 10, Type: domain.PricingPerPerson}},
		},
	}

	assert.Equal(t, 60.0, OptionsTotal(b)) // 20 + 10x4
}

func TestOptionsTotal_SkipsCancelledLedgerEntries(t *testing.T) {
	b := &domain.Booking{
		NumberOfGuests: 4,
		SelectedOptions: domain.BookingOptions{
			{OptionID: 1, ServiceID: 10, Price: domain.Price{Amount: 20, Type: domain.PricingFixed}},
			{OptionID: 2, ServiceID: 11, Price: domain.Price{Amount: 10, Type: domain.PricingPerPerson}},
		},
		OptionStatuses: domain.OptionLedger{
			{OptionID: 2, ServiceID: 11, Status: domain.OptionCancelled},
		},
	}

	assert.Equal(t, 20.0, OptionsTotal(b))
	// идемпотентность: повторный расчёт не меняет результат
	assert.Equal(t, 20.0, OptionsTotal(b))
}

func TestOptionsTotal_NonCancelledStatusesStillCount(t *testing.T) {
	b := &domain.Booking{
		NumberOfGuests: 2,
		SelectedOptions: domain.BookingOptions{
			{OptionID: 1, ServiceID: 10, Price: domain.Price{Amount: 15, Type: domain.PricingFixed}},
		},
		OptionStatuses: domain.OptionLedger{
			{OptionID: 1, ServiceID: 10, Status: domain.OptionRejected},
		},
	}

	assert.Equal(t, 15.0, OptionsTotal(b))
}

func TestOptionsTotal_Empty(t *testing.T) {
	assert.Equal(t, 0.0, OptionsTotal(&domain.Booking{}))
}

func TestTotalPrice_CombinesAllTerms(t *testing.T) {
	b := bookingWithVenuePrice(domain.Price{Amount: 200, Type: domain.PricingFixed})
	b.SelectedOptions = domain.BookingOptions{
		{OptionID: 1, ServiceID: 10, Price: domain.Price{Amount: 50, Type: domain.PricingFixed}},
	}
	b.ServiceFee = 15
	b.Discount = 5

	got, err := TotalPrice(b)
	require.NoError(t, err)
	assert.Equal(t, 260.0, got)
}

func TestTotalPrice_StringFeeAndDiscountParse(t *testing.T) {
	payload := []byte(`{"service_fee": "15", "discount": "5"}`)
	var b domain.Booking
	require.NoError(t, json.Unmarshal(payload, &b))
	b.Venue = &domain.Venue{Price: domain.Price{Amount: 100, Type: domain.PricingFixed}}

	got, err := TotalPrice(&b)
	require.NoError(t, err)
	assert.Equal(t, 110.0, got)
}

func TestTotalPrice_UnparsableFeeTreatedAsZero(t *testing.T) {
	payload := []byte(`{"service_fee": "abc", "discount": null}`)
	var b domain.Booking
	require.NoError(t, json.Unmarshal(payload, &b))
	b.Venue = &domain.Venue{Price: domain.Price{Amount: 100, Type: domain.PricingFixed}}

	got, err := TotalPrice(&b)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)
}

func TestTotalPrice_NoFloorOnLargeDiscount(t *testing.T) {
	b := bookingWithVenuePrice(domain.Price{Amount: 50, Type: domain.PricingFixed})
	b.Discount = 80

	got, err := TotalPrice(b)
	require.NoError(t, err)
	assert.Equal(t, -30.0, got)
}
