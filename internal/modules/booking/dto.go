package booking

import "venuespace/internal/domain"

// OptionSelection identifies one add-on option attached at creation.
type OptionSelection struct {
	ServiceID int64 `json:"service_id" binding:"required"`
	OptionID  int64 `json:"option_id" binding:"required"`
}

type CreateBookingRequest struct {
	VenueID        int64             `json:"venue_id" binding:"required"`
	StartDate      string            `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate        string            `json:"end_date" binding:"required"`
	StartTime      string            `json:"start_time"` // HH:MM or HH:MM:SS
	EndTime        string            `json:"end_time"`
	NumberOfGuests int               `json:"number_of_guests"`
	Options        []OptionSelection `json:"options,omitempty"`
	ServiceFee     domain.FlexNumber `json:"service_fee,omitempty"`
	Discount       domain.FlexNumber `json:"discount,omitempty"`
	Notes          string            `json:"notes,omitempty"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type RejectOptionRequest struct {
	Reason string `json:"reason"`
}

// PriceBreakdown carries the three §-figures plus their display form.
type PriceBreakdown struct {
	VenuePrice     float64 `json:"venue_price"`
	OptionsTotal   float64 `json:"options_total"`
	ServiceFee     float64 `json:"service_fee,omitempty"`
	Discount       float64 `json:"discount,omitempty"`
	Total          float64 `json:"total"`
	Currency       string  `json:"currency"`
	VenueDisplay   string  `json:"venue_price_display"`
	OptionsDisplay string  `json:"options_total_display"`
	TotalDisplay   string  `json:"total_display"`
}

// OptionView is one selected add-on with its approval badge.
type OptionView struct {
	OptionID  int64        `json:"option_id"`
	ServiceID int64        `json:"service_id"`
	Name      string       `json:"name"`
	Price     domain.Price `json:"price"`
	Badge     Badge        `json:"badge"`
}

// BookingDetails is the full booking view served to the details page.
type BookingDetails struct {
	ID             int64                 `json:"id"`
	Reference      string                `json:"reference"`
	VenueID        int64                 `json:"venue_id"`
	VenueName      string                `json:"venue_name"`
	StartDate      string                `json:"start_date"`
	EndDate        string                `json:"end_date"`
	StartTime      string                `json:"start_time,omitempty"`
	EndTime        string                `json:"end_time,omitempty"`
	NumberOfGuests int                   `json:"number_of_guests"`
	StatusBadge    Badge                 `json:"status_badge"`
	PaymentBadge   Badge                 `json:"payment_badge"`
	Price          PriceBreakdown        `json:"price"`
	Options        []OptionView          `json:"options"`
	Cancelled      []CancelledOptionView `json:"cancelled_options"`
	Notes          string                `json:"notes,omitempty"`
}

type BookingListResponse struct {
	Bookings []domain.Booking `json:"bookings"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
}
