package booking

import (
	"context"

	"venuespace/internal/domain"
	"venuespace/internal/pkg/currency"
	"venuespace/internal/pkg/i18n"
	"venuespace/internal/pricing"
)

// buildDetails assembles the full details view for an already
// authorized booking.
func (s *Service) buildDetails(ctx context.Context, b *domain.Booking, lang string) (*BookingDetails, error) {
	venuePrice, err := pricing.VenuePrice(b)
	if err != nil {
		return nil, err
	}
	optionsTotal := pricing.OptionsTotal(b)
	total, err := pricing.TotalPrice(b)
	if err != nil {
		return nil, err
	}

	code := "USD"
	venueName := ""
	if b.Venue != nil {
		if b.Venue.Price.Currency != "" {
			code = b.Venue.Price.Currency
		}
		venueName = b.Venue.Name.Resolve(lang, "")
	}

	options := make([]OptionView, 0, len(b.SelectedOptions))
	for _, opt := range b.SelectedOptions {
		options = append(options, OptionView{
			OptionID:  opt.OptionID,
			ServiceID: opt.ServiceID,
			Name:      opt.Name.Resolve(lang, i18n.T("enrichment.unknown_option", lang)),
			Price:     opt.Price,
			Badge:     OptionBadge(b.OptionStatuses, opt.OptionID, opt.ServiceID, lang),
		})
	}

	cancelled, err := ReconcileCancelledOptions(ctx, s.catalog, b, lang)
	if err != nil {
		return nil, err
	}

	return &BookingDetails{
		ID:             b.ID,
		Reference:      b.Reference,
		VenueID:        b.VenueID,
		VenueName:      venueName,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		NumberOfGuests: b.Guests(),
		StatusBadge:    StatusBadge(b.Status, lang),
		PaymentBadge:   PaymentBadge(b.PaymentStatus, lang),
		Price: PriceBreakdown{
			VenuePrice:     venuePrice,
			OptionsTotal:   optionsTotal,
			ServiceFee:     b.ServiceFee.Float64(),
			Discount:       b.Discount.Float64(),
			Total:          total,
			Currency:       code,
			VenueDisplay:   currency.Format(venuePrice, code),
			OptionsDisplay: currency.Format(optionsTotal, code),
			TotalDisplay:   currency.Format(total, code),
		},
		Options:   options,
		Cancelled: cancelled,
		Notes:     b.Notes,
	}, nil
}
