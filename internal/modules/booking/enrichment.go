package booking

import (
	"context"

	"venuespace/internal/domain"
	"venuespace/internal/pkg/i18n"
)

// CancelledOptionView is the display record built for each cancelled
// ledger entry. It exists per request and is never persisted.
type CancelledOptionView struct {
	OptionID        int64         `json:"option_id"`
	ServiceID       int64         `json:"service_id"`
	Name            string        `json:"name"`
	Icon            string        `json:"icon,omitempty"`
	OptionName      string        `json:"option_name"`
	Price           *domain.Price `json:"price,omitempty"`
	RejectionReason string        `json:"rejection_reason"`
	Resolved        bool          `json:"resolved"`
}

// ReconcileCancelledOptions resolves every cancelled ledger entry into
// a display record via the catalog, preserving ledger order.
//
// A failed or empty lookup degrades that single entry to its
// provisional form; siblings are always processed. Cancelling ctx
// abandons the whole run: the caller is switching bookings and stale
// results must not leak into the new view.
func ReconcileCancelledOptions(ctx context.Context, catalog Catalog, b *domain.Booking, lang string) ([]CancelledOptionView, error) {
	views := make([]CancelledOptionView, 0)
	if b == nil {
		return views, nil
	}

	for _, entry := range b.OptionStatuses {
		if entry.Status != domain.OptionCancelled {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		view := CancelledOptionView{
			OptionID:        entry.OptionID,
			ServiceID:       entry.ServiceID,
			Name:            i18n.T("enrichment.unknown_service", lang),
			OptionName:      i18n.T("enrichment.unknown_option", lang),
			RejectionReason: entry.RejectionReason,
		}
		if view.RejectionReason == "" {
			view.RejectionReason = i18n.T("enrichment.no_reason", lang)
		}

		svc, svcErr := catalog.GetServiceByID(ctx, entry.ServiceID)
		if svcErr == nil && svc != nil {
			view.Name = svc.Name.Resolve(lang, view.Name)
			view.Icon = svc.Icon
		}

		opt, optErr := catalog.GetServiceOptionByID(ctx, entry.ServiceID, entry.OptionID)
		if optErr == nil && opt != nil {
			view.OptionName = opt.Name.Resolve(lang, view.OptionName)
			price := opt.Price
			view.Price = &price
		}

		view.Resolved = svcErr == nil && optErr == nil && svc != nil && opt != nil

		views = append(views, view)
	}

	return views, nil
}
