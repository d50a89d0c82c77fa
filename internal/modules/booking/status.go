package booking

import (
	"venuespace/internal/domain"
	"venuespace/internal/pkg/i18n"
)

// Badge is a presentation-ready status: a localized label plus the
// style class the frontend maps to colors.
type Badge struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

// StatusBadge classifies a booking status. Unknown values get the
// generic badge carrying the raw value; classification never fails.
func StatusBadge(status domain.BookingStatus, lang string) Badge {
	switch status {
	case domain.BookingConfirmed:
		return Badge{Label: i18n.T("booking.status.confirmed", lang), Class: "badge-success"}
	case domain.BookingPending:
		return Badge{Label: i18n.T("booking.status.pending", lang), Class: "badge-warning"}
	case domain.BookingCompleted:
		return Badge{Label: i18n.T("booking.status.completed", lang), Class: "badge-info"}
	case domain.BookingCancelled:
		return Badge{Label: i18n.T("booking.status.cancelled", lang), Class: "badge-danger"}
	default:
		return Badge{Label: string(status), Class: "badge-neutral"}
	}
}

// PaymentBadge classifies a payment status with the same fallback rule.
func PaymentBadge(status domain.PaymentStatus, lang string) Badge {
	switch status {
	case domain.PaymentPaid:
		return Badge{Label: i18n.T("payment.status.paid", lang), Class: "badge-success"}
	case domain.PaymentPartiallyPaid:
		return Badge{Label: i18n.T("payment.status.partially_paid", lang), Class: "badge-info"}
	case domain.PaymentPending:
		return Badge{Label: i18n.T("payment.status.pending", lang), Class: "badge-warning"}
	case domain.PaymentRefunded:
		return Badge{Label: i18n.T("payment.status.refunded", lang), Class: "badge-neutral"}
	case domain.PaymentFailed:
		return Badge{Label: i18n.T("payment.status.failed", lang), Class: "badge-danger"}
	default:
		return Badge{Label: string(status), Class: "badge-neutral"}
	}
}

// OptionBadge classifies a selected option from its ledger entry,
// matching by option id first and falling back to the service id.
// An option without a ledger entry is still pending.
func OptionBadge(ledger domain.OptionLedger, optionID, serviceID int64, lang string) Badge {
	entry := ledger.Find(optionID)
	if entry == nil {
		entry = ledger.FindByService(serviceID)
	}
	if entry == nil {
		return Badge{Label: i18n.T("option.status.pending", lang), Class: "badge-warning"}
	}

	switch entry.Status {
	case domain.OptionAccepted, domain.OptionConfirmed:
		return Badge{Label: i18n.T("option.status.approved", lang), Class: "badge-success"}
	case domain.OptionRejected, domain.OptionCancelled:
		return Badge{Label: i18n.T("option.status.rejected", lang), Class: "badge-danger"}
	case domain.OptionPending:
		return Badge{Label: i18n.T("option.status.pending", lang), Class: "badge-warning"}
	default:
		return Badge{Label: string(entry.Status), Class: "badge-neutral"}
	}
}
