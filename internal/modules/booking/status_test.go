package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"venuespace/internal/domain"
)

func TestStatusBadge_KnownStatuses(t *testing.T) {
	assert.Equal(t, Badge{Label: "Confirmed", Class: "badge-success"}, StatusBadge(domain.BookingConfirmed, "en"))
	assert.Equal(t, Badge{Label: "Pending", Class: "badge-warning"}, StatusBadge(domain.BookingPending, "en"))
	assert.Equal(t, Badge{Label: "Completed", Class: "badge-info"}, StatusBadge(domain.BookingCompleted, "en"))
	assert.Equal(t, Badge{Label: "Cancelled", Class: "badge-danger"}, StatusBadge(domain.BookingCancelled, "en"))
}

// Неизвестный статус не должен ронять рендер
func TestStatusBadge_UnknownStatusKeepsRawValue(t *testing.T) {
	badge := StatusBadge(domain.BookingStatus("archived"), "en")

	assert.Equal(t, "archived", badge.Label)
	assert.Equal(t, "badge-neutral", badge.Class)
}

func TestPaymentBadge_KnownStatuses(t *testing.T) {
	assert.Equal(t, "badge-success", PaymentBadge(domain.PaymentPaid, "en").Class)
	assert.Equal(t, "badge-info", PaymentBadge(domain.PaymentPartiallyPaid, "en").Class)
	assert.Equal(t, "badge-danger", PaymentBadge(domain.PaymentFailed, "en").Class)
}

func TestPaymentBadge_UnknownStatusKeepsRawValue(t *testing.T) {
	badge := PaymentBadge(domain.PaymentStatus("chargeback"), "en")

	assert.Equal(t, "chargeback", badge.Label)
	assert.Equal(t, "badge-neutral", badge.Class)
}

func TestOptionBadge_MatchesByOptionID(t *testing.T) {
	ledger := domain.OptionLedger{
		{OptionID: 70, ServiceID: 7, Status: domain.OptionAccepted},
	}

	badge := OptionBadge(ledger, 70, 7, "en")
	assert.Equal(t, "badge-success", badge.Class)
}

func TestOptionBadge_FallsBackToServiceID(t *testing.T) {
	// старые записи хранили только serviceId
	ledger := domain.OptionLedger{
		{ServiceID: 7, Status: domain.OptionCancelled},
	}

	badge := OptionBadge(ledger, 70, 7, "en")
	assert.Equal(t, "badge-danger", badge.Class)
}

func TestOptionBadge_NoEntryIsPending(t *testing.T) {
	badge := OptionBadge(nil, 70, 7, "en")

	assert.Equal(t, "Awaiting approval", badge.Label)
	assert.Equal(t, "badge-warning", badge.Class)
}

func TestOptionBadge_UnknownStatusKeepsRawValue(t *testing.T) {
	ledger := domain.OptionLedger{
		{OptionID: 70, ServiceID: 7, Status: domain.OptionStatus("escalated")},
	}

	badge := OptionBadge(ledger, 70, 7, "en")
	assert.Equal(t, "escalated", badge.Label)
	assert.Equal(t, "badge-neutral", badge.Class)
}
