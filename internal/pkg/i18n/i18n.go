// Package i18n holds the backend-owned label translations. Only keys
// that the API serves directly (status badges, enrichment defaults)
// live here; everything else is the frontend's business.
package i18n

const DefaultLanguage = "en"

var messages = map[string]map[string]string{
	"booking.status.pending": {
		"en": "Pending",
		"ru": "Ожидает подтверждения",
		"kk": "Күтуде",
	},
	"booking.status.confirmed": {
		"en": "Confirmed",
		"ru": "Подтверждено",
		"kk": "Расталды",
	},
	"booking.status.completed": {
		"en": "Completed",
		"ru": "Завершено",
		"kk": "Аяқталды",
	},
	"booking.status.cancelled": {
		"en": "Cancelled",
		"ru": "Отменено",
		"kk": "Бас тартылды",
	},
	"payment.status.pending": {
		"en": "Payment pending",
		"ru": "Ожидает оплаты",
	},
	"payment.status.partially_paid": {
		"en": "Partially paid",
		"ru": "Частично оплачено",
	},
	"payment.status.paid": {
		"en": "Paid",
		"ru": "Оплачено",
	},
	"payment.status.refunded": {
		"en": "Refunded",
		"ru": "Возвращено",
	},
	"payment.status.failed": {
		"en": "Payment failed",
		"ru": "Оплата не прошла",
	},
	"option.status.pending": {
		"en": "Awaiting approval",
		"ru": "Ожидает одобрения",
	},
	"option.status.approved": {
		"en": "Approved",
		"ru": "Одобрено",
	},
	"option.status.rejected": {
		"en": "Rejected",
		"ru": "Отклонено",
	},
	"enrichment.no_reason": {
		"en": "No reason provided",
		"ru": "Причина не указана",
	},
	"enrichment.unknown_service": {
		"en": "Unknown service",
		"ru": "Неизвестный сервис",
	},
	"enrichment.unknown_option": {
		"en": "Unknown option",
		"ru": "Неизвестная опция",
	},
}

// T resolves a message key for the given language, falling back to
// English, then to the raw key so a missing translation is visible
// instead of silent.
func T(key, lang string) string {
	m, ok := messages[key]
	if !ok {
		return key
	}
	if v, ok := m[lang]; ok && v != "" {
		return v
	}
	if v, ok := m[DefaultLanguage]; ok && v != "" {
		return v
	}
	return key
}
