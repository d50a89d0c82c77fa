package booking

import (
	"context"

	"venuespace/internal/domain"
)

// BookingRepository defines the storage operations used by the module.
type BookingRepository interface {
	CheckAvailability(ctx context.Context, venueID int64, startDate, endDate string) (bool, error)
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, int64, error)
	GetByVenueID(ctx context.Context, venueID int64) ([]domain.Booking, error)
	GetVenueHost(ctx context.Context, bookingID int64) (hostID int64, status string, err error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error
	CancelWithReason(ctx context.Context, bookingID int64, reason string) error
	SaveLedger(ctx context.Context, bookingID int64, ledger domain.OptionLedger, totalPrice float64) error
}

// VenueGetter loads venues for availability and ownership checks.
type VenueGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// Catalog resolves add-on services and options. Not-found is
// (nil, nil), never an error.
type Catalog interface {
	GetServiceByID(ctx context.Context, serviceID int64) (*domain.CatalogService, error)
	GetServiceOptionByID(ctx context.Context, serviceID, optionID int64) (*domain.ServiceOption, error)
}

// NotificationSender delivers booking event notifications. A nil
// sender disables notifications.
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, hostUserID int64, b *domain.Booking) error
	NotifyBookingConfirmed(ctx context.Context, clientUserID int64, b *domain.Booking) error
	NotifyBookingCancelled(ctx context.Context, userID int64, b *domain.Booking, reason string) error
	NotifyOptionRejected(ctx context.Context, clientUserID int64, b *domain.Booking, optionID int64, reason string) error
}
