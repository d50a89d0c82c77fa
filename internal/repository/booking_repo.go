package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"venuespace/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CheckAvailability reports whether the venue is free for the date
// range. Two ranges overlap when start1 <= end2 AND end1 >= start2;
// ISO dates compare correctly as strings on both databases.
func (r *BookingRepository) CheckAvailability(ctx context.Context, venueID int64, startDate, endDate string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("venue_id = ?", venueID).
		Where("status NOT IN ('cancelled')").
		Where("start_date <= ? AND end_date >= ?", endDate, startDate).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("User").
		First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("User").
		Where("reference = ?", reference).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, int64, error) {
	var bookings []domain.Booking
	var total int64

	q := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("user_id = ?", userID)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Venue").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error
	return bookings, total, err
}

func (r *BookingRepository) GetByVenueID(ctx context.Context, venueID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("venue_id = ?", venueID).
		Order("start_date DESC").
		Find(&bookings).Error
	return bookings, err
}

// GetVenueHost returns the owning host of the booking's venue along
// with the booking's current status.
func (r *BookingRepository) GetVenueHost(ctx context.Context, bookingID int64) (hostID int64, status string, err error) {
	row := struct {
		HostID int64
		Status string
	}{}
	err = r.db.WithContext(ctx).
		Table("bookings").
		Select("venues.host_id AS host_id, bookings.status AS status").
		Joins("JOIN venues ON venues.id = bookings.venue_id").
		Where("bookings.id = ?", bookingID).
		Scan(&row).Error
	return row.HostID, row.Status, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Update("payment_status", status).Error
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, bookingID int64, reason string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{
			"status":              domain.BookingCancelled,
			"cancellation_reason": reason,
			"cancelled_at":        &now,
		}).Error
}

// SaveLedger persists a rewritten option ledger together with the
// recomputed total.
func (r *BookingRepository) SaveLedger(ctx context.Context, bookingID int64, ledger domain.OptionLedger, totalPrice float64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{
			"option_statuses": ledger,
			"total_price":     totalPrice,
		}).Error
}
