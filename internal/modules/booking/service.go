package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"venuespace/internal/domain"
	"venuespace/internal/pricing"
	"venuespace/internal/repository"
)

const dateFormat = "2006-01-02"

type Service struct {
	bookings BookingRepository
	venues   VenueGetter
	catalog  Catalog
	notifs   NotificationSender
}

func NewService(
	bookings BookingRepository,
	venues VenueGetter,
	catalog Catalog,
	notifs NotificationSender,
) *Service {
	return &Service{
		bookings: bookings,
		venues:   venues,
		catalog:  catalog,
		notifs:   notifs,
	}
}

func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	start, err := time.Parse(dateFormat, req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := time.Parse(dateFormat, req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}
	if end.Before(start) {
		return nil, ErrValidation
	}
	if start.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, ErrValidation
	}

	venue, err := s.venues.GetByID(ctx, req.VenueID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !venue.IsActive {
		return nil, ErrNotAvailable
	}

	guests := req.NumberOfGuests
	if guests < 1 {
		guests = 1
	}
	if venue.Capacity > 0 && guests > venue.Capacity {
		return nil, ErrValidation
	}

	available, err := s.bookings.CheckAvailability(ctx, req.VenueID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrNotAvailable
	}

	selected, ledger, err := s.resolveSelections(ctx, req.Options)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		Reference:       uuid.NewString(),
		UserID:          userID,
		VenueID:         req.VenueID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		NumberOfGuests:  guests,
		SelectedOptions: selected,
		OptionStatuses:  ledger,
		ServiceFee:      req.ServiceFee,
		Discount:        req.Discount,
		Status:          domain.BookingPending,
		PaymentStatus:   domain.PaymentPending,
		Notes:           req.Notes,
		Venue:           venue,
	}

	total, err := pricing.TotalPrice(b)
	if errors.Is(err, pricing.ErrInvalidTimeRange) {
		return nil, ErrValidation
	}
	if err != nil {
		return nil, err
	}
	b.TotalPrice = total

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, venue.HostID, b)
	}

	return b, nil
}

// resolveSelections snapshots the requested catalog options and opens
// a pending ledger entry for each.
func (s *Service) resolveSelections(ctx context.Context, selections []OptionSelection) (domain.BookingOptions, domain.OptionLedger, error) {
	if len(selections) == 0 {
		return nil, nil, nil
	}

	selected := make(domain.BookingOptions, 0, len(selections))
	ledger := make(domain.OptionLedger, 0, len(selections))

	for _, sel := range selections {
		opt, err := s.catalog.GetServiceOptionByID(ctx, sel.ServiceID, sel.OptionID)
		if err != nil {
			return nil, nil, err
		}
		if opt == nil || !opt.IsActive {
			return nil, nil, ErrUnknownOption
		}

		selected = append(selected, domain.BookingOption{
			OptionID:  opt.ID,
			ServiceID: sel.ServiceID,
			Name:      opt.Name,
			Price:     opt.Price,
		})
		ledger = append(ledger, domain.LedgerEntry{
			OptionID:  opt.ID,
			ServiceID: sel.ServiceID,
			Status:    domain.OptionPending,
		})
	}

	return selected, ledger, nil
}

// GetDetails returns the assembled details view. Only the booking
// owner, the venue host or an admin may read it.
func (s *Service) GetDetails(ctx context.Context, userID int64, role string, bookingID int64, lang string) (*BookingDetails, error) {
	b, err := s.loadAuthorized(ctx, userID, role, bookingID)
	if err != nil {
		return nil, err
	}
	return s.buildDetails(ctx, b, lang)
}

// GetDetailsByReference is the shareable-link variant of GetDetails:
// the booking is addressed by its opaque reference instead of the
// numeric id, with the same access rules.
func (s *Service) GetDetailsByReference(ctx context.Context, userID int64, role string, reference string, lang string) (*BookingDetails, error) {
	b, err := s.bookings.GetByReference(ctx, reference)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, userID, role, b); err != nil {
		return nil, err
	}
	return s.buildDetails(ctx, b, lang)
}

func (s *Service) loadAuthorized(ctx context.Context, userID int64, role string, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, userID, role, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) authorize(ctx context.Context, userID int64, role string, b *domain.Booking) error {
	if b.UserID == userID || role == string(domain.RoleAdmin) {
		return nil
	}

	hostID, _, err := s.bookings.GetVenueHost(ctx, b.ID)
	if err != nil {
		return err
	}
	if hostID != userID {
		return ErrForbidden
	}
	return nil
}

func (s *Service) CancelBooking(ctx context.Context, userID int64, role string, bookingID int64, reason string) (*domain.Booking, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}

	b, err := s.loadAuthorized(ctx, userID, role, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.CanBeCancelled() {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.CancelWithReason(ctx, bookingID, reason); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCancelled(ctx, b.UserID, b, reason)
	}

	return s.bookings.GetByID(ctx, bookingID)
}

// ConfirmBooking moves a pending booking to confirmed. Host only.
func (s *Service) ConfirmBooking(ctx context.Context, hostID, bookingID int64) (*domain.Booking, error) {
	b, err := s.loadForHost(ctx, hostID, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingPending {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingConfirmed); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingConfirmed(ctx, b.UserID, b)
	}

	return s.bookings.GetByID(ctx, bookingID)
}

// CompleteBooking moves a confirmed booking to completed. Host only.
func (s *Service) CompleteBooking(ctx context.Context, hostID, bookingID int64) (*domain.Booking, error) {
	b, err := s.loadForHost(ctx, hostID, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingConfirmed {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCompleted); err != nil {
		return nil, err
	}

	return s.bookings.GetByID(ctx, bookingID)
}

// ApproveOption marks a selected add-on as accepted by the host.
func (s *Service) ApproveOption(ctx context.Context, hostID, bookingID, optionID int64) (*domain.Booking, error) {
	return s.updateOptionStatus(ctx, hostID, bookingID, optionID, domain.OptionAccepted, "")
}

// RejectOption cancels a selected add-on with a reason. The option
// drops out of the total; the booking itself stays alive.
func (s *Service) RejectOption(ctx context.Context, hostID, bookingID, optionID int64, reason string) (*domain.Booking, error) {
	return s.updateOptionStatus(ctx, hostID, bookingID, optionID, domain.OptionCancelled, reason)
}

func (s *Service) updateOptionStatus(ctx context.Context, hostID, bookingID, optionID int64, status domain.OptionStatus, reason string) (*domain.Booking, error) {
	b, err := s.loadForHost(ctx, hostID, bookingID)
	if err != nil {
		return nil, err
	}

	var selected *domain.BookingOption
	for i := range b.SelectedOptions {
		if b.SelectedOptions[i].OptionID == optionID {
			selected = &b.SelectedOptions[i]
			break
		}
	}
	if selected == nil {
		return nil, ErrUnknownOption
	}

	if entry := b.OptionStatuses.Find(optionID); entry != nil {
		entry.Status = status
		entry.RejectionReason = reason
	} else {
		b.OptionStatuses = append(b.OptionStatuses, domain.LedgerEntry{
			OptionID:        optionID,
			ServiceID:       selected.ServiceID,
			Status:          status,
			RejectionReason: reason,
		})
	}

	// Отменённая опция больше не участвует в сумме
	total, err := pricing.TotalPrice(b)
	if err != nil {
		return nil, err
	}
	b.TotalPrice = total

	if err := s.bookings.SaveLedger(ctx, bookingID, b.OptionStatuses, total); err != nil {
		return nil, err
	}

	if status == domain.OptionCancelled && s.notifs != nil {
		_ = s.notifs.NotifyOptionRejected(ctx, b.UserID, b, optionID, reason)
	}

	return b, nil
}

func (s *Service) loadForHost(ctx context.Context, hostID, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	venueHost, _, err := s.bookings.GetVenueHost(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if venueHost != hostID {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) ListMyBookings(ctx context.Context, userID int64, page, perPage int) (*BookingListResponse, error) {
	bookings, total, err := s.bookings.GetByUserID(ctx, userID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	return &BookingListResponse{
		Bookings: bookings,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	}, nil
}

// ListVenueBookings returns every booking of one of the host's venues.
func (s *Service) ListVenueBookings(ctx context.Context, hostID, venueID int64) ([]domain.Booking, error) {
	venue, err := s.venues.GetByID(ctx, venueID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if venue.HostID != hostID {
		return nil, ErrForbidden
	}
	return s.bookings.GetByVenueID(ctx, venueID)
}
