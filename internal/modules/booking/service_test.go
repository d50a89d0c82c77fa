package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"venuespace/internal/domain"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CheckAvailability(ctx context.Context, venueID int64, startDate, endDate string) (bool, error) {
	args := m.Called(ctx, venueID, startDate, endDate)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) GetByVenueID(ctx context.Context, venueID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetVenueHost(ctx context.Context, bookingID int64) (int64, string, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(int64), args.String(1), args.Error(2)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) CancelWithReason(ctx context.Context, bookingID int64, reason string) error {
	args := m.Called(ctx, bookingID, reason)
	return args.Error(0)
}

func (m *MockBookingRepository) SaveLedger(ctx context.Context, bookingID int64, ledger domain.OptionLedger, totalPrice float64) error {
	args := m.Called(ctx, bookingID, ledger, totalPrice)
	return args.Error(0)
}

type MockVenueGetter struct {
	mock.Mock
}

func (m *MockVenueGetter) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetServiceByID(ctx context.Context, serviceID int64) (*domain.CatalogService, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogService), args.Error(1)
}

func (m *MockCatalog) GetServiceOptionByID(ctx context.Context, serviceID, optionID int64) (*domain.ServiceOption, error) {
	args := m.Called(ctx, serviceID, optionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOption), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyBookingCreated(ctx context.Context, hostUserID int64, b *domain.Booking) error {
	args := m.Called(ctx, hostUserID, b)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingConfirmed(ctx context.Context, clientUserID int64, b *domain.Booking) error {
	args := m.Called(ctx, clientUserID, b)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingCancelled(ctx context.Context, userID int64, b *domain.Booking, reason string) error {
	args := m.Called(ctx, userID, b, reason)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyOptionRejected(ctx context.Context, clientUserID int64, b *domain.Booking, optionID int64, reason string) error {
	args := m.Called(ctx, clientUserID, b, optionID, reason)
	return args.Error(0)
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(dateFormat)
}

func activeVenue(hostID int64, price domain.Price) *domain.Venue {
	return &domain.Venue{
		ID:       5,
		HostID:   hostID,
		Name:     domain.LocalizedText{"en": "Loft on Main"},
		Capacity: 100,
		Price:    price,
		IsActive: true,
	}
}

func TestService_CreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueGetter)
	mockCatalog := new(MockCatalog)
	mockNotifs := new(MockNotificationSender)

	venue := activeVenue(1, domain.Price{Amount: 500, Currency: "USD", Type: domain.PricingFixed})
	mockVenues.On("GetByID", mock.Anything, int64(5)).Return(venue, nil)

	start := futureDate(10)
	end := futureDate(11)
	mockBookings.On("CheckAvailability", mock.Anything, int64(5), start, end).Return(true, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	mockCatalog.On("GetServiceOptionByID", mock.Anything, int64(7), int64(70)).Return(&domain.ServiceOption{
		ID:        70,
		ServiceID: 7,
		Name:      domain.LocalizedText{"en": "Premium Sound"},
		Price:     domain.Price{Amount: 100, Currency: "USD", Type: domain.PricingFixed},
		IsActive:  true,
	}, nil)

	mockNotifs.On("NotifyBookingCreated", mock.Anything, int64(1), mock.Anything).Return(nil)

	service := NewService(mockBookings, mockVenues, mockCatalog, mockNotifs)

	req := CreateBookingRequest{
		VenueID:        5,
		StartDate:      start,
		EndDate:        end,
		NumberOfGuests: 40,
		Options: []OptionSelection{
			{ServiceID: 7, OptionID: 70},
		},
	}

	b, err := service.CreateBooking(context.Background(), 42, req)

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 600.0, b.TotalPrice)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.NotEmpty(t, b.Reference)
	assert.Len(t, b.OptionStatuses, 1)
	assert.Equal(t, domain.OptionPending, b.OptionStatuses[0].Status)
}

func TestService_CreateBooking_EndBeforeStart(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueGetter)
	service := NewService(mockBookings, mockVenues, new(MockCatalog), nil)

	req := CreateBookingRequest{
		VenueID:   5,
		StartDate: futureDate(11),
		EndDate:   futureDate(10),
	}

	_, err := service.CreateBooking(context.Background(), 42, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_VenueUnavailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueGetter)

	venue := activeVenue(1, domain.Price{Amount: 500, Currency: "USD", Type: domain.PricingFixed})
	mockVenues.On("GetByID", mock.Anything, int64(5)).Return(venue, nil)
	mockBookings.On("CheckAvailability", mock.Anything, int64(5), mock.Anything, mock.Anything).Return(false, nil)

	service := NewService(mockBookings, mockVenues, new(MockCatalog), nil)

	req := CreateBookingRequest{
		VenueID:   5,
		StartDate: futureDate(10),
		EndDate:   futureDate(11),
	}

	_, err := service.CreateBooking(context.Background(), 42, req)
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestService_CreateBooking_UnknownOption(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueGetter)
	mockCatalog := new(MockCatalog)

	venue := activeVenue(1, domain.Price{Amount: 500, Currency: "USD", Type: domain.PricingFixed})
	mockVenues.On("GetByID", mock.Anything, int64(5)).Return(venue, nil)
	mockBookings.On("CheckAvailability", mock.Anything, int64(5), mock.Anything, mock.Anything).Return(true, nil)
	mockCatalog.On("GetServiceOptionByID", mock.Anything, int64(7), int64(999)).Return(nil, nil)

	service := NewService(mockBookings, mockVenues, mockCatalog, nil)

	req := CreateBookingRequest{
		VenueID:   5,
		StartDate: futureDate(10),
		EndDate:   futureDate(11),
		Options:   []OptionSelection{{ServiceID: 7, OptionID: 999}},
	}

	_, err := service.CreateBooking(context.Background(), 42, req)
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestService_CreateBooking_GuestsOverCapacity(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueGetter)

	venue := activeVenue(1, domain.Price{Amount: 500, Currency: "USD", Type: domain.PricingFixed})
	venue.Capacity = 30
	mockVenues.On("GetByID", mock.Anything, int64(5)).Return(venue, nil)

	service := NewService(mockBookings, mockVenues, new(MockCatalog), nil)

	req := CreateBookingRequest{
		VenueID:        5,
		StartDate:      futureDate(10),
		EndDate:        futureDate(11),
		NumberOfGuests: 31,
	}

	_, err := service.CreateBooking(context.Background(), 42, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CancelBooking_ReasonRequired(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockVenueGetter), new(MockCatalog), nil)

	_, err := service.CancelBooking(context.Background(), 42, "client", 999, "")
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestService_CancelBooking_CompletedBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(999)).Return(&domain.Booking{
		ID:     999,
		UserID: 42,
		Status: domain.BookingCompleted,
	}, nil)

	service := NewService(mockBookings, new(MockVenueGetter), new(MockCatalog), nil)

	_, err := service.CancelBooking(context.Background(), 42, "client", 999, "changed plans")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_CancelBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockNotifs := new(MockNotificationSender)

	pending := &domain.Booking{ID: 999, UserID: 42, Status: domain.BookingPending}
	mockBookings.On("GetByID", mock.Anything, int64(999)).Return(pending, nil)
	mockBookings.On("CancelWithReason", mock.Anything, int64(999), "changed plans").Return(nil)
	mockNotifs.On("NotifyBookingCancelled", mock.Anything, int64(42), pending, "changed plans").Return(nil)

	service := NewService(mockBookings, new(MockVenueGetter), new(MockCatalog), mockNotifs)

	_, err := service.CancelBooking(context.Background(), 42, "client", 999, "changed plans")

	assert.NoError(t, err)
	mockBookings.AssertCalled(t, "CancelWithReason", mock.Anything, int64(999), "changed plans")
}

func TestService_ConfirmBooking_WrongHost(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(999)).Return(&domain.Booking{
		ID:     999,
		UserID: 42,
		Status: domain.BookingPending,
	}, nil)
	mockBookings.On("GetVenueHost", mock.Anything, int64(999)).Return(int64(1), "verified", nil)

	service := NewService(mockBookings, new(MockVenueGetter), new(MockCatalog), nil)

	_, err := service.ConfirmBooking(context.Background(), 77, 999)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_RejectOption_RecomputesTotal(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockNotifs := new(MockNotificationSender)

	venue := activeVenue(1, domain.Price{Amount: 500, Currency: "USD", Type: domain.PricingFixed})
	b := &domain.Booking{
		ID:      999,
		UserID:  42,
		VenueID: 5,
		Status:  domain.BookingPending,
		SelectedOptions: domain.BookingOptions{
			{OptionID: 70, ServiceID: 7, Name: domain.LocalizedText{"en": "Premium Sound"}, Price: domain.Price{Amount: 100, Type: domain.PricingFixed}},
			{OptionID: 80, ServiceID: 8, Name: domain.LocalizedText{"en": "Catering"}, Price: domain.Price{Amount: 50, Type: domain.PricingFixed}},
		},
		OptionStatuses: domain.OptionLedger{
			{OptionID: 70, ServiceID: 7, Status: domain.OptionPending},
			{OptionID: 80, ServiceID: 8, Status: domain.OptionPending},
		},
		TotalPrice: 650,
		Venue:      venue,
	}

	mockBookings.On("GetByID", mock.Anything, int64(999)).Return(b, nil)
	mockBookings.On("GetVenueHost", mock.Anything, int64(999)).Return(int64(1), "verified", nil)
	mockBookings.On("SaveLedger", mock.Anything, int64(999), mock.Anything, 550.0).Return(nil)
	mockNotifs.On("NotifyOptionRejected", mock.Anything, int64(42), mock.Anything, int64(70), "equipment broken").Return(nil)

	service := NewService(mockBookings, new(MockVenueGetter), new(MockCatalog), mockNotifs)

	updated, err := service.RejectOption(context.Background(), 1, 999, 70, "equipment broken")

	assert.NoError(t, err)
	assert.Equal(t, 550.0, updated.TotalPrice)

	entry := updated.OptionStatuses.Find(70)
	assert.NotNil(t, entry)
	assert.Equal(t, domain.OptionCancelled, entry.Status)
	assert.Equal(t, "equipment broken", entry.RejectionReason)
}

func TestService_ApproveOption_KeepsTotal(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	venue := activeVenue(1, domain.Price{Amount: 500, Currency: "USD", Type: domain.PricingFixed})
	b := &domain.Booking{
		ID:      999,
		UserID:  42,
		VenueID: 5,
		SelectedOptions: domain.BookingOptions{
			{OptionID: 70, ServiceID: 7, Price: domain.Price{Amount: 100, Type: domain.PricingFixed}},
		},
		OptionStatuses: domain.OptionLedger{
			{OptionID: 70, ServiceID: 7, Status: domain.OptionPending},
		},
		Venue: venue,
	}

	mockBookings.On("GetByID", mock.Anything, int64(999)).Return(b, nil)
	mockBookings.On("GetVenueHost", mock.Anything, int64(999)).Return(int64(1), "verified", nil)
	mockBookings.On("SaveLedger", mock.Anything, int64(999), mock.Anything, 600.0).Return(nil)

	service := NewService(mockBookings, new(MockVenueGetter), new(MockCatalog), nil)

	updated, err := service.ApproveOption(context.Background(), 1, 999, 70)

	assert.NoError(t, err)
	assert.Equal(t, 600.0, updated.TotalPrice)
	assert.Equal(t, domain.OptionAccepted, updated.OptionStatuses.Find(70).Status)
}

func TestService_GetDetails_Forbidden(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(999)).Return(&domain.Booking{
		ID:     999,
		UserID: 42,
	}, nil)
	mockBookings.On("GetVenueHost", mock.Anything, int64(999)).Return(int64(1), "verified", nil)

	service := NewService(mockBookings, new(MockVenueGetter), new(MockCatalog), nil)

	_, err := service.GetDetails(context.Background(), 77, "client", 999, "en")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_GetDetailsByReference_Owner(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	venue := activeVenue(1, domain.Price{Amount: 500, Currency: "USD", Type: domain.PricingFixed})
	b := &domain.Booking{
		ID:        999,
		Reference: "a3f0c1d2",
		UserID:    42,
		VenueID:   5,
		Status:    domain.BookingConfirmed,
		Venue:     venue,
	}
	mockBookings.On("GetByReference", mock.Anything, "a3f0c1d2").Return(b, nil)

	service := NewService(mockBookings, new(MockVenueGetter), new(MockCatalog), nil)

	details, err := service.GetDetailsByReference(context.Background(), 42, "client", "a3f0c1d2", "en")

	assert.NoError(t, err)
	assert.Equal(t, "a3f0c1d2", details.Reference)
	assert.Equal(t, 500.0, details.Price.Total)
}

func TestService_GetDetailsByReference_Forbidden(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByReference", mock.Anything, "a3f0c1d2").Return(&domain.Booking{
		ID:        999,
		Reference: "a3f0c1d2",
		UserID:    42,
	}, nil)
	mockBookings.On("GetVenueHost", mock.Anything, int64(999)).Return(int64(1), "confirmed", nil)

	service := NewService(mockBookings, new(MockVenueGetter), new(MockCatalog), nil)

	_, err := service.GetDetailsByReference(context.Background(), 77, "client", "a3f0c1d2", "en")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_ListVenueBookings_WrongHost(t *testing.T) {
	mockVenues := new(MockVenueGetter)
	venue := activeVenue(1, domain.Price{Amount: 500, Currency: "USD", Type: domain.PricingFixed})
	mockVenues.On("GetByID", mock.Anything, int64(5)).Return(venue, nil)

	service := NewService(new(MockBookingRepository), mockVenues, new(MockCatalog), nil)

	_, err := service.ListVenueBookings(context.Background(), 77, 5)
	assert.ErrorIs(t, err, ErrForbidden)
}
