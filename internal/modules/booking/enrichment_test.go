package booking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"venuespace/internal/domain"
)

func cancelledBooking(ledger domain.OptionLedger) *domain.Booking {
	return &domain.Booking{
		ID:             1,
		OptionStatuses: ledger,
	}
}

func TestReconcileCancelledOptions_ResolvesViaCatalog(t *testing.T) {
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetServiceByID", mock.Anything, int64(7)).Return(&domain.CatalogService{
		ID:   7,
		Name: domain.LocalizedText{"en": "DJ Services"},
		Icon: "music",
	}, nil)
	mockCatalog.On("GetServiceOptionByID", mock.Anything, int64(7), int64(70)).Return(&domain.ServiceOption{
		ID:        70,
		ServiceID: 7,
		Name:      domain.LocalizedText{"en": "Premium Package"},
		Price:     domain.Price{Amount: 100, Currency: "USD", Type: domain.PricingFixed},
	}, nil)

	b := cancelledBooking(domain.OptionLedger{
		{OptionID: 70, ServiceID: 7, Status: domain.OptionCancelled, RejectionReason: "fully booked"},
	})

	views, err := ReconcileCancelledOptions(context.Background(), mockCatalog, b, "en")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "DJ Services", views[0].Name)
	assert.Equal(t, "music", views[0].Icon)
	assert.Equal(t, "Premium Package", views[0].OptionName)
	require.NotNil(t, views[0].Price)
	assert.Equal(t, 100.0, views[0].Price.Amount)
	assert.Equal(t, "fully booked", views[0].RejectionReason)
	assert.True(t, views[0].Resolved)
}

func TestReconcileCancelledOptions_SkipsNonCancelled(t *testing.T) {
	mockCatalog := new(MockCatalog)

	b := cancelledBooking(domain.OptionLedger{
		{OptionID: 70, ServiceID: 7, Status: domain.OptionPending},
		{OptionID: 80, ServiceID: 8, Status: domain.OptionAccepted},
	})

	views, err := ReconcileCancelledOptions(context.Background(), mockCatalog, b, "en")

	require.NoError(t, err)
	assert.Empty(t, views)
	mockCatalog.AssertNotCalled(t, "GetServiceByID")
}

func TestReconcileCancelledOptions_PreservesLedgerOrder(t *testing.T) {
	mockCatalog := new(MockCatalog)
	mockCatalog.On("GetServiceByID", mock.Anything, mock.Anything).Return(nil, nil)
	mockCatalog.On("GetServiceOptionByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	b := cancelledBooking(domain.OptionLedger{
		{OptionID: 30, ServiceID: 3, Status: domain.OptionCancelled},
		{OptionID: 10, ServiceID: 1, Status: domain.OptionCancelled},
		{OptionID: 20, ServiceID: 2, Status: domain.OptionCancelled},
	})

	views, err := ReconcileCancelledOptions(context.Background(), mockCatalog, b, "en")

	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, int64(30), views[0].OptionID)
	assert.Equal(t, int64(10), views[1].OptionID)
	assert.Equal(t, int64(20), views[2].OptionID)
}

// Сбой одного лукапа не трогает соседние записи
func TestReconcileCancelledOptions_FailureIsolation(t *testing.T) {
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetServiceByID", mock.Anything, int64(7)).Return(nil, errors.New("catalog down"))
	mockCatalog.On("GetServiceOptionByID", mock.Anything, int64(7), int64(70)).Return(nil, errors.New("catalog down"))

	mockCatalog.On("GetServiceByID", mock.Anything, int64(8)).Return(&domain.CatalogService{
		ID:   8,
		Name: domain.LocalizedText{"en": "Catering"},
	}, nil)
	mockCatalog.On("GetServiceOptionByID", mock.Anything, int64(8), int64(80)).Return(&domain.ServiceOption{
		ID:        80,
		ServiceID: 8,
		Name:      domain.LocalizedText{"en": "Buffet"},
		Price:     domain.Price{Amount: 50, Type: domain.PricingFixed},
	}, nil)

	b := cancelledBooking(domain.OptionLedger{
		{OptionID: 70, ServiceID: 7, Status: domain.OptionCancelled},
		{OptionID: 80, ServiceID: 8, Status: domain.OptionCancelled},
	})

	views, err := ReconcileCancelledOptions(context.Background(), mockCatalog, b, "en")

	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.False(t, views[0].Resolved)
	assert.Equal(t, "Unknown service", views[0].Name)
	assert.Equal(t, "Unknown option", views[0].OptionName)
	assert.Nil(t, views[0].Price)
	assert.Equal(t, "No reason provided", views[0].RejectionReason)

	assert.True(t, views[1].Resolved)
	assert.Equal(t, "Catering", views[1].Name)
	assert.Equal(t, "Buffet", views[1].OptionName)
}

func TestReconcileCancelledOptions_MissingEntryDegrades(t *testing.T) {
	mockCatalog := new(MockCatalog)
	mockCatalog.On("GetServiceByID", mock.Anything, int64(7)).Return(nil, nil)
	mockCatalog.On("GetServiceOptionByID", mock.Anything, int64(7), int64(70)).Return(nil, nil)

	b := cancelledBooking(domain.OptionLedger{
		{OptionID: 70, ServiceID: 7, Status: domain.OptionCancelled},
	})

	views, err := ReconcileCancelledOptions(context.Background(), mockCatalog, b, "en")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].Resolved)
	assert.Equal(t, "Unknown service", views[0].Name)
}

func TestReconcileCancelledOptions_ContextCancelledAbandonsRun(t *testing.T) {
	mockCatalog := new(MockCatalog)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := cancelledBooking(domain.OptionLedger{
		{OptionID: 70, ServiceID: 7, Status: domain.OptionCancelled},
	})

	views, err := ReconcileCancelledOptions(ctx, mockCatalog, b, "en")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, views)
	mockCatalog.AssertNotCalled(t, "GetServiceByID")
}

func TestReconcileCancelledOptions_NilBooking(t *testing.T) {
	views, err := ReconcileCancelledOptions(context.Background(), new(MockCatalog), nil, "en")

	require.NoError(t, err)
	assert.Empty(t, views)
}

// metadata.options исторически хранился и объектом, и массивом
func TestOptionLedger_SingleObjectShape(t *testing.T) {
	var ledger domain.OptionLedger
	err := json.Unmarshal([]byte(`{"id": 70, "serviceId": 7, "status": "cancelled"}`), &ledger)

	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, int64(70), ledger[0].OptionID)
	assert.True(t, ledger.IsCancelled(70))

	mockCatalog := new(MockCatalog)
	mockCatalog.On("GetServiceByID", mock.Anything, int64(7)).Return(nil, nil)
	mockCatalog.On("GetServiceOptionByID", mock.Anything, int64(7), int64(70)).Return(nil, nil)

	views, err := ReconcileCancelledOptions(context.Background(), mockCatalog, cancelledBooking(ledger), "en")

	require.NoError(t, err)
	assert.Len(t, views, 1)
}
