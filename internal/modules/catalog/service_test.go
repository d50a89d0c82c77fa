package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"venuespace/internal/domain"
	"venuespace/internal/repository"
)

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) GetAll(ctx context.Context, f repository.VenueFilters) ([]domain.Venue, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Venue), args.Get(1).(int64), args.Error(2)
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) GetByHostID(ctx context.Context, hostID int64) ([]domain.Venue, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	args := m.Called(ctx, venue)
	if venue != nil {
		venue.ID = 1
	}
	return args.Error(0)
}

func (m *MockVenueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepository) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockVenueRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) GetAll(ctx context.Context, activeOnly bool) ([]domain.CatalogService, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.CatalogService), args.Error(1)
}

func (m *MockServiceRepository) GetByHostID(ctx context.Context, hostID int64) ([]domain.CatalogService, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).([]domain.CatalogService), args.Error(1)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.CatalogService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogService), args.Error(1)
}

func (m *MockServiceRepository) GetOptionByID(ctx context.Context, serviceID, optionID int64) (*domain.ServiceOption, error) {
	args := m.Called(ctx, serviceID, optionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOption), args.Error(1)
}

func (m *MockServiceRepository) CreateService(ctx context.Context, svc *domain.CatalogService) error {
	args := m.Called(ctx, svc)
	if svc != nil {
		svc.ID = 7
	}
	return args.Error(0)
}

func (m *MockServiceRepository) UpdateService(ctx context.Context, svc *domain.CatalogService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockServiceRepository) CreateOption(ctx context.Context, opt *domain.ServiceOption) error {
	args := m.Called(ctx, opt)
	if opt != nil {
		opt.ID = 70
	}
	return args.Error(0)
}

func (m *MockServiceRepository) UpdateOption(ctx context.Context, opt *domain.ServiceOption) error {
	args := m.Called(ctx, opt)
	return args.Error(0)
}

func (m *MockServiceRepository) SetServiceActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func verifiedHost() *domain.User {
	return &domain.User{
		ID:         1,
		Role:       domain.RoleHost,
		HostStatus: domain.HostVerified,
	}
}

func TestService_GetServiceByID_NotFoundIsNil(t *testing.T) {
	services := new(MockServiceRepository)
	services.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	service := NewService(new(MockVenueRepository), services, nil)

	svc, err := service.GetServiceByID(context.Background(), 404)

	assert.NoError(t, err)
	assert.Nil(t, svc)
}

func TestService_GetServiceOptionByID_NotFoundIsNil(t *testing.T) {
	services := new(MockServiceRepository)
	services.On("GetOptionByID", mock.Anything, int64(7), int64(404)).Return(nil, repository.ErrNotFound)

	service := NewService(new(MockVenueRepository), services, nil)

	opt, err := service.GetServiceOptionByID(context.Background(), 7, 404)

	assert.NoError(t, err)
	assert.Nil(t, opt)
}

func TestService_CreateVenue_RequiresVerifiedHost(t *testing.T) {
	service := NewService(new(MockVenueRepository), new(MockServiceRepository), nil)

	pendingHost := &domain.User{ID: 2, Role: domain.RoleHost, HostStatus: domain.HostPending}

	_, err := service.CreateVenue(context.Background(), pendingHost, CreateVenueRequest{
		Name:      domain.LocalizedText{"en": "Loft"},
		Address:   "Main st 1",
		City:      "Almaty",
		VenueType: "banquet_hall",
		Capacity:  50,
		Price:     PriceRequest{Amount: 1000, Currency: "USD", Type: "fixed"},
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_CreateVenue_RejectsUnknownType(t *testing.T) {
	service := NewService(new(MockVenueRepository), new(MockServiceRepository), nil)

	_, err := service.CreateVenue(context.Background(), verifiedHost(), CreateVenueRequest{
		Name:      domain.LocalizedText{"en": "Loft"},
		Address:   "Main st 1",
		City:      "Almaty",
		VenueType: "spaceship",
		Capacity:  50,
		Price:     PriceRequest{Amount: 1000, Currency: "USD", Type: "fixed"},
	})

	assert.ErrorIs(t, err, ErrInvalidVenueType)
}

func TestService_AddOption_WrongHost(t *testing.T) {
	services := new(MockServiceRepository)
	services.On("GetByID", mock.Anything, int64(7)).Return(&domain.CatalogService{
		ID:     7,
		HostID: 1,
	}, nil)

	service := NewService(new(MockVenueRepository), services, nil)

	_, err := service.AddOption(context.Background(), 99, 7, CreateOptionRequest{
		Name:  domain.LocalizedText{"en": "Premium"},
		Price: PriceRequest{Amount: 100, Currency: "USD", Type: "fixed"},
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_AddOption_DefaultsToFixedPricing(t *testing.T) {
	services := new(MockServiceRepository)
	services.On("GetByID", mock.Anything, int64(7)).Return(&domain.CatalogService{
		ID:     7,
		HostID: 1,
	}, nil)
	services.On("CreateOption", mock.Anything, mock.Anything).Return(nil)

	service := NewService(new(MockVenueRepository), services, nil)

	opt, err := service.AddOption(context.Background(), 1, 7, CreateOptionRequest{
		Name:  domain.LocalizedText{"en": "Premium"},
		Price: PriceRequest{Amount: 100, Currency: "USD"},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PricingFixed, opt.Price.Type)
}
