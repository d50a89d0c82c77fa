package catalog

import (
	"context"
	"errors"
	"fmt"

	"venuespace/internal/domain"
	"venuespace/internal/pkg/cache"
	"venuespace/internal/repository"
)

type Service struct {
	venues   VenueRepository
	services ServiceRepository
	cache    *cache.Cache
}

func NewService(venues VenueRepository, services ServiceRepository, c *cache.Cache) *Service {
	return &Service{venues: venues, services: services, cache: c}
}

/* ---------- VENUES ---------- */

func (s *Service) SearchVenues(ctx context.Context, f repository.VenueFilters) ([]domain.Venue, int64, error) {
	return s.venues.GetAll(ctx, f)
}

func (s *Service) GetVenue(ctx context.Context, id int64) (*domain.Venue, error) {
	venue, err := s.venues.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return venue, err
}

func (s *Service) GetHostVenues(ctx context.Context, hostID int64) ([]domain.Venue, error) {
	return s.venues.GetByHostID(ctx, hostID)
}

func (s *Service) CreateVenue(ctx context.Context, user *domain.User, req CreateVenueRequest) (*domain.Venue, error) {
	if !user.CanManageVenues() {
		return nil, ErrForbidden
	}

	venueType, err := domain.ParseVenueType(req.VenueType)
	if err != nil {
		return nil, ErrInvalidVenueType
	}

	venue := &domain.Venue{
		HostID:      user.ID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		District:    req.District,
		VenueType:   venueType,
		Capacity:    req.Capacity,
		Price:       priceFromRequest(req.Price),
		Amenities:   req.Amenities,
		Photos:      req.Photos,
		IsActive:    true,
	}

	if err := s.venues.Create(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *Service) UpdateVenue(ctx context.Context, hostID, venueID int64, req UpdateVenueRequest) (*domain.Venue, error) {
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

	if req.Name != nil {
		venue.Name = req.Name
	}
	if req.Description != nil {
		venue.Description = req.Description
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.City != nil {
		venue.City = *req.City
	}
	if req.District != nil {
		venue.District = *req.District
	}
	if req.VenueType != nil {
		vt, err := domain.ParseVenueType(*req.VenueType)
		if err != nil {
			return nil, ErrInvalidVenueType
		}
		venue.VenueType = vt
	}
	if req.Capacity != nil && *req.Capacity > 0 {
		venue.Capacity = *req.Capacity
	}
	if req.Price != nil {
		venue.Price = priceFromRequest(*req.Price)
	}
	if req.Amenities != nil {
		venue.Amenities = *req.Amenities
	}
	if req.Photos != nil {
		venue.Photos = *req.Photos
	}

	if err := s.venues.Update(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *Service) DeleteVenue(ctx context.Context, hostID, venueID int64) error {
	venue, err := s.venues.GetByID(ctx, venueID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if venue.HostID != hostID {
		return ErrForbidden
	}
	return s.venues.SoftDelete(ctx, venueID)
}

/* ---------- ADD-ON SERVICES ---------- */

func (s *Service) ListServices(ctx context.Context) ([]domain.CatalogService, error) {
	return s.services.GetAll(ctx, true)
}

func (s *Service) GetHostServices(ctx context.Context, hostID int64) ([]domain.CatalogService, error) {
	return s.services.GetByHostID(ctx, hostID)
}

// GetServiceByID is the catalog lookup used by booking enrichment.
// Not-found is (nil, nil), not an error. Hot path, so reads go through
// the cache.
func (s *Service) GetServiceByID(ctx context.Context, serviceID int64) (*domain.CatalogService, error) {
	key := serviceCacheKey(serviceID)

	var cached domain.CatalogService
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	svc, err := s.services.GetByID(ctx, serviceID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, svc)
	return svc, nil
}

// GetServiceOptionByID resolves one option of a service. Not-found is
// (nil, nil), not an error.
func (s *Service) GetServiceOptionByID(ctx context.Context, serviceID, optionID int64) (*domain.ServiceOption, error) {
	opt, err := s.services.GetOptionByID(ctx, serviceID, optionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return opt, nil
}

func (s *Service) CreateService(ctx context.Context, user *domain.User, req CreateServiceRequest) (*domain.CatalogService, error) {
	if !user.CanManageVenues() {
		return nil, ErrForbidden
	}

	svc := &domain.CatalogService{
		HostID:   user.ID,
		Name:     req.Name,
		Icon:     req.Icon,
		IsActive: true,
	}
	if err := s.services.CreateService(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) AddOption(ctx context.Context, hostID, serviceID int64, req CreateOptionRequest) (*domain.ServiceOption, error) {
	svc, err := s.services.GetByID(ctx, serviceID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if svc.HostID != hostID {
		return nil, ErrForbidden
	}

	opt := &domain.ServiceOption{
		ServiceID: serviceID,
		Name:      req.Name,
		Price:     priceFromRequest(req.Price),
		IsActive:  true,
	}
	if err := s.services.CreateOption(ctx, opt); err != nil {
		return nil, err
	}

	// Свежая опция делает кеш сервиса устаревшим
	s.cache.Delete(ctx, serviceCacheKey(serviceID))
	return opt, nil
}

func (s *Service) DeactivateService(ctx context.Context, hostID, serviceID int64) error {
	svc, err := s.services.GetByID(ctx, serviceID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if svc.HostID != hostID {
		return ErrForbidden
	}

	if err := s.services.SetServiceActive(ctx, serviceID, false); err != nil {
		return err
	}
	s.cache.Delete(ctx, serviceCacheKey(serviceID))
	return nil
}

func priceFromRequest(p PriceRequest) domain.Price {
	t := domain.PricingType(p.Type)
	if t == "" {
		t = domain.PricingFixed
	}
	return domain.Price{Amount: p.Amount, Currency: p.Currency, Type: t}
}

func serviceCacheKey(serviceID int64) string {
	return fmt.Sprintf("catalog:service:%d", serviceID)
}
