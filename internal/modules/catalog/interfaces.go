package catalog

import (
	"context"

	"venuespace/internal/domain"
	"venuespace/internal/repository"
)

// VenueRepository defines the venue storage operations used here.
type VenueRepository interface {
	GetAll(ctx context.Context, f repository.VenueFilters) ([]domain.Venue, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	GetByHostID(ctx context.Context, hostID int64) ([]domain.Venue, error)
	Create(ctx context.Context, venue *domain.Venue) error
	Update(ctx context.Context, venue *domain.Venue) error
	SetActive(ctx context.Context, id int64, active bool) error
	SoftDelete(ctx context.Context, id int64) error
}

// ServiceRepository defines the add-on catalog storage operations.
type ServiceRepository interface {
	GetAll(ctx context.Context, activeOnly bool) ([]domain.CatalogService, error)
	GetByHostID(ctx context.Context, hostID int64) ([]domain.CatalogService, error)
	GetByID(ctx context.Context, id int64) (*domain.CatalogService, error)
	GetOptionByID(ctx context.Context, serviceID, optionID int64) (*domain.ServiceOption, error)
	CreateService(ctx context.Context, svc *domain.CatalogService) error
	UpdateService(ctx context.Context, svc *domain.CatalogService) error
	CreateOption(ctx context.Context, opt *domain.ServiceOption) error
	UpdateOption(ctx context.Context, opt *domain.ServiceOption) error
	SetServiceActive(ctx context.Context, id int64, active bool) error
}
