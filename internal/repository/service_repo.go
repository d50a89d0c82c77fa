package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"venuespace/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) GetAll(ctx context.Context, activeOnly bool) ([]domain.CatalogService, error) {
	var services []domain.CatalogService
	q := r.db.WithContext(ctx).Preload("Options")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&services).Error
	return services, err
}

func (r *ServiceRepository) GetByHostID(ctx context.Context, hostID int64) ([]domain.CatalogService, error) {
	var services []domain.CatalogService
	err := r.db.WithContext(ctx).
		Preload("Options").
		Where("host_id = ?", hostID).
		Find(&services).Error
	return services, err
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.CatalogService, error) {
	var svc domain.CatalogService
	err := r.db.WithContext(ctx).
		Preload("Options").
		First(&svc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *ServiceRepository) GetOptionByID(ctx context.Context, serviceID, optionID int64) (*domain.ServiceOption, error) {
	var opt domain.ServiceOption
	err := r.db.WithContext(ctx).
		Where("service_id = ? AND id = ?", serviceID, optionID).
		First(&opt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &opt, nil
}

func (r *ServiceRepository) CreateService(ctx context.Context, svc *domain.CatalogService) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *ServiceRepository) UpdateService(ctx context.Context, svc *domain.CatalogService) error {
	return r.db.WithContext(ctx).Save(svc).Error
}

func (r *ServiceRepository) CreateOption(ctx context.Context, opt *domain.ServiceOption) error {
	return r.db.WithContext(ctx).Create(opt).Error
}

func (r *ServiceRepository) UpdateOption(ctx context.Context, opt *domain.ServiceOption) error {
	return r.db.WithContext(ctx).Save(opt).Error
}

func (r *ServiceRepository) SetServiceActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.CatalogService{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}
