package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"venuespace/internal/domain"
)

type VenueFilters struct {
	City        string
	VenueType   string
	MinCapacity int
	MaxPrice    float64
	Limit       int
	Offset      int
}

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// GetAll returns active venues matching the filters plus the total
// count for pagination.
func (r *VenueRepository) GetAll(ctx context.Context, f VenueFilters) ([]domain.Venue, int64, error) {
	var venues []domain.Venue
	var total int64

	q := r.db.WithContext(ctx).
		Model(&domain.Venue{}).
		Where("is_active = ? AND deleted_at IS NULL", true)

	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.VenueType != "" {
		q = q.Where("venue_type = ?", f.VenueType)
	}
	if f.MinCapacity > 0 {
		q = q.Where("capacity >= ?", f.MinCapacity)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}

	// Price хранится в JSON колонке, сумма недоступна SQL на обоих
	// драйверах. При MaxPrice выбираем всё подходящее и фильтруем до
	// подсчёта и пагинации, иначе total разъедется со страницами.
	if f.MaxPrice > 0 {
		var all []domain.Venue
		if err := q.Find(&all).Error; err != nil {
			return nil, 0, err
		}

		filtered := make([]domain.Venue, 0, len(all))
		for _, v := range all {
			if v.Price.Amount <= f.MaxPrice {
				filtered = append(filtered, v)
			}
		}

		total = int64(len(filtered))
		start := f.Offset
		if start > len(filtered) {
			start = len(filtered)
		}
		end := start + limit
		if end > len(filtered) {
			end = len(filtered)
		}
		return filtered[start:end], total, nil
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Limit(limit).Offset(f.Offset).Find(&venues).Error; err != nil {
		return nil, 0, err
	}

	return venues, total, nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	var venue domain.Venue
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&venue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *VenueRepository) GetByHostID(ctx context.Context, hostID int64) ([]domain.Venue, error) {
	var venues []domain.Venue
	err := r.db.WithContext(ctx).
		Where("host_id = ? AND deleted_at IS NULL", hostID).
		Order("created_at DESC").
		Find(&venues).Error
	return venues, err
}

func (r *VenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *VenueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	return r.db.WithContext(ctx).Save(venue).Error
}

func (r *VenueRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.Venue{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

// SoftDelete hides the venue from all reads without losing booking
// history that references it.
func (r *VenueRepository) SoftDelete(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&domain.Venue{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": &now, "is_active": false}).Error
}
