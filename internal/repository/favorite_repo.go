package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"venuespace/internal/domain"
)

var (
	ErrAlreadyFavorite = errors.New("venue already in favorites")
	ErrFavoriteMissing = errors.New("favorite not found")
)

// FavoriteRepository определяет методы для работы с избранным
type FavoriteRepository interface {
	Add(ctx context.Context, userID, venueID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, venueID int64) error
	GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Favorite, int64, error)
	Exists(ctx context.Context, userID, venueID int64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, userID, venueID int64) (*domain.Favorite, error) {
	exists, err := r.Exists(ctx, userID, venueID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorite
	}

	favorite := &domain.Favorite{
		UserID:  userID,
		VenueID: venueID,
	}
	// Гонка между Exists и Create упирается в уникальный индекс
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).Preload("Venue").First(favorite, favorite.ID).Error; err != nil {
		return nil, err
	}
	return favorite, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, venueID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND venue_id = ?", userID, venueID).
		Delete(&domain.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteMissing
	}
	return nil
}

func (r *favoriteRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Favorite, int64, error) {
	var favorites []domain.Favorite
	var total int64

	q := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ?", userID)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Venue").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&favorites).Error
	return favorites, total, err
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, venueID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ? AND venue_id = ?", userID, venueID).
		Count(&count).Error
	return count > 0, err
}
