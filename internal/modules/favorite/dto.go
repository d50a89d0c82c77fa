package favorite

import (
	"time"

	"venuespace/internal/domain"
)

// FavoriteResponse — ответ с информацией об избранном
type FavoriteResponse struct {
	ID        int64       `json:"id"`
	VenueID   int64       `json:"venue_id"`
	Venue     *VenueBrief `json:"venue,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// VenueBrief — краткая информация о площадке для списка избранного
type VenueBrief struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	City     string   `json:"city,omitempty"`
	District string   `json:"district,omitempty"`
	Rating   float64  `json:"rating"`
	Photos   []string `json:"photos"`
}

// FavoriteListResponse — ответ со списком избранного
type FavoriteListResponse struct {
	Favorites  []FavoriteResponse `json:"favorites"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	TotalPages int                `json:"total_pages"`
}

// CheckFavoriteResponse — ответ на проверку "в избранном ли"
type CheckFavoriteResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

// ToFavoriteResponse конвертирует domain.Favorite в API response
func ToFavoriteResponse(f *domain.Favorite, lang string) FavoriteResponse {
	resp := FavoriteResponse{
		ID:        f.ID,
		VenueID:   f.VenueID,
		CreatedAt: f.CreatedAt,
	}

	if f.Venue != nil {
		resp.Venue = &VenueBrief{
			ID:       f.Venue.ID,
			Name:     f.Venue.Name.Resolve(lang, ""),
			Address:  f.Venue.Address,
			City:     f.Venue.City,
			District: f.Venue.District,
			Rating:   f.Venue.Rating,
			Photos:   f.Venue.Photos,
		}
	}

	return resp
}

// ToFavoriteListResponse конвертирует список с пагинацией
func ToFavoriteListResponse(favorites []domain.Favorite, total int64, page, perPage int, lang string) FavoriteListResponse {
	items := make([]FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		items = append(items, ToFavoriteResponse(&favorites[i], lang))
	}

	totalPages := int(total) / perPage
	if int(total)%perPage > 0 {
		totalPages++
	}

	return FavoriteListResponse{
		Favorites:  items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}
