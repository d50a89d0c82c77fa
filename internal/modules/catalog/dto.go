package catalog

import "venuespace/internal/domain"

// ---------- VENUES ----------

type PriceRequest struct {
	Amount   float64 `json:"amount" validate:"gte=0"`
	Currency string  `json:"currency" validate:"required,len=3"`
	Type     string  `json:"type" validate:"omitempty,oneof=fixed perPerson hourly"`
}

type CreateVenueRequest struct {
	Name        domain.LocalizedText `json:"name" validate:"required"`
	Description domain.LocalizedText `json:"description,omitempty"`
	Address     string               `json:"address" validate:"required"`
	City        string               `json:"city" validate:"required"`
	District    string               `json:"district,omitempty"`
	VenueType   string               `json:"venue_type" validate:"required"`
	Capacity    int                  `json:"capacity" validate:"required,gt=0"`
	Price       PriceRequest         `json:"price" validate:"required"`
	Amenities   []string             `json:"amenities,omitempty"`
	Photos      []string             `json:"photos,omitempty"`
}

type UpdateVenueRequest struct {
	Name        domain.LocalizedText `json:"name,omitempty"`
	Description domain.LocalizedText `json:"description,omitempty"`
	Address     *string              `json:"address,omitempty"`
	City        *string              `json:"city,omitempty"`
	District    *string              `json:"district,omitempty"`
	VenueType   *string              `json:"venue_type,omitempty"`
	Capacity    *int                 `json:"capacity,omitempty"`
	Price       *PriceRequest        `json:"price,omitempty"`
	Amenities   *[]string            `json:"amenities,omitempty"`
	Photos      *[]string            `json:"photos,omitempty"`
}

type VenueListResponse struct {
	Venues  []domain.Venue `json:"venues"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

// ---------- ADD-ON SERVICES ----------

type CreateServiceRequest struct {
	Name domain.LocalizedText `json:"name" validate:"required"`
	Icon string               `json:"icon,omitempty"`
}

type CreateOptionRequest struct {
	Name  domain.LocalizedText `json:"name" validate:"required"`
	Price PriceRequest         `json:"price" validate:"required"`
}
