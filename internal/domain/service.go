package domain

import "time"

// CatalogService is an add-on service (catering, DJ, decoration)
// that clients can attach to a booking.
type CatalogService struct {
	ID        int64         `json:"id"`
	HostID    int64         `json:"host_id"`
	Name      LocalizedText `json:"name"`
	Icon      string        `json:"icon,omitempty"`
	IsActive  bool          `json:"is_active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Options []ServiceOption `json:"options,omitempty" gorm:"foreignKey:ServiceID"`
}

func (CatalogService) TableName() string { return "catalog_services" }

// ServiceOption is one independently priced flavor of a catalog service.
type ServiceOption struct {
	ID        int64         `json:"id"`
	ServiceID int64         `json:"service_id"`
	Name      LocalizedText `json:"name"`
	Price     Price         `json:"price"`
	IsActive  bool          `json:"is_active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
