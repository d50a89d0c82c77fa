package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type VenueType string

const (
	VenueBanquetHall VenueType = "banquet_hall"
	VenueConference  VenueType = "conference"
	VenueOutdoor     VenueType = "outdoor"
	VenueRestaurant  VenueType = "restaurant"
	VenuePhotoStudio VenueType = "photo_studio"
)

func ParseVenueType(s string) (VenueType, error) {
	switch VenueType(s) {
	case VenueBanquetHall, VenueConference, VenueOutdoor, VenueRestaurant, VenuePhotoStudio:
		return VenueType(s), nil
	}
	return "", fmt.Errorf("unknown venue type %q", s)
}

// StringList is a JSON-encoded list column (photos, amenities).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

func (StringList) GormDataType() string { return "json" }

type Venue struct {
	ID           int64         `json:"id"`
	HostID       int64         `json:"host_id"`
	Name         LocalizedText `json:"name"`
	Description  LocalizedText `json:"description,omitempty"`
	Address      string        `json:"address"`
	City         string        `json:"city"`
	District     string        `json:"district,omitempty"`
	VenueType    VenueType     `json:"venue_type"`
	Capacity     int           `json:"capacity" validate:"gt=0"`
	Price        Price         `json:"price"`
	Amenities    StringList    `json:"amenities,omitempty"`
	Photos       StringList    `json:"photos,omitempty"`
	Rating       float64       `json:"rating"`
	TotalReviews int           `json:"total_reviews"`
	IsActive     bool          `json:"is_active"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	DeletedAt    *time.Time    `json:"-"`
}
