package domain

import "time"

type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id" gorm:"index:idx_fav_user_venue,unique"`
	VenueID   int64     `json:"venue_id" gorm:"index:idx_fav_user_venue,unique"`
	CreatedAt time.Time `json:"created_at"`

	Venue *Venue `json:"venue,omitempty" gorm:"foreignKey:VenueID"`
}
