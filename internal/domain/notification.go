package domain

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Notification type constants
const (
	NotifyBookingCreated   = "booking.created"
	NotifyBookingConfirmed = "booking.confirmed"
	NotifyBookingCancelled = "booking.cancelled"
	NotifyBookingCompleted = "booking.completed"
	NotifyOptionRejected   = "booking.option_rejected"
)

// NotificationData holds structured notification metadata.
type NotificationData struct {
	BookingID *int64                 `json:"booking_id,omitempty"`
	VenueID   *int64                 `json:"venue_id,omitempty"`
	OptionID  *int64                 `json:"option_id,omitempty"`
	Extra     map[string]interface{} `json:"extra,omitempty"`
}

// Encode serializes the metadata for the JSON column.
func (nd *NotificationData) Encode() string {
	data, _ := json.Marshal(nd)
	return string(data)
}

// Notification represents a user notification record.
type Notification struct {
	ID        int64        `gorm:"primaryKey" json:"id"`
	UserID    int64        `gorm:"index" json:"user_id"`
	Type      string       `gorm:"index" json:"type"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	Data      string       `gorm:"type:json" json:"data"`
	ReadAt    sql.NullTime `json:"read_at"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

// MarkAsRead marks a notification as read.
func (n *Notification) MarkAsRead() {
	n.ReadAt = sql.NullTime{Time: time.Now(), Valid: true}
}

// IsRead returns true if the notification has been read.
func (n *Notification) IsRead() bool {
	return n.ReadAt.Valid
}

func (n *Notification) TableName() string { return "notifications" }
