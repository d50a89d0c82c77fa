package domain

import "time"

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleHost   UserRole = "host"
	RoleAdmin  UserRole = "admin"
)

type HostStatus string

const (
	HostPending  HostStatus = "pending"
	HostVerified HostStatus = "verified"
	HostRejected HostStatus = "rejected"
	HostBlocked  HostStatus = "blocked"
)

type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone,omitempty"`
	AvatarURL    string     `json:"avatar_url,omitempty"`
	HostStatus   HostStatus `json:"host_status,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CanManageVenues reports whether the user may create or edit venues.
func (u *User) CanManageVenues() bool {
	return u.Role == RoleHost && u.HostStatus == HostVerified
}
