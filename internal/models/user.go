package models

import "time"

// User role values.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User account status values.
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

// User represents a registered member of the board.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nickname  string    `gorm:"size:64;not null" json:"nickname"`
	Email     string    `gorm:"size:160;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      string    `gorm:"size:16;not null;default:user" json:"role"`
	Status    string    `gorm:"size:16;not null;default:active" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsSuspended reports whether the account has been suspended by a moderator.
func (u User) IsSuspended() bool {
	return u.Status == UserStatusSuspended
}
