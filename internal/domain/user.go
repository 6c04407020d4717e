package domain

import "time"

type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name" validate:"required"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user acts in the given role.
func (u *User) HasRole(r Role) bool {
	return u.Role == r
}
