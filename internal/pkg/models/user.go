package models

import (
	"time"

	"github.com/google/uuid"
)

// Role names as stored in the user_roles join table
const (
	RoleDriver    = "driver"
	RolePassenger = "passenger"
)

// User represents a user in the system (driver, passenger, or both)
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FullName  string    `json:"fullname" db:"fullname"`
	Email     string    `json:"email" db:"email"`
	Roles     []string  `json:"roles"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsDriver reports whether the user holds the driver role.
func (u *User) IsDriver() bool {
	return u.hasRole(RoleDriver)
}

// IsPassenger reports whether the user holds the passenger role.
func (u *User) IsPassenger() bool {
	return u.hasRole(RolePassenger)
}

func (u *User) hasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Vehicle represents a vehicle registered by a driver
type Vehicle struct {
	ID        uuid.UUID    `json:"vehicle_id" db:"id"`
	UserID    uuid.UUID    `json:"user_id" db:"user_id"`
	Class     VehicleClass `json:"class" db:"class"`
	Plate     string       `json:"plate" db:"plate"`
	Seats     int          `json:"seats" db:"seats"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}
