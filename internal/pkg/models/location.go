package models

import (
	"time"

	"github.com/google/uuid"
)

// Location represents a stored pickup or destination point. Coordinates are
// optional; a location created from a free-text address keeps whatever the
// geocoder returned.
type Location struct {
	ID        uuid.UUID `json:"location_id" db:"id"`
	Address   string    `json:"address" db:"address"`
	Latitude  *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64  `json:"longitude,omitempty" db:"longitude"`
	Geohash   string    `json:"geohash,omitempty" db:"geohash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// HasCoordinates reports whether the location carries usable coordinates.
func (l *Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// LocationRequest is the input for resolving or creating a location
type LocationRequest struct {
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}
