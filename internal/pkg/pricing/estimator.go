package pricing

import (
	"math"

	"github.com/minh-swinburne/ridelink/internal/pkg/apperrors"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
	"github.com/minh-swinburne/ridelink/internal/utils"
)

// Estimator computes distances, fares and time estimates for a ride. All
// methods are pure functions over the configured pricing parameters.
type Estimator struct {
	cfg models.PricingConfig
}

// NewEstimator creates an estimator from pricing configuration.
func NewEstimator(cfg models.PricingConfig) *Estimator {
	return &Estimator{cfg: cfg}
}

// Distance returns the great-circle distance between two coordinates in
// kilometers. Coordinates containing NaN or out-of-range values are rejected.
func (e *Estimator) Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	if !utils.ValidCoordinates(lat1, lon1) {
		return 0, apperrors.New(apperrors.KindInvalidRequest,
			"invalid origin coordinates (%f, %f)", lat1, lon1)
	}
	if !utils.ValidCoordinates(lat2, lon2) {
		return 0, apperrors.New(apperrors.KindInvalidRequest,
			"invalid destination coordinates (%f, %f)", lat2, lon2)
	}
	return utils.CalculateDistance(
		utils.GeoPoint{Latitude: lat1, Longitude: lon1},
		utils.GeoPoint{Latitude: lat2, Longitude: lon2},
	), nil
}

// Fare returns the fare for a distance: base fare plus per-km rate, clamped
// to the configured min/max. Monotonically non-decreasing in distance.
func (e *Estimator) Fare(distanceKm float64) float64 {
	fare := e.cfg.BaseFare + e.cfg.PerKmRate*distanceKm
	if e.cfg.MinFare > 0 {
		fare = math.Max(fare, e.cfg.MinFare)
	}
	if e.cfg.MaxFare > 0 {
		fare = math.Min(fare, e.cfg.MaxFare)
	}
	return fare
}

// PickupDelayMinutes estimates how long a driver needs to reach the pickup
// point. The fixed dispatch overhead dominates; distance adds a small term
// so longer trips get matched with slightly more slack.
func (e *Estimator) PickupDelayMinutes(distanceKm float64) float64 {
	return e.cfg.PickupDelayMin + distanceKm*0.2
}

// TravelTimeMinutes estimates the travel time for a distance at the
// configured average speed.
func (e *Estimator) TravelTimeMinutes(distanceKm float64) float64 {
	speed := e.cfg.AvgSpeedKmPerHr
	if speed <= 0 {
		speed = 30.0
	}
	return distanceKm / speed * 60.0
}

// FareInBounds reports whether a fare lies within the configured bounds.
func (e *Estimator) FareInBounds(fare float64) bool {
	if fare < 0 {
		return false
	}
	if e.cfg.MinFare > 0 && fare < e.cfg.MinFare {
		return false
	}
	if e.cfg.MaxFare > 0 && fare > e.cfg.MaxFare {
		return false
	}
	return true
}
