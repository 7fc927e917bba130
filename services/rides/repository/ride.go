package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/minh-swinburne/ridelink/internal/pkg/apperrors"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

// RideRepo provides sqlx-backed access to the rides and payments tables
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRideWithPayment inserts the ride and its pending payment inside one
// transaction. Readers never observe a ride without its payment.
func (r *RideRepo) CreateRideWithPayment(ctx context.Context, ride *models.Ride, payment *models.Payment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rideQuery := `
		INSERT INTO rides (
			id, passenger_id, driver_id, vehicle_id, ride_type, vehicle_class,
			status, pickup_location_id, destination_location_id,
			pickup_eta, pickup_ata, arrival_eta, arrival_ata,
			fare, notes, version, created_at, updated_at
		) VALUES (
			:id, :passenger_id, :driver_id, :vehicle_id, :ride_type, :vehicle_class,
			:status, :pickup_location_id, :destination_location_id,
			:pickup_eta, :pickup_ata, :arrival_eta, :arrival_ata,
			:fare, :notes, :version, :created_at, :updated_at
		)
	`
	if _, err = tx.NamedExecContext(ctx, rideQuery, ride); err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}

	paymentQuery := `
		INSERT INTO payments (id, ride_id, amount, method, status, created_at)
		VALUES (:id, :ride_id, :amount, :method, :status, :created_at)
	`
	if _, err = tx.NamedExecContext(ctx, paymentQuery, payment); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

const rideColumns = `
	id, passenger_id, driver_id, vehicle_id, ride_type, vehicle_class,
	status, pickup_location_id, destination_location_id,
	pickup_eta, pickup_ata, arrival_eta, arrival_ata,
	fare, notes, version, created_at, updated_at
`

// GetRide retrieves a ride by ID.
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := fmt.Sprintf(`SELECT %s FROM rides WHERE id = $1`, rideColumns)
	return scanRide(r.db.QueryRowContext(ctx, query, rideID), rideID)
}

// UpdateRide persists ride mutations guarded by the ride's version. A stale
// version means a competing writer won; the caller gets a conflict and the
// row is untouched.
func (r *RideRepo) UpdateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		UPDATE rides SET
			driver_id = $1, vehicle_id = $2, status = $3,
			pickup_eta = $4, pickup_ata = $5, arrival_eta = $6, arrival_ata = $7,
			notes = $8, version = version + 1, updated_at = $9
		WHERE id = $10 AND version = $11
	`

	result, err := r.db.ExecContext(ctx, query,
		ride.DriverID,
		ride.VehicleID,
		ride.Status,
		ride.PickupETA,
		ride.PickupATA,
		ride.ArrivalETA,
		ride.ArrivalATA,
		ride.Notes,
		ride.UpdatedAt,
		ride.ID,
		ride.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update ride: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindConcurrencyConflict,
			"ride %s was modified concurrently", ride.ID)
	}

	ride.Version++
	return nil
}

// rowScanner covers *sql.Row and *sqlx.Row
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRide(row rowScanner, rideID uuid.UUID) (*models.Ride, error) {
	ride := &models.Ride{}
	var driverID, vehicleID sql.NullString
	var pickupETA, pickupATA, arrivalETA, arrivalATA sql.NullTime

	err := row.Scan(
		&ride.ID,
		&ride.PassengerID,
		&driverID,
		&vehicleID,
		&ride.RideType,
		&ride.VehicleClass,
		&ride.Status,
		&ride.PickupLocationID,
		&ride.DestinationLocationID,
		&pickupETA,
		&pickupATA,
		&arrivalETA,
		&arrivalATA,
		&ride.Fare,
		&ride.Notes,
		&ride.Version,
		&ride.CreatedAt,
		&ride.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "ride %s not found", rideID)
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	if driverID.Valid {
		id, err := uuid.Parse(driverID.String)
		if err != nil {
			return nil, fmt.Errorf("malformed driver id on ride %s: %w", rideID, err)
		}
		ride.DriverID = &id
	}
	if vehicleID.Valid {
		id, err := uuid.Parse(vehicleID.String)
		if err != nil {
			return nil, fmt.Errorf("malformed vehicle id on ride %s: %w", rideID, err)
		}
		ride.VehicleID = &id
	}
	if pickupETA.Valid {
		ride.PickupETA = &pickupETA.Time
	}
	if pickupATA.Valid {
		ride.PickupATA = &pickupATA.Time
	}
	if arrivalETA.Valid {
		ride.ArrivalETA = &arrivalETA.Time
	}
	if arrivalATA.Valid {
		ride.ArrivalATA = &arrivalATA.Time
	}

	return ride, nil
}
