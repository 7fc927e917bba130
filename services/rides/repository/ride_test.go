package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minh-swinburne/ridelink/internal/pkg/apperrors"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func testRide() (*models.Ride, *models.Payment) {
	now := time.Now()
	ride := &models.Ride{
		ID:                    uuid.New(),
		PassengerID:           uuid.New(),
		RideType:              models.RideTypeStandard,
		VehicleClass:          models.VehicleClassSmallCar,
		Status:                models.RideStatusPending,
		PickupLocationID:      uuid.New(),
		DestinationLocationID: uuid.New(),
		Fare:                  18.34,
		Version:               1,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	payment := &models.Payment{
		ID:        uuid.New(),
		RideID:    ride.ID,
		Amount:    ride.Fare,
		Method:    "card",
		Status:    models.PaymentStatusPending,
		CreatedAt: now,
	}
	return ride, payment
}

func TestCreateRideWithPayment_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)
	ride, payment := testRide()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CreateRideWithPayment(context.Background(), ride, payment)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRideWithPayment_RideInsertFails(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)
	ride, payment := testRide()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	err := repo.CreateRideWithPayment(context.Background(), ride, payment)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRideWithPayment_PaymentInsertFails(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)
	ride, payment := testRide()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	// the ride insert must not survive the failed payment insert
	err := repo.CreateRideWithPayment(context.Background(), ride, payment)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

var rideRows = []string{
	"id", "passenger_id", "driver_id", "vehicle_id", "ride_type", "vehicle_class",
	"status", "pickup_location_id", "destination_location_id",
	"pickup_eta", "pickup_ata", "arrival_eta", "arrival_ata",
	"fare", "notes", "version", "created_at", "updated_at",
}

func TestGetRide_Pending(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	passengerID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM rides WHERE id = $1")).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows(rideRows).AddRow(
			rideID.String(), passengerID.String(), nil, nil, "standard", "small_car",
			"pending", uuid.New().String(), uuid.New().String(),
			nil, nil, nil, nil,
			18.34, "", 1, now, now,
		))

	ride, err := repo.GetRide(context.Background(), rideID)

	require.NoError(t, err)
	assert.Equal(t, rideID, ride.ID)
	assert.Equal(t, passengerID, ride.PassengerID)
	assert.Nil(t, ride.DriverID)
	assert.Nil(t, ride.VehicleID)
	assert.Nil(t, ride.PickupETA)
	assert.Equal(t, models.RideStatusPending, ride.Status)
	assert.Equal(t, int64(1), ride.Version)
}

func TestGetRide_Matched(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	driverID := uuid.New()
	vehicleID := uuid.New()
	now := time.Now()
	eta := now.Add(10 * time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta("FROM rides WHERE id = $1")).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows(rideRows).AddRow(
			rideID.String(), uuid.New().String(), driverID.String(), vehicleID.String(),
			"shared", "motorbike",
			"picking", uuid.New().String(), uuid.New().String(),
			eta, nil, nil, nil,
			18.34, "ring the bell", 2, now, now,
		))

	ride, err := repo.GetRide(context.Background(), rideID)

	require.NoError(t, err)
	assert.Equal(t, driverID, *ride.DriverID)
	assert.Equal(t, vehicleID, *ride.VehicleID)
	assert.Equal(t, models.RideStatusPicking, ride.Status)
	assert.NotNil(t, ride.PickupETA)
	assert.Equal(t, "ring the bell", ride.Notes)
}

func TestGetRide_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM rides WHERE id = $1")).
		WithArgs(rideID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetRide(context.Background(), rideID)

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestUpdateRide_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	ride, _ := testRide()
	ride.Status = models.RideStatusCancelled
	ride.Version = 2

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRide(context.Background(), ride)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), ride.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRide_StaleVersion(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRideRepository(&models.Config{}, db)

	ride, _ := testRide()
	ride.Version = 1

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRide(context.Background(), ride)

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConcurrencyConflict))
	assert.Equal(t, int64(1), ride.Version)
}
