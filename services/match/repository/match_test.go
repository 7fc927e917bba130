package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minh-swinburne/ridelink/internal/pkg/apperrors"
	"github.com/minh-swinburne/ridelink/internal/pkg/database"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func setupMockRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return &database.RedisClient{Client: client}, mr
}

func boundRide() *models.Ride {
	driverID := uuid.New()
	vehicleID := uuid.New()
	eta := time.Now().Add(10 * time.Minute)
	return &models.Ride{
		ID:          uuid.New(),
		PassengerID: uuid.New(),
		DriverID:    &driverID,
		VehicleID:   &vehicleID,
		RideType:    models.RideTypeStandard,
		Status:      models.RideStatusPicking,
		PickupETA:   &eta,
		Version:     1,
		UpdatedAt:   time.Now(),
	}
}

func TestBindDriver_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewMatchRepository(&models.Config{}, db, redisClient)
	ride := boundRide()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM rides")).
		WithArgs(*ride.DriverID, ride.ID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.BindDriver(context.Background(), ride, 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), ride.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBindDriver_StandardDriverBusy(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewMatchRepository(&models.Config{}, db, redisClient)
	ride := boundRide()

	mock.ExpectBegin()
	// one other active ride already exceeds a standard ride's allowance
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM rides")).
		WithArgs(*ride.DriverID, ride.ID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.BindDriver(context.Background(), ride, 0)

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindDriverAlreadyInRides))
	assert.Equal(t, int64(1), ride.Version)
}

func TestBindDriver_SharedAtCapacityAllowed(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewMatchRepository(&models.Config{}, db, redisClient)
	ride := boundRide()
	ride.RideType = models.RideTypeShared

	mock.ExpectBegin()
	// three other active shared rides still fit under the allowance of 3
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM rides")).
		WithArgs(*ride.DriverID, ride.ID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.BindDriver(context.Background(), ride, 3)

	assert.NoError(t, err)
}

func TestBindDriver_SharedOverCapacity(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewMatchRepository(&models.Config{}, db, redisClient)
	ride := boundRide()
	ride.RideType = models.RideTypeShared

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM rides")).
		WithArgs(*ride.DriverID, ride.ID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectRollback()

	err := repo.BindDriver(context.Background(), ride, 3)

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindDriverAlreadyInRides))
}

func TestBindDriver_RideNoLongerPending(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewMatchRepository(&models.Config{}, db, redisClient)
	ride := boundRide()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM rides")).
		WithArgs(*ride.DriverID, ride.ID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// a competing match already moved the ride out of pending
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.BindDriver(context.Background(), ride, 0)

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConcurrencyConflict))
	assert.Equal(t, int64(1), ride.Version)
}

func TestBindDriver_NoBindingPrepared(t *testing.T) {
	db, _ := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewMatchRepository(&models.Config{}, db, redisClient)
	ride := &models.Ride{ID: uuid.New(), Status: models.RideStatusPending}

	err := repo.BindDriver(context.Background(), ride, 0)

	assert.Error(t, err)
}

func TestMatchLock_AcquireAndRelease(t *testing.T) {
	db, _ := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewMatchRepository(&models.Config{}, db, redisClient)
	rideID := uuid.New()
	ctx := context.Background()

	acquired, err := repo.AcquireMatchLock(ctx, rideID)
	require.NoError(t, err)
	assert.True(t, acquired)

	// a second acquire for the same ride fails while the lock is held
	acquired, err = repo.AcquireMatchLock(ctx, rideID)
	require.NoError(t, err)
	assert.False(t, acquired)

	// a different ride is unaffected
	acquired, err = repo.AcquireMatchLock(ctx, uuid.New())
	require.NoError(t, err)
	assert.True(t, acquired)

	require.NoError(t, repo.ReleaseMatchLock(ctx, rideID))

	acquired, err = repo.AcquireMatchLock(ctx, rideID)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestMatchLock_ExpiresAfterTTL(t *testing.T) {
	db, _ := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	cfg := &models.Config{Rides: models.RidesConfig{MatchLockTTL: 10}}
	repo := NewMatchRepository(cfg, db, redisClient)
	rideID := uuid.New()
	ctx := context.Background()

	acquired, err := repo.AcquireMatchLock(ctx, rideID)
	require.NoError(t, err)
	assert.True(t, acquired)

	mr.FastForward(11 * time.Second)

	acquired, err = repo.AcquireMatchLock(ctx, rideID)
	require.NoError(t, err)
	assert.True(t, acquired)
}
