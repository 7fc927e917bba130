package repository

import (
	"context"
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

func TestGetUser_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(&models.Config{}, db)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "fullname", "email", "is_active", "created_at", "updated_at"},
		).AddRow(userID.String(), "Jordan Lee", "jordan@example.com", true, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_roles")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).
			AddRow(models.RoleDriver).
			AddRow(models.RolePassenger))

	user, err := repo.GetUser(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "Jordan Lee", user.FullName)
	assert.True(t, user.IsDriver())
	assert.True(t, user.IsPassenger())
}

func TestGetUser_NoRoles(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(&models.Config{}, db)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "fullname", "email", "is_active", "created_at", "updated_at"},
		).AddRow(userID.String(), "Jordan Lee", "jordan@example.com", true, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_roles")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"role"}))

	user, err := repo.GetUser(context.Background(), userID)

	require.NoError(t, err)
	assert.False(t, user.IsDriver())
	assert.False(t, user.IsPassenger())
}

func TestGetUser_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(&models.Config{}, db)

	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "fullname", "email", "is_active", "created_at", "updated_at"},
		))

	_, err := repo.GetUser(context.Background(), userID)

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestGetVehicle_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(&models.Config{}, db)

	vehicleID := uuid.New()
	ownerID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM vehicles")).
		WithArgs(vehicleID).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "class", "plate", "seats", "created_at"},
		).AddRow(vehicleID.String(), ownerID.String(), "small_car", "B 1234 XYZ", 4, time.Now()))

	vehicle, err := repo.GetVehicle(context.Background(), vehicleID)

	require.NoError(t, err)
	assert.Equal(t, vehicleID, vehicle.ID)
	assert.Equal(t, ownerID, vehicle.UserID)
	assert.Equal(t, models.VehicleClassSmallCar, vehicle.Class)
	assert.Equal(t, 4, vehicle.Seats)
}

func TestGetVehicle_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(&models.Config{}, db)

	vehicleID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM vehicles")).
		WithArgs(vehicleID).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "class", "plate", "seats", "created_at"},
		))

	_, err := repo.GetVehicle(context.Background(), vehicleID)

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
