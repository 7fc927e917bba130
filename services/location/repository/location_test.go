package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minh-swinburne/ridelink/internal/pkg/models"
	"github.com/minh-swinburne/ridelink/internal/utils"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

var locationRows = []string{"id", "address", "latitude", "longitude", "geohash", "created_at"}

func TestGetByCoordinates_Found(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLocationRepository(&models.Config{}, db)

	locationID := uuid.New()
	key := utils.CoordinateKey(45.0, -93.0)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE geohash = $1")).
		WithArgs(key).
		WillReturnRows(sqlmock.NewRows(locationRows).AddRow(
			locationID.String(), "123 Main St", 45.0, -93.0, key, time.Now(),
		))

	loc, err := repo.GetByCoordinates(context.Background(), 45.0, -93.0)

	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, locationID, loc.ID)
	assert.Equal(t, 45.0, *loc.Latitude)
	assert.Equal(t, -93.0, *loc.Longitude)
	assert.Equal(t, key, loc.Geohash)
}

func TestGetByCoordinates_NoMatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLocationRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE geohash = $1")).
		WillReturnRows(sqlmock.NewRows(locationRows))

	loc, err := repo.GetByCoordinates(context.Background(), 45.0, -93.0)

	assert.NoError(t, err)
	assert.Nil(t, loc)
}

func TestGetByAddress_Found(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLocationRepository(&models.Config{}, db)

	locationID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE address = $1")).
		WithArgs("123 Main St").
		WillReturnRows(sqlmock.NewRows(locationRows).AddRow(
			locationID.String(), "123 Main St", 45.0, -93.0,
			utils.CoordinateKey(45.0, -93.0), time.Now(),
		))

	loc, err := repo.GetByAddress(context.Background(), "123 Main St")

	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, locationID, loc.ID)
}

func TestGetByAddress_NoMatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLocationRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE address = $1")).
		WithArgs("nowhere").
		WillReturnRows(sqlmock.NewRows(locationRows))

	loc, err := repo.GetByAddress(context.Background(), "nowhere")

	assert.NoError(t, err)
	assert.Nil(t, loc)
}

func TestGetByAddress_NullCoordinates(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLocationRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE address = $1")).
		WithArgs("123 Main St").
		WillReturnRows(sqlmock.NewRows(locationRows).AddRow(
			uuid.New().String(), "123 Main St", nil, nil, "", time.Now(),
		))

	loc, err := repo.GetByAddress(context.Background(), "123 Main St")

	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Nil(t, loc.Latitude)
	assert.Nil(t, loc.Longitude)
	assert.False(t, loc.HasCoordinates())
}

func TestCreateLocation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLocationRepository(&models.Config{}, db)

	lat, lon := 45.0, -93.0
	loc := &models.Location{
		ID:        uuid.New(),
		Address:   "123 Main St",
		Latitude:  &lat,
		Longitude: &lon,
		Geohash:   utils.CoordinateKey(lat, lon),
		CreatedAt: time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO locations")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateLocation(context.Background(), loc)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLocation_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLocationRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO locations")).
		WillReturnError(errors.New("insert failed"))

	err := repo.CreateLocation(context.Background(), &models.Location{ID: uuid.New()})

	assert.Error(t, err)
}
