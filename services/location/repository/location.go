package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/minh-swinburne/ridelink/internal/pkg/models"
	"github.com/minh-swinburne/ridelink/internal/utils"
)

// LocationRepo provides sqlx-backed access to the locations table
type LocationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(cfg *models.Config, db *sqlx.DB) *LocationRepo {
	return &LocationRepo{
		cfg: cfg,
		db:  db,
	}
}

const locationColumns = `id, address, latitude, longitude, geohash, created_at`

// GetByCoordinates looks up a location by exact coordinate match. The match
// key is the full-precision geohash stored at creation, so identical
// coordinates always hit the same row.
func (r *LocationRepo) GetByCoordinates(ctx context.Context, latitude, longitude float64) (*models.Location, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM locations
		WHERE geohash = $1
		ORDER BY created_at
		LIMIT 1
	`, locationColumns)

	return r.getOne(ctx, query, utils.CoordinateKey(latitude, longitude))
}

// GetByAddress looks up a location by exact address match.
func (r *LocationRepo) GetByAddress(ctx context.Context, address string) (*models.Location, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM locations
		WHERE address = $1
		ORDER BY created_at
		LIMIT 1
	`, locationColumns)

	return r.getOne(ctx, query, address)
}

func (r *LocationRepo) getOne(ctx context.Context, query string, arg interface{}) (*models.Location, error) {
	var loc models.Location
	var lat, lon sql.NullFloat64

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&loc.ID,
		&loc.Address,
		&lat,
		&lon,
		&loc.Geohash,
		&loc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // no match
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	if lat.Valid {
		loc.Latitude = &lat.Float64
	}
	if lon.Valid {
		loc.Longitude = &lon.Float64
	}

	return &loc, nil
}

// CreateLocation inserts a new location row.
func (r *LocationRepo) CreateLocation(ctx context.Context, location *models.Location) error {
	query := `
		INSERT INTO locations (id, address, latitude, longitude, geohash, created_at)
		VALUES (:id, :address, :latitude, :longitude, :geohash, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, location); err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}

	return nil
}
