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

// UserRepo provides read access to the user directory: users, their roles,
// and their registered vehicles.
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetUser retrieves a user with their role memberships.
func (r *UserRepo) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, fullname, email, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "user %s not found", userID)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	roles, err := r.getRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Roles = roles

	return &user, nil
}

func (r *UserRepo) getRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `SELECT role FROM user_roles WHERE user_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user roles: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}

// GetVehicle retrieves a vehicle by ID.
func (r *UserRepo) GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
	query := `
		SELECT id, user_id, class, plate, seats, created_at
		FROM vehicles
		WHERE id = $1
	`

	var vehicle models.Vehicle
	err := r.db.QueryRowContext(ctx, query, vehicleID).Scan(
		&vehicle.ID,
		&vehicle.UserID,
		&vehicle.Class,
		&vehicle.Plate,
		&vehicle.Seats,
		&vehicle.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "vehicle %s not found", vehicleID)
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &vehicle, nil
}
