package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/minh-swinburne/ridelink/internal/pkg/middleware"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
	"github.com/minh-swinburne/ridelink/internal/utils"
	"github.com/minh-swinburne/ridelink/services/rides"
)

// RidesHandler handles HTTP requests for the ride lifecycle
type RidesHandler struct {
	ridesUC rides.RideUC
}

// NewRidesHandler creates a new rides HTTP handler
func NewRidesHandler(ridesUC rides.RideUC) *RidesHandler {
	return &RidesHandler{ridesUC: ridesUC}
}

// CreateRide handles POST /rides. The passenger is taken from the caller's
// token, never from the body.
func (h *RidesHandler) CreateRide(c echo.Context) error {
	var req models.RideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	req.PassengerID = userID

	ride, err := h.ridesUC.CreateRide(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "ride created", ride)
}

// GetRide handles GET /rides/:rideID
func (h *RidesHandler) GetRide(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	ride, err := h.ridesUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", ride)
}

// StartRide handles POST /rides/:rideID/start
func (h *RidesHandler) StartRide(c echo.Context) error {
	return h.progress(c, h.ridesUC.StartRide, "ride started")
}

// CompleteRide handles POST /rides/:rideID/complete
func (h *RidesHandler) CompleteRide(c echo.Context) error {
	return h.progress(c, h.ridesUC.CompleteRide, "ride completed")
}

// CancelRide handles POST /rides/:rideID/cancel
func (h *RidesHandler) CancelRide(c echo.Context) error {
	return h.progress(c, h.ridesUC.CancelRide, "ride cancelled")
}

func (h *RidesHandler) progress(
	c echo.Context,
	op func(ctx context.Context, rideID, userID uuid.UUID) (*models.Ride, error),
	message string,
) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	ride, err := op(c.Request().Context(), rideID, userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, message, ride)
}
