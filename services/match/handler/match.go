package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/minh-swinburne/ridelink/internal/pkg/middleware"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
	"github.com/minh-swinburne/ridelink/internal/utils"
	"github.com/minh-swinburne/ridelink/services/match"
)

// MatchHandler handles HTTP requests for driver/vehicle matching
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{matchUC: matchUC}
}

type matchRequestBody struct {
	DriverID  uuid.UUID  `json:"driver_id"`
	VehicleID uuid.UUID  `json:"vehicle_id"`
	PickupETA *time.Time `json:"pickup_eta,omitempty"`
}

// MatchRide handles POST /rides/:rideID/match
func (h *MatchHandler) MatchRide(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	var body matchRequestBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if body.DriverID == uuid.Nil || body.VehicleID == uuid.Nil {
		return utils.BadRequestResponse(c, "driver_id and vehicle_id are required")
	}

	ride, err := h.matchUC.MatchRide(c.Request().Context(), models.MatchRequest{
		RideID:    rideID,
		DriverID:  body.DriverID,
		VehicleID: body.VehicleID,
		PickupETA: body.PickupETA,
	})
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "ride matched", ride)
}

// RegisterRoutes registers the matching HTTP routes
func (h *MatchHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config) {
	group := e.Group("/rides", middleware.JWTAuthMiddleware(cfg.JWT))
	group.POST("/:rideID/match", h.MatchRide)
}
