package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/minh-swinburne/ridelink/internal/pkg/middleware"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

// RegisterRoutes registers the ride lifecycle HTTP routes
func (h *RidesHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config) {
	group := e.Group("/rides", middleware.JWTAuthMiddleware(cfg.JWT))

	group.POST("", h.CreateRide)
	group.GET("/:rideID", h.GetRide)
	group.POST("/:rideID/start", h.StartRide)
	group.POST("/:rideID/complete", h.CompleteRide)
	group.POST("/:rideID/cancel", h.CancelRide)
}
