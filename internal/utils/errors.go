package utils

import (
	"github.com/labstack/echo/v4"

	"github.com/minh-swinburne/ridelink/internal/pkg/apperrors"
)

// AppErrorResponse maps an application error kind to the matching HTTP
// response.
func AppErrorResponse(c echo.Context, err error) error {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		return NotFoundResponse(c, err.Error())
	case apperrors.KindInvalidRequest:
		return BadRequestResponse(c, err.Error())
	case apperrors.KindInvalidRoleOrOwnership:
		return ForbiddenResponse(c, err.Error())
	case apperrors.KindDriverAlreadyInRides, apperrors.KindConcurrencyConflict:
		return ConflictResponse(c, err.Error())
	default:
		return InternalServerErrorResponse(c, err.Error())
	}
}
