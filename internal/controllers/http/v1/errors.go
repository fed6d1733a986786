package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"agri-weather/internal/repositories"
	"agri-weather/internal/services/agronomy"
	"agri-weather/internal/services/iplookup"
	"agri-weather/internal/services/weather"
)

// fail maps a service error onto a status code and the failure envelope.
func (r *routes) fail(c *fiber.Ctx, err error) error {
	status, response := errorResponse(err)

	fields := map[string]any{
		"path":   c.Path(),
		"status": status,
	}
	if status >= fiber.StatusInternalServerError {
		r.l.Error(err, fields)
	} else {
		fields["err"] = err.Error()
		r.l.Debug("request rejected", fields)
	}

	return c.Status(status).JSON(response)
}

func errorResponse(err error) (int, ErrorResponse) {
	var (
		locErr  *weather.UnknownLocationError
		cropErr *agronomy.UnsupportedCropError
	)

	switch {
	case errors.As(err, &locErr):
		return fiber.StatusNotFound, ErrorResponse{
			Error:              "Location not found",
			Message:            locErr.Error(),
			AvailableLocations: locErr.Available,
		}
	case errors.As(err, &cropErr):
		return fiber.StatusBadRequest, ErrorResponse{
			Error:          "Unsupported crop",
			Message:        cropErr.Error(),
			SupportedCrops: cropErr.Supported,
		}
	case errors.Is(err, agronomy.ErrInsufficientData):
		return fiber.StatusBadRequest, ErrorResponse{
			Error:   "Insufficient data",
			Message: err.Error(),
		}
	case errors.Is(err, iplookup.ErrInvalidIP):
		return fiber.StatusBadRequest, ErrorResponse{
			Error:   "Invalid IP address",
			Message: err.Error(),
		}
	case errors.Is(err, repositories.ErrLookupFailed):
		return fiber.StatusNotFound, ErrorResponse{
			Error:   "IP lookup failed",
			Message: err.Error(),
		}
	case errors.Is(err, weather.ErrNoProviderData):
		return fiber.StatusBadGateway, ErrorResponse{
			Error:   "Weather data unavailable",
			Message: "Failed to fetch weather data",
		}
	default:
		return fiber.StatusBadGateway, ErrorResponse{
			Error:   "Upstream request failed",
			Message: err.Error(),
		}
	}
}
