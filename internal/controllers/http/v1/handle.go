package http

import (
	"github.com/gofiber/fiber/v2"

	"agri-weather/internal/services/agronomy"
)

// ListLocations godoc
// @Summary List locations
// @Description Locations a forecast can be requested for
// @Tags Weather
// @Produce json
// @Success 200 {object} LocationsResponse
// @Router /api/locations [get]
func (r *routes) handleLocations(c *fiber.Ctx) error {
	return c.JSON(LocationsResponse{
		Success:   true,
		Locations: r.weather.Locations(),
	})
}

// ListCrops godoc
// @Summary List crops
// @Description Supported crops with their optimal growing conditions
// @Tags Agriculture
// @Produce json
// @Success 200 {object} CropsResponse
// @Router /api/crops [get]
func (r *routes) handleCrops(c *fiber.Ctx) error {
	return c.JSON(CropsResponse{
		Success: true,
		Crops:   agronomy.CropProfiles(),
	})
}

// GetWeather godoc
// @Summary Get weather averages
// @Description Weekly and monthly averages of the daily forecast for a location. The search is recorded in the history.
// @Tags Weather
// @Produce json
// @Param location path string true "Location key" example(kigali)
// @Success 200 {object} WeatherResponse "Successful response"
// @Failure 404 {object} ErrorResponse "Unknown location"
// @Failure 502 {object} ErrorResponse "No provider returned data"
// @Router /api/weather/{location} [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/api/weather/kigali"
func (r *routes) handleWeather(c *fiber.Ctx) error {
	search, err := r.weather.Weather(c.Context(), c.Params("location"))
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(WeatherResponse{
		Success:        true,
		SearchID:       search.ID,
		WeatherSummary: search.Result,
	})
}

// GetForecast godoc
// @Summary Get weekly forecast
// @Description The daily forecast grouped into 7-day buckets
// @Tags Weather
// @Produce json
// @Param location path string true "Location key" example(kigali)
// @Success 200 {object} ForecastResponse
// @Failure 404 {object} ErrorResponse "Unknown location"
// @Failure 502 {object} ErrorResponse "No provider returned data"
// @Router /api/forecast/{location} [get]
func (r *routes) handleForecast(c *fiber.Ctx) error {
	forecast, err := r.weather.Forecast(c.Context(), c.Params("location"))
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(ForecastResponse{
		Success:         true,
		MonthlyForecast: forecast,
	})
}

// GetAgriculture godoc
// @Summary Analyse conditions for a crop
// @Description Classifies the forecast against a crop's optimal ranges and returns advice, alerts and a risk level
// @Tags Agriculture
// @Produce json
// @Param location path string true "Location key" example(kigali)
// @Param crop path string true "Crop key" example(maize)
// @Success 200 {object} AgricultureResponse
// @Failure 400 {object} ErrorResponse "Unsupported crop or insufficient data"
// @Failure 404 {object} ErrorResponse "Unknown location"
// @Failure 502 {object} ErrorResponse "No provider returned data"
// @Router /api/agriculture/{location}/{crop} [get]
func (r *routes) handleAgriculture(c *fiber.Ctx) error {
	report, err := r.weather.Agriculture(c.Context(), c.Params("location"), c.Params("crop"))
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(AgricultureResponse{
		Success:           true,
		AgricultureReport: report,
	})
}

// GetReport godoc
// @Summary Get a combined report
// @Description Weather averages, weekly forecast and, when a crop is given, the crop analysis from a single fetch.
// @Description A failing analysis is reported inside the agriculture section.
// @Tags Agriculture
// @Produce json
// @Param location path string true "Location key" example(kigali)
// @Param crop query string false "Crop key" example(beans)
// @Success 200 {object} ReportResponse
// @Failure 404 {object} ErrorResponse "Unknown location"
// @Failure 502 {object} ErrorResponse "No provider returned data"
// @Router /api/report/{location} [get]
func (r *routes) handleReport(c *fiber.Ctx) error {
	report, err := r.weather.Report(c.Context(), c.Params("location"), c.Query("crop"))
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(ReportResponse{
		Success: true,
		Report:  report,
	})
}

// GetHistory godoc
// @Summary Weather search history
// @Tags History
// @Produce json
// @Param limit query integer false "Maximum number of entries, newest first" minimum(1) example(10)
// @Success 200 {object} HistoryResponse
// @Router /api/history [get]
func (r *routes) handleHistory(c *fiber.Ctx) error {
	entries, total := r.weather.History(c.QueryInt("limit", 0))

	return c.JSON(HistoryResponse{
		Success: true,
		History: entries,
		Total:   total,
	})
}

// GetStats godoc
// @Summary Weather search statistics
// @Tags History
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /api/stats [get]
func (r *routes) handleStats(c *fiber.Ctx) error {
	return c.JSON(StatsResponse{
		Success: true,
		Stats:   r.weather.Stats(),
	})
}
