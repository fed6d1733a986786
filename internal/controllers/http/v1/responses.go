package http

import (
	"agri-weather/internal/models"
)

// ErrorResponse represents an error response
type ErrorResponse = models.Response

type LocationsResponse struct {
	Success   bool              `json:"success" example:"true"`
	Locations []models.Location `json:"locations"`
}

type CropsResponse struct {
	Success bool                 `json:"success" example:"true"`
	Crops   []models.CropProfile `json:"crops"`
}

// WeatherResponse carries the weekly and monthly averages for a location
type WeatherResponse struct {
	Success  bool   `json:"success" example:"true"`
	SearchID string `json:"search_id" example:"6f1c7a8e-3b5d-4d0e-9a43-1b6f0f0d2c11"`
	models.WeatherSummary
}

type ForecastResponse struct {
	Success bool `json:"success" example:"true"`
	models.MonthlyForecast
}

type AgricultureResponse struct {
	Success bool `json:"success" example:"true"`
	models.AgricultureReport
}

type ReportResponse struct {
	Success bool `json:"success" example:"true"`
	models.Report
}

type HistoryResponse struct {
	Success bool                    `json:"success" example:"true"`
	History []models.LocationSearch `json:"history"`
	Total   int                     `json:"total" example:"12"`
}

type StatsResponse struct {
	Success bool                `json:"success" example:"true"`
	Stats   models.WeatherStats `json:"stats"`
}

type IPLookupResponse struct {
	Success  bool          `json:"success" example:"true"`
	Data     models.IPInfo `json:"data"`
	SearchID string        `json:"searchId" example:"6f1c7a8e-3b5d-4d0e-9a43-1b6f0f0d2c11"`
}

type MyIPResponse struct {
	Success  bool          `json:"success" example:"true"`
	Data     models.IPInfo `json:"data"`
	ClientIP string        `json:"clientIP" example:"203.0.113.7"`
}

type IPHistoryResponse struct {
	Success bool              `json:"success" example:"true"`
	Data    []models.IPSearch `json:"data"`
	Total   int               `json:"total" example:"4"`
}

type IPStatsResponse struct {
	Success bool           `json:"success" example:"true"`
	Data    models.IPStats `json:"data"`
}
