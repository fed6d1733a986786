package models

import "time"

// LocationSearch is one weather lookup kept in the rolling history.
type LocationSearch struct {
	ID        string         `json:"id" example:"6f1c7a8e-3b5d-4d0e-9a43-1b6f0f0d2c11"`
	Location  string         `json:"location" example:"kigali"`
	Timestamp time.Time      `json:"timestamp"`
	Result    WeatherSummary `json:"result"`
}

// IPSearch is one IP lookup kept in the rolling history.
type IPSearch struct {
	ID        string    `json:"id" example:"6f1c7a8e-3b5d-4d0e-9a43-1b6f0f0d2c11"`
	IP        string    `json:"ip" example:"8.8.8.8"`
	Timestamp time.Time `json:"timestamp"`
	Result    IPInfo    `json:"result"`
}

type WeatherStats struct {
	TotalSearches   int              `json:"totalSearches" example:"12"`
	UniqueLocations int              `json:"uniqueLocations" example:"4"`
	RecentSearches  []LocationSearch `json:"recentSearches"`
}

type IPStats struct {
	TotalSearches   int     `json:"totalSearches" example:"20"`
	ProxyCount      int     `json:"proxyCount" example:"2"`
	VPNCount        int     `json:"vpnCount" example:"3"`
	TorCount        int     `json:"torCount" example:"0"`
	SafeCount       int     `json:"safeCount" example:"15"`
	ProxyPercentage float64 `json:"proxyPercentage" example:"10"`
	VPNPercentage   float64 `json:"vpnPercentage" example:"15"`
	TorPercentage   float64 `json:"torPercentage" example:"0"`
	SafePercentage  float64 `json:"safePercentage" example:"75"`
}
