package models

// WeatherSummary is the weekly and monthly view of one location's forecast.
type WeatherSummary struct {
	Location        Location      `json:"location"`
	Provider        string        `json:"provider" example:"open-meteo"`
	Days            int           `json:"days" example:"16"`
	WeeklyAverages  PeriodAverage `json:"weekly_averages"`
	MonthlyAverages PeriodAverage `json:"monthly_averages"`
}

type MonthlyForecast struct {
	Location Location         `json:"location"`
	Provider string           `json:"provider" example:"open-meteo"`
	Weeks    []WeeklyForecast `json:"monthly_forecast"`
}

type AgricultureReport struct {
	Location Location    `json:"location"`
	Provider string      `json:"provider" example:"open-meteo"`
	Analysis Analysis    `json:"analysis"`
	CropInfo CropProfile `json:"crop_info"`
}

// SectionError describes why one section of a Report could not be produced.
type SectionError struct {
	Code    string   `json:"code" example:"unsupported_crop"`
	Message string   `json:"message" example:"crop \"wheat\" is not supported"`
	Options []string `json:"options,omitempty"`
}

// Report bundles every view of one location. Each section fails on its own.
type Report struct {
	Location    Location            `json:"location"`
	Provider    string              `json:"provider" example:"open-meteo"`
	Weather     *WeatherSummary     `json:"weather,omitempty"`
	Forecast    []WeeklyForecast    `json:"monthly_forecast,omitempty"`
	Agriculture *AgricultureSection `json:"agriculture,omitempty"`
}

type AgricultureSection struct {
	Analysis *Analysis     `json:"analysis,omitempty"`
	CropInfo *CropProfile  `json:"crop_info,omitempty"`
	Error    *SectionError `json:"error,omitempty"`
}
