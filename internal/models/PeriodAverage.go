package models

// PeriodAverage summarises a window of daily records.
// TotalRainfall is only set for monthly windows.
type PeriodAverage struct {
	Temp              Temperature `json:"temp"`
	Humidity          float64     `json:"humidity" example:"68.5"`
	WindSpeed         float64     `json:"wind_speed" example:"3.1"`
	Precipitation     float64     `json:"precipitation" example:"0.38"`
	TotalRainfall     *float64    `json:"total_rainfall,omitempty" example:"84.6"`
	WeatherConditions string      `json:"weather_conditions" example:"Rain"`
	Days              int         `json:"days" example:"7"`
}

// WeeklyForecast is one 7-day bucket of a longer forecast.
type WeeklyForecast struct {
	WeekNumber int           `json:"week_number" example:"1"`
	StartDate  string        `json:"start_date" example:"Jul 25"`
	EndDate    string        `json:"end_date" example:"Jul 31"`
	Icon       string        `json:"icon" example:"🌧️"`
	Averages   PeriodAverage `json:"averages"`
}
