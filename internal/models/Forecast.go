package models

import "fmt"

type Forecast struct {
	RepositoryName string        `json:"repository_name" example:"open-meteo"`
	Lat            float64       `json:"lat" example:"-1.9441"`
	Lon            float64       `json:"lon" example:"30.0619"`
	ForecastWindow int           `json:"forecast_window" example:"16"`
	ForecastData   []DailyRecord `json:"forecast_data"`
}

func (f *Forecast) RequestParams() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f days: %d", f.Lat, f.Lon, f.ForecastWindow)
}
