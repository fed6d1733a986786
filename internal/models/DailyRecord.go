package models

import "time"

// Temperature holds a day/min/max triple in °C.
type Temperature struct {
	Day float64 `json:"day" example:"24.1"`
	Min float64 `json:"min" example:"16.3"`
	Max float64 `json:"max" example:"28.9"`
}

// DailyRecord is one calendar day of observed or forecast weather.
// Precipitation is a probability in [0,1]; Rain is an amount in mm.
type DailyRecord struct {
	Date          time.Time   `json:"date" example:"2025-07-25T00:00:00Z"`
	Temp          Temperature `json:"temp"`
	Humidity      float64     `json:"humidity" example:"71"`
	WindSpeed     float64     `json:"wind_speed" example:"3.4"`
	Precipitation float64     `json:"precipitation" example:"0.45"`
	Rain          float64     `json:"rain" example:"4.2"`
	Condition     string      `json:"weather" example:"Rain"`
}

// FilterByDate returns the index of the record falling on the same calendar day as date, or -1 if not found
func FilterByDate(data []DailyRecord, date time.Time) int {
	y, m, d := date.Date()
	for i, rec := range data {
		ry, rm, rd := rec.Date.Date()
		if ry == y && rm == m && rd == d {
			return i
		}
	}
	return -1
}
