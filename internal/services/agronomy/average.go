// Package agronomy turns a sequence of daily weather records into period
// averages, weekly buckets and crop-specific advice. Everything here is pure
// and synchronous; callers fetch the records first.
package agronomy

import (
	"errors"

	"agri-weather/internal/models"
)

const (
	WeeklyWindow  = 7
	MonthlyWindow = 30
)

// ErrNoData is returned when an average is requested over zero records.
var ErrNoData = errors.New("no data")

// Average computes the mean of the first window records (or of all of them when fewer exist).
// Rainfall is left out; see MonthlyAverage.
func Average(records []models.DailyRecord, window int) (models.PeriodAverage, error) {
	subset := head(records, window)
	if len(subset) == 0 {
		return models.PeriodAverage{}, ErrNoData
	}

	var sum models.PeriodAverage
	for _, rec := range subset {
		sum.Temp.Day += rec.Temp.Day
		sum.Temp.Min += rec.Temp.Min
		sum.Temp.Max += rec.Temp.Max
		sum.Humidity += rec.Humidity
		sum.WindSpeed += rec.WindSpeed
		sum.Precipitation += rec.Precipitation
	}

	n := float64(len(subset))

	return models.PeriodAverage{
		Temp: models.Temperature{
			Day: sum.Temp.Day / n,
			Min: sum.Temp.Min / n,
			Max: sum.Temp.Max / n,
		},
		Humidity:          sum.Humidity / n,
		WindSpeed:         sum.WindSpeed / n,
		Precipitation:     sum.Precipitation / n,
		WeatherConditions: DominantCondition(subset),
		Days:              len(subset),
	}, nil
}

func WeeklyAverage(records []models.DailyRecord) (models.PeriodAverage, error) {
	return Average(records, WeeklyWindow)
}

// MonthlyAverage is Average over MonthlyWindow plus the rainfall total of the same window.
func MonthlyAverage(records []models.DailyRecord) (models.PeriodAverage, error) {
	avg, err := Average(records, MonthlyWindow)
	if err != nil {
		return avg, err
	}

	total := TotalRainfall(head(records, MonthlyWindow))
	avg.TotalRainfall = &total

	return avg, nil
}

// TotalRainfall sums rain over records. It is a total, not a mean.
func TotalRainfall(records []models.DailyRecord) float64 {
	var total float64
	for _, rec := range records {
		total += rec.Rain
	}
	return total
}

// DominantCondition returns the most frequent condition label.
// On a tie the label that reached the winning count first is kept, so the
// result depends on record order only, never on map iteration.
func DominantCondition(records []models.DailyRecord) string {
	counts := make(map[string]int, len(records))

	var (
		best      string
		bestCount int
	)
	for _, rec := range records {
		counts[rec.Condition]++
		if c := counts[rec.Condition]; c > bestCount {
			best = rec.Condition
			bestCount = c
		}
	}

	return best
}

func head(records []models.DailyRecord, window int) []models.DailyRecord {
	if window < 0 {
		window = 0
	}
	return records[:min(window, len(records))]
}
