package agronomy

import (
	"iter"
	"slices"

	"agri-weather/internal/models"
)

const shortDateLayout = "Jan 2"

// Weeks yields consecutive, non-overlapping 7-day buckets of records.
// The last bucket may be shorter; n records yield ceil(n/7) buckets.
func Weeks(records []models.DailyRecord) iter.Seq[models.WeeklyForecast] {
	return func(yield func(models.WeeklyForecast) bool) {
		for week, start := 1, 0; start < len(records); week, start = week+1, start+WeeklyWindow {
			bucket := records[start:min(start+WeeklyWindow, len(records))]

			// bucket is never empty here
			avg, _ := WeeklyAverage(bucket)

			wf := models.WeeklyForecast{
				WeekNumber: week,
				StartDate:  bucket[0].Date.Format(shortDateLayout),
				EndDate:    bucket[len(bucket)-1].Date.Format(shortDateLayout),
				Icon:       ConditionIcon(avg.WeatherConditions),
				Averages:   avg,
			}
			if !yield(wf) {
				return
			}
		}
	}
}

// WeeklyForecasts collects Weeks into a slice.
func WeeklyForecasts(records []models.DailyRecord) []models.WeeklyForecast {
	weeks := slices.Collect(Weeks(records))
	if weeks == nil {
		return []models.WeeklyForecast{}
	}
	return weeks
}
