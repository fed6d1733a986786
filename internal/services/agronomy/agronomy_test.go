package agronomy_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri-weather/internal/models"
	"agri-weather/internal/services/agronomy"
)

var firstDay = time.Date(2025, time.July, 25, 0, 0, 0, 0, time.UTC)

// series builds n records on consecutive days; record i has day temperature i+1 and rain i+1.
func series(n int) []models.DailyRecord {
	records := make([]models.DailyRecord, n)
	for i := range records {
		v := float64(i + 1)
		records[i] = models.DailyRecord{
			Date:          firstDay.AddDate(0, 0, i),
			Temp:          models.Temperature{Day: v, Min: v - 1, Max: v + 1},
			Humidity:      v * 2,
			WindSpeed:     v / 2,
			Precipitation: 0.5,
			Rain:          v,
			Condition:     "Clear",
		}
	}
	return records
}

func uniform(n int, day, humidity, rain float64) []models.DailyRecord {
	records := make([]models.DailyRecord, n)
	for i := range records {
		records[i] = models.DailyRecord{
			Date:      firstDay.AddDate(0, 0, i),
			Temp:      models.Temperature{Day: day, Min: day - 5, Max: day + 5},
			Humidity:  humidity,
			WindSpeed: 2,
			Rain:      rain,
			Condition: "Clouds",
		}
	}
	return records
}

func withConditions(labels ...string) []models.DailyRecord {
	records := series(len(labels))
	for i, l := range labels {
		records[i].Condition = l
	}
	return records
}

func TestAverage_UsesFirstWindowRecords(t *testing.T) {
	cases := []struct {
		name   string
		n      int
		window int
		want   int
	}{
		{"weekly over ten", 10, agronomy.WeeklyWindow, 7},
		{"weekly over three", 3, agronomy.WeeklyWindow, 3},
		{"monthly over forty", 40, agronomy.MonthlyWindow, 30},
		{"monthly over sixteen", 16, agronomy.MonthlyWindow, 16},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			avg, err := agronomy.Average(series(tc.n), tc.window)
			require.NoError(t, err)

			assert.Equal(t, tc.want, avg.Days)
			// mean of 1..want
			assert.InDelta(t, float64(tc.want+1)/2, avg.Temp.Day, 1e-9)
		})
	}
}

func TestAverage_ComputesArithmeticMeans(t *testing.T) {
	avg, err := agronomy.WeeklyAverage(series(10))
	require.NoError(t, err)

	assert.InDelta(t, 4.0, avg.Temp.Day, 1e-9)
	assert.InDelta(t, 3.0, avg.Temp.Min, 1e-9)
	assert.InDelta(t, 5.0, avg.Temp.Max, 1e-9)
	assert.InDelta(t, 8.0, avg.Humidity, 1e-9)
	assert.InDelta(t, 2.0, avg.WindSpeed, 1e-9)
	assert.InDelta(t, 0.5, avg.Precipitation, 1e-9)
	assert.Equal(t, "Clear", avg.WeatherConditions)
	assert.Nil(t, avg.TotalRainfall, "weekly averages carry no rainfall total")
}

func TestAverage_EmptyInput(t *testing.T) {
	_, err := agronomy.WeeklyAverage(nil)
	assert.ErrorIs(t, err, agronomy.ErrNoData)

	_, err = agronomy.MonthlyAverage([]models.DailyRecord{})
	assert.ErrorIs(t, err, agronomy.ErrNoData)
}

func TestMonthlyAverage_SumsRainfall(t *testing.T) {
	avg, err := agronomy.MonthlyAverage(series(40))
	require.NoError(t, err)

	require.NotNil(t, avg.TotalRainfall)
	// 1 + 2 + ... + 30, the remaining ten days are outside the window
	assert.InDelta(t, 465.0, *avg.TotalRainfall, 1e-9)
	assert.InDelta(t, 15.5, avg.Temp.Day, 1e-9)
}

func TestDominantCondition(t *testing.T) {
	cases := []struct {
		name   string
		labels []string
		want   string
	}{
		{"higher count wins", []string{"A", "B", "A", "B", "B"}, "B"},
		{"first to reach tied max wins", []string{"A", "A", "B", "B"}, "A"},
		{"later tie does not displace", []string{"B", "A", "A", "B"}, "A"},
		{"single", []string{"Rain"}, "Rain"},
		{"empty", nil, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, agronomy.DominantCondition(withConditions(tc.labels...)))
		})
	}
}

func TestDominantCondition_StableAcrossRuns(t *testing.T) {
	records := withConditions("Rain", "Clear", "Clouds", "Clear", "Rain", "Clouds")
	for range 50 {
		require.Equal(t, "Clear", agronomy.DominantCondition(records))
	}
}

func TestWeeks_TenRecords(t *testing.T) {
	weeks := agronomy.WeeklyForecasts(series(10))

	require.Len(t, weeks, 2)

	assert.Equal(t, 1, weeks[0].WeekNumber)
	assert.Equal(t, 7, weeks[0].Averages.Days)
	assert.Equal(t, "Jul 25", weeks[0].StartDate)
	assert.Equal(t, "Jul 31", weeks[0].EndDate)
	assert.InDelta(t, 4.0, weeks[0].Averages.Temp.Day, 1e-9)

	assert.Equal(t, 2, weeks[1].WeekNumber)
	assert.Equal(t, 3, weeks[1].Averages.Days)
	assert.Equal(t, "Aug 1", weeks[1].StartDate)
	assert.Equal(t, "Aug 3", weeks[1].EndDate)
	assert.InDelta(t, 9.0, weeks[1].Averages.Temp.Day, 1e-9)
	assert.Equal(t, "☀️", weeks[1].Icon)
}

func TestWeeks_BucketCount(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 1, 7: 1, 8: 2, 14: 2, 16: 3, 30: 5} {
		assert.Len(t, agronomy.WeeklyForecasts(series(n)), want, "records: %d", n)
	}
}

func TestWeeks_StopsEarly(t *testing.T) {
	var seen []int
	for wf := range agronomy.Weeks(series(30)) {
		seen = append(seen, wf.WeekNumber)
		if wf.WeekNumber == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestAssessRisk(t *testing.T) {
	cases := []struct {
		name   string
		alerts int
		temp   models.TemperatureStatus
		rain   models.RainfallStatus
		want   models.RiskLevel
	}{
		{"three alerts always high", 3, models.TemperatureOptimal, models.RainfallOptimal, models.RiskHigh},
		{"four alerts", 4, models.TemperatureTooHot, models.RainfallExcessive, models.RiskHigh},
		{"two alerts", 2, models.TemperatureOptimal, models.RainfallOptimal, models.RiskMedium},
		{"cold only", 1, models.TemperatureTooCold, models.RainfallOptimal, models.RiskMedium},
		{"dry only", 1, models.TemperatureOptimal, models.RainfallInsufficient, models.RiskMedium},
		{"no alerts all optimal", 0, models.TemperatureOptimal, models.RainfallOptimal, models.RiskLow},
		{"one alert all optimal", 1, models.TemperatureOptimal, models.RainfallOptimal, models.RiskLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, agronomy.AssessRisk(tc.alerts, tc.temp, tc.rain))
		})
	}
}

func TestClassify(t *testing.T) {
	optimal := models.Range{Min: 18, Max: 32}

	assert.Equal(t, models.TemperatureOptimal, agronomy.ClassifyTemperature(18, optimal))
	assert.Equal(t, models.TemperatureOptimal, agronomy.ClassifyTemperature(32, optimal))
	assert.Equal(t, models.TemperatureTooCold, agronomy.ClassifyTemperature(17.9, optimal))
	assert.Equal(t, models.TemperatureTooHot, agronomy.ClassifyTemperature(32.1, optimal))

	rain := models.Range{Min: 500, Max: 1200}
	assert.Equal(t, models.RainfallOptimal, agronomy.ClassifyRainfall(500, rain))
	assert.Equal(t, models.RainfallInsufficient, agronomy.ClassifyRainfall(120, rain))
	assert.Equal(t, models.RainfallExcessive, agronomy.ClassifyRainfall(1500, rain))

	assert.Equal(t, models.HumidityOptimal, agronomy.ClassifyHumidity(80))
	assert.Equal(t, models.HumidityOptimal, agronomy.ClassifyHumidity(30))
	assert.Equal(t, models.HumidityHigh, agronomy.ClassifyHumidity(80.5))
	assert.Equal(t, models.HumidityLow, agronomy.ClassifyHumidity(29))
}

func TestClassify_RangeBoundsAreInclusive(t *testing.T) {
	for _, crop := range agronomy.CropProfiles() {
		t.Run(crop.Key, func(t *testing.T) {
			temp, rain := crop.OptimalTemp, crop.OptimalRainfall

			assert.True(t, temp.Contains(temp.Min))
			assert.True(t, temp.Contains(temp.Max))
			assert.Equal(t, models.TemperatureOptimal, agronomy.ClassifyTemperature(temp.Min, temp))
			assert.Equal(t, models.TemperatureOptimal, agronomy.ClassifyTemperature(temp.Max, temp))

			assert.True(t, rain.Contains(rain.Max))
			assert.Equal(t, models.RainfallOptimal, agronomy.ClassifyRainfall(rain.Min, rain))
			assert.Equal(t, models.RainfallOptimal, agronomy.ClassifyRainfall(rain.Max, rain))
			assert.Equal(t, models.RainfallExcessive, agronomy.ClassifyRainfall(rain.Max+0.1, rain))
		})
	}
}

func TestPlantingAdvice_Priority(t *testing.T) {
	excellent := agronomy.PlantingAdvice(models.TemperatureOptimal, models.RainfallOptimal, models.HumidityOptimal)
	assert.Contains(t, excellent, "Excellent conditions")

	// temperature outranks rainfall
	assert.Contains(t, agronomy.PlantingAdvice(models.TemperatureTooCold, models.RainfallExcessive, models.HumidityOptimal), "warmer temperatures")
	assert.Contains(t, agronomy.PlantingAdvice(models.TemperatureTooHot, models.RainfallInsufficient, models.HumidityOptimal), "cooler hours")
	assert.Contains(t, agronomy.PlantingAdvice(models.TemperatureOptimal, models.RainfallInsufficient, models.HumidityHigh), "irrigation")
	assert.Contains(t, agronomy.PlantingAdvice(models.TemperatureOptimal, models.RainfallExcessive, models.HumidityOptimal), "drainage")
	assert.Contains(t, agronomy.PlantingAdvice(models.TemperatureOptimal, models.RainfallOptimal, models.HumidityHigh), "Monitor conditions closely")
}

func TestAnalyze_HotAndWetMaize(t *testing.T) {
	// 30 days at 34°C with 50mm each: 1500mm total against maize's 500-1200mm
	analysis, err := agronomy.Analyze(uniform(30, 34, 60, 50), "maize")
	require.NoError(t, err)

	assert.Equal(t, "Maize", analysis.Crop)
	assert.Equal(t, models.TemperatureTooHot, analysis.TemperatureStatus)
	assert.Equal(t, models.RainfallExcessive, analysis.RainfallStatus)
	assert.Equal(t, models.HumidityOptimal, analysis.HumidityStatus)

	require.Len(t, analysis.Alerts, 2)
	assert.Contains(t, analysis.Alerts[0], "Heat stress")
	assert.Contains(t, analysis.Alerts[1], "Flood risk")

	require.Len(t, analysis.Recommendations, 2)
	assert.Contains(t, analysis.Recommendations[0], "above the optimal range")
	assert.Contains(t, analysis.Recommendations[1], "drainage")

	assert.Equal(t, models.RiskMedium, analysis.RiskLevel)
	assert.Equal(t, "Moderate risk - take precautions", analysis.RiskDescription)
	assert.Contains(t, analysis.PlantingAdvice, "cooler hours")

	require.NotNil(t, analysis.MonthlyAverage.TotalRainfall)
	assert.InDelta(t, 1500.0, *analysis.MonthlyAverage.TotalRainfall, 1e-9)
	assert.InDelta(t, 34.0, analysis.MonthlyAverage.Temp.Day, 1e-9)
	assert.Equal(t, 7, analysis.WeeklyAverage.Days)
	assert.Equal(t, 30, analysis.MonthlyAverage.Days)
}

func TestAnalyze_IdealConditions(t *testing.T) {
	// 30 days at 25°C with 25mm each: 750mm total
	analysis, err := agronomy.Analyze(uniform(30, 25, 60, 25), "MAIZE")
	require.NoError(t, err)

	assert.Equal(t, models.TemperatureOptimal, analysis.TemperatureStatus)
	assert.Equal(t, models.RainfallOptimal, analysis.RainfallStatus)
	assert.Equal(t, models.HumidityOptimal, analysis.HumidityStatus)
	assert.Empty(t, analysis.Alerts)
	assert.Empty(t, analysis.Recommendations)
	assert.Equal(t, models.RiskLow, analysis.RiskLevel)
	assert.Contains(t, analysis.PlantingAdvice, "Excellent conditions")
}

func TestAnalyze_HumidityOnlyRecommends(t *testing.T) {
	analysis, err := agronomy.Analyze(uniform(30, 25, 90, 25), "maize")
	require.NoError(t, err)

	assert.Equal(t, models.HumidityHigh, analysis.HumidityStatus)
	assert.Len(t, analysis.Recommendations, 1)
	assert.Empty(t, analysis.Alerts)
	assert.Equal(t, models.RiskLow, analysis.RiskLevel)
	assert.Contains(t, analysis.PlantingAdvice, "Monitor conditions closely")
}

func TestAnalyze_ColdAndDryPotatoes(t *testing.T) {
	analysis, err := agronomy.Analyze(uniform(16, 8, 20, 2), "potatoes")
	require.NoError(t, err)

	assert.Equal(t, models.TemperatureTooCold, analysis.TemperatureStatus)
	assert.Equal(t, models.RainfallInsufficient, analysis.RainfallStatus)
	assert.Equal(t, models.HumidityLow, analysis.HumidityStatus)
	assert.Len(t, analysis.Recommendations, 3)
	assert.Len(t, analysis.Alerts, 2)
	assert.Equal(t, models.RiskMedium, analysis.RiskLevel)
	assert.Contains(t, analysis.PlantingAdvice, "warmer temperatures")
	assert.Equal(t, 16, analysis.MonthlyAverage.Days)
}

func TestAnalyze_EmptyRecords(t *testing.T) {
	_, err := agronomy.Analyze(nil, "beans")
	require.Error(t, err)

	assert.ErrorIs(t, err, agronomy.ErrInsufficientData)

	var insufficient *agronomy.InsufficientDataError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "beans", insufficient.Crop)
}

func TestAnalyze_UnsupportedCrop(t *testing.T) {
	_, err := agronomy.Analyze(uniform(30, 25, 60, 25), "wheat")
	require.Error(t, err)

	var unsupported *agronomy.UnsupportedCropError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "wheat", unsupported.Crop)
	assert.Equal(t, []string{"maize", "beans", "potatoes", "rice", "coffee", "tea"}, unsupported.Supported)
	assert.Contains(t, err.Error(), "maize, beans, potatoes, rice, coffee, tea")
}

func TestAnalyze_UnsupportedCropCheckedBeforeData(t *testing.T) {
	_, err := agronomy.Analyze(nil, "wheat")

	var unsupported *agronomy.UnsupportedCropError
	assert.True(t, errors.As(err, &unsupported))
	assert.NotErrorIs(t, err, agronomy.ErrInsufficientData)
}

func TestLookupCrop(t *testing.T) {
	crop, err := agronomy.LookupCrop("  Coffee ")
	require.NoError(t, err)
	assert.Equal(t, "coffee", crop.Key)
	assert.Equal(t, models.Range{Min: 15, Max: 24}, crop.OptimalTemp)

	maize, err := agronomy.LookupCrop("maize")
	require.NoError(t, err)
	assert.Equal(t, models.Range{Min: 18, Max: 32}, maize.OptimalTemp)
	assert.Equal(t, models.Range{Min: 500, Max: 1200}, maize.OptimalRainfall)

	assert.Len(t, agronomy.CropProfiles(), 6)
}

func TestConditionIcon(t *testing.T) {
	assert.Equal(t, "🌧️", agronomy.ConditionIcon("Rain"))
	assert.Equal(t, "⛈️", agronomy.ConditionIcon("thunderstorm"))
	assert.Equal(t, "🌤️", agronomy.ConditionIcon("Volcanic ash"))
	assert.Equal(t, "Risk level unknown", agronomy.RiskDescription("extreme"))
}
