package agronomy

import (
	"fmt"

	"agri-weather/internal/models"
)

const (
	highHumidity = 80.0
	lowHumidity  = 30.0
)

const (
	recommendTooCold      = "Temperatures are below the optimal range. Use mulch or row covers to keep the soil warm."
	recommendTooHot       = "Temperatures are above the optimal range. Provide shade and water during the cooler hours of the day."
	recommendInsufficient = "Rainfall is below crop requirements. Plan supplementary irrigation."
	recommendExcessive    = "Rainfall exceeds crop requirements. Improve field drainage to prevent waterlogging."
	recommendHighHumidity = "High humidity raises the risk of fungal disease. Scout fields often and keep plants well spaced for air flow."
	recommendLowHumidity  = "Low humidity can stress plants. Mulch to conserve soil moisture."
)

const (
	adviceExcellent    = "Excellent conditions for planting. Proceed with planting activities."
	adviceWaitWarmer   = "Wait for warmer temperatures before planting."
	advicePlantCooler  = "Plant during the cooler hours of the day and ensure adequate irrigation."
	advicePrepareWater = "Prepare irrigation before planting; rainfall is expected to be insufficient."
	adviceDrainage     = "Ensure good field drainage before planting; heavy rainfall is expected."
	adviceMonitor      = "Monitor conditions closely and consult local extension officers before planting."
)

// Analyze assesses records against the profile of cropKey.
// It fails with *UnsupportedCropError for an unknown crop and with
// *InsufficientDataError when records is empty.
func Analyze(records []models.DailyRecord, cropKey string) (models.Analysis, error) {
	crop, err := LookupCrop(cropKey)
	if err != nil {
		return models.Analysis{}, err
	}

	if len(records) == 0 {
		return models.Analysis{}, &InsufficientDataError{Crop: crop.Key}
	}

	weekly, err := WeeklyAverage(records)
	if err != nil {
		return models.Analysis{}, &InsufficientDataError{Crop: crop.Key}
	}
	monthly, err := MonthlyAverage(records)
	if err != nil {
		return models.Analysis{}, &InsufficientDataError{Crop: crop.Key}
	}

	rainfall := *monthly.TotalRainfall

	tempStatus := ClassifyTemperature(monthly.Temp.Day, crop.OptimalTemp)
	rainStatus := ClassifyRainfall(rainfall, crop.OptimalRainfall)
	humidityStatus := ClassifyHumidity(monthly.Humidity)

	recommendations := make([]string, 0, 3)
	alerts := make([]string, 0, 2)

	switch tempStatus {
	case models.TemperatureTooCold:
		recommendations = append(recommendations, recommendTooCold)
		alerts = append(alerts, fmt.Sprintf("Cold stress: average temperature %.1f°C is below the %.0f°C minimum for %s.", monthly.Temp.Day, crop.OptimalTemp.Min, crop.Name))
	case models.TemperatureTooHot:
		recommendations = append(recommendations, recommendTooHot)
		alerts = append(alerts, fmt.Sprintf("Heat stress: average temperature %.1f°C is above the %.0f°C maximum for %s.", monthly.Temp.Day, crop.OptimalTemp.Max, crop.Name))
	}

	switch rainStatus {
	case models.RainfallInsufficient:
		recommendations = append(recommendations, recommendInsufficient)
		alerts = append(alerts, fmt.Sprintf("Drought risk: expected rainfall %.0fmm is below the %.0fmm needed by %s.", rainfall, crop.OptimalRainfall.Min, crop.Name))
	case models.RainfallExcessive:
		recommendations = append(recommendations, recommendExcessive)
		alerts = append(alerts, fmt.Sprintf("Flood risk: expected rainfall %.0fmm exceeds the %.0fmm tolerated by %s.", rainfall, crop.OptimalRainfall.Max, crop.Name))
	}

	switch humidityStatus {
	case models.HumidityHigh:
		recommendations = append(recommendations, recommendHighHumidity)
	case models.HumidityLow:
		recommendations = append(recommendations, recommendLowHumidity)
	}

	risk := AssessRisk(len(alerts), tempStatus, rainStatus)

	return models.Analysis{
		Crop:              crop.Name,
		WeeklyAverage:     weekly,
		MonthlyAverage:    monthly,
		TemperatureStatus: tempStatus,
		RainfallStatus:    rainStatus,
		HumidityStatus:    humidityStatus,
		Recommendations:   recommendations,
		Alerts:            alerts,
		PlantingAdvice:    PlantingAdvice(tempStatus, rainStatus, humidityStatus),
		RiskLevel:         risk,
		RiskDescription:   RiskDescription(risk),
	}, nil
}

func ClassifyTemperature(day float64, optimal models.Range) models.TemperatureStatus {
	switch {
	case optimal.Contains(day):
		return models.TemperatureOptimal
	case day < optimal.Min:
		return models.TemperatureTooCold
	default:
		return models.TemperatureTooHot
	}
}

func ClassifyRainfall(total float64, optimal models.Range) models.RainfallStatus {
	switch {
	case optimal.Contains(total):
		return models.RainfallOptimal
	case total < optimal.Min:
		return models.RainfallInsufficient
	default:
		return models.RainfallExcessive
	}
}

func ClassifyHumidity(humidity float64) models.HumidityStatus {
	switch {
	case humidity > highHumidity:
		return models.HumidityHigh
	case humidity < lowHumidity:
		return models.HumidityLow
	default:
		return models.HumidityOptimal
	}
}

// PlantingAdvice applies the first matching rule, in priority order.
func PlantingAdvice(temp models.TemperatureStatus, rain models.RainfallStatus, humidity models.HumidityStatus) string {
	switch {
	case temp == models.TemperatureOptimal && rain == models.RainfallOptimal && humidity == models.HumidityOptimal:
		return adviceExcellent
	case temp == models.TemperatureTooCold:
		return adviceWaitWarmer
	case temp == models.TemperatureTooHot:
		return advicePlantCooler
	case rain == models.RainfallInsufficient:
		return advicePrepareWater
	case rain == models.RainfallExcessive:
		return adviceDrainage
	default:
		return adviceMonitor
	}
}

// AssessRisk checks the alert count before the statuses; 3+ alerts is always high.
func AssessRisk(alerts int, temp models.TemperatureStatus, rain models.RainfallStatus) models.RiskLevel {
	switch {
	case alerts >= 3:
		return models.RiskHigh
	case alerts >= 2, temp != models.TemperatureOptimal, rain != models.RainfallOptimal:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}
