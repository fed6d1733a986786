package models

type TemperatureStatus string

const (
	TemperatureOptimal TemperatureStatus = "optimal"
	TemperatureTooCold TemperatureStatus = "too_cold"
	TemperatureTooHot  TemperatureStatus = "too_hot"
)

type RainfallStatus string

const (
	RainfallOptimal      RainfallStatus = "optimal"
	RainfallInsufficient RainfallStatus = "insufficient"
	RainfallExcessive    RainfallStatus = "excessive"
)

type HumidityStatus string

const (
	HumidityOptimal HumidityStatus = "optimal"
	HumidityHigh    HumidityStatus = "high"
	HumidityLow     HumidityStatus = "low"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Analysis is the agricultural assessment of a forecast for one crop.
type Analysis struct {
	Crop              string            `json:"crop" example:"Maize"`
	WeeklyAverage     PeriodAverage     `json:"weekly_average"`
	MonthlyAverage    PeriodAverage     `json:"monthly_average"`
	TemperatureStatus TemperatureStatus `json:"temperature_status" example:"optimal"`
	RainfallStatus    RainfallStatus    `json:"rainfall_status" example:"insufficient"`
	HumidityStatus    HumidityStatus    `json:"humidity_status" example:"optimal"`
	Recommendations   []string          `json:"recommendations"`
	Alerts            []string          `json:"alerts"`
	PlantingAdvice    string            `json:"planting_advice" example:"Prepare irrigation before planting."`
	RiskLevel         RiskLevel         `json:"risk_level" example:"medium"`
	RiskDescription   string            `json:"risk_description" example:"Moderate risk - take precautions"`
}
