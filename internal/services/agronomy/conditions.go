package agronomy

import (
	"strings"

	"agri-weather/internal/models"
)

const defaultConditionIcon = "🌤️"

var conditionIcons = map[string]string{
	"clear":        "☀️",
	"clouds":       "☁️",
	"rain":         "🌧️",
	"drizzle":      "🌦️",
	"thunderstorm": "⛈️",
	"snow":         "❄️",
	"mist":         "🌫️",
	"fog":          "🌫️",
	"haze":         "🌫️",
}

var riskDescriptions = map[models.RiskLevel]string{
	models.RiskLow:    "Good conditions for farming activities",
	models.RiskMedium: "Moderate risk - take precautions",
	models.RiskHigh:   "High risk - avoid farming activities if possible",
}

// ConditionIcon maps a condition label such as "Rain" to an emoji.
func ConditionIcon(condition string) string {
	if icon, ok := conditionIcons[strings.ToLower(condition)]; ok {
		return icon
	}
	return defaultConditionIcon
}

func RiskDescription(level models.RiskLevel) string {
	if d, ok := riskDescriptions[level]; ok {
		return d
	}
	return "Risk level unknown"
}
