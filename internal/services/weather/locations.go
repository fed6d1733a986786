package weather

import (
	"fmt"
	"strings"

	"agri-weather/internal/models"
)

// locations are the Rwandan districts forecasts can be requested for, in display order.
var locations = []models.Location{
	{Key: "kigali", Name: "Kigali", Latitude: -1.9441, Longitude: 30.0619},
	{Key: "musanze", Name: "Musanze", Latitude: -1.4998, Longitude: 29.6350},
	{Key: "huye", Name: "Huye", Latitude: -2.5967, Longitude: 29.7394},
	{Key: "rubavu", Name: "Rubavu", Latitude: -1.6792, Longitude: 29.2590},
	{Key: "nyagatare", Name: "Nyagatare", Latitude: -1.2938, Longitude: 30.3275},
	{Key: "rusizi", Name: "Rusizi", Latitude: -2.4846, Longitude: 28.9075},
	{Key: "muhanga", Name: "Muhanga", Latitude: -2.0845, Longitude: 29.7565},
}

// UnknownLocationError is returned for a location key outside the table.
type UnknownLocationError struct {
	Key       string
	Available []string
}

func (e *UnknownLocationError) Error() string {
	return fmt.Sprintf("location %q is not available, available locations: %s", e.Key, strings.Join(e.Available, ", "))
}

func locationKeys() []string {
	keys := make([]string, 0, len(locations))
	for _, loc := range locations {
		keys = append(keys, loc.Key)
	}
	return keys
}

func lookupLocation(key string) (models.Location, error) {
	normalized := strings.ToLower(strings.TrimSpace(key))
	for _, loc := range locations {
		if loc.Key == normalized {
			return loc, nil
		}
	}
	return models.Location{}, &UnknownLocationError{Key: key, Available: locationKeys()}
}
