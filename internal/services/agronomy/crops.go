package agronomy

import (
	"strings"

	"agri-weather/internal/models"
)

var cropProfiles = []models.CropProfile{
	{
		Key:              "maize",
		Name:             "Maize",
		PlantingSeason:   "September - October (Season A), February - March (Season B)",
		HarvestingSeason: "January - February, June - July",
		OptimalTemp:      models.Range{Min: 18, Max: 32},
		OptimalRainfall:  models.Range{Min: 500, Max: 1200},
		DroughtTolerance: "moderate",
		FloodTolerance:   "low",
		Tips:             "Maize requires well-drained soil and regular rainfall. Plant in rows for better yield.",
	},
	{
		Key:              "beans",
		Name:             "Beans",
		PlantingSeason:   "September (Season A), February - March (Season B)",
		HarvestingSeason: "December - January, May - June",
		OptimalTemp:      models.Range{Min: 15, Max: 27},
		OptimalRainfall:  models.Range{Min: 300, Max: 600},
		DroughtTolerance: "low",
		FloodTolerance:   "low",
		Tips:             "Beans are nitrogen-fixing crops. Good for crop rotation with maize.",
	},
	{
		Key:              "potatoes",
		Name:             "Potatoes",
		PlantingSeason:   "September - October, February - March",
		HarvestingSeason: "December - January, June - July",
		OptimalTemp:      models.Range{Min: 10, Max: 25},
		OptimalRainfall:  models.Range{Min: 500, Max: 800},
		DroughtTolerance: "low",
		FloodTolerance:   "low",
		Tips:             "Potatoes prefer cool temperatures and well-drained soil. Avoid waterlogging.",
	},
	{
		Key:              "rice",
		Name:             "Rice",
		PlantingSeason:   "January - February, July - August",
		HarvestingSeason: "May - June, November - December",
		OptimalTemp:      models.Range{Min: 20, Max: 35},
		OptimalRainfall:  models.Range{Min: 1000, Max: 2000},
		DroughtTolerance: "low",
		FloodTolerance:   "high",
		Tips:             "Rice requires standing water. Ensure proper irrigation and drainage.",
	},
	{
		Key:              "coffee",
		Name:             "Coffee",
		PlantingSeason:   "October - November (start of the rains)",
		HarvestingSeason: "March - July",
		OptimalTemp:      models.Range{Min: 15, Max: 24},
		OptimalRainfall:  models.Range{Min: 1200, Max: 2000},
		DroughtTolerance: "moderate",
		FloodTolerance:   "low",
		Tips:             "Coffee prefers shade and moderate temperatures. Plant under trees if possible.",
	},
	{
		Key:              "tea",
		Name:             "Tea",
		PlantingSeason:   "October - November, March - April",
		HarvestingSeason: "Year-round (plucking every 7 - 14 days)",
		OptimalTemp:      models.Range{Min: 13, Max: 28},
		OptimalRainfall:  models.Range{Min: 1200, Max: 3000},
		DroughtTolerance: "low",
		FloodTolerance:   "moderate",
		Tips:             "Tea requires acidic soil and regular pruning. Harvest young leaves for best quality.",
	},
}

var cropsByKey = func() map[string]models.CropProfile {
	m := make(map[string]models.CropProfile, len(cropProfiles))
	for _, p := range cropProfiles {
		m[p.Key] = p
	}
	return m
}()

// NormalizeKey lower-cases and trims a user-supplied crop or location key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// LookupCrop resolves key case-insensitively.
func LookupCrop(key string) (models.CropProfile, error) {
	p, ok := cropsByKey[NormalizeKey(key)]
	if !ok {
		return models.CropProfile{}, &UnsupportedCropError{Crop: key, Supported: SupportedCrops()}
	}
	return p, nil
}

// SupportedCrops returns the known crop keys in table order.
func SupportedCrops() []string {
	keys := make([]string, len(cropProfiles))
	for i, p := range cropProfiles {
		keys[i] = p.Key
	}
	return keys
}

func CropProfiles() []models.CropProfile {
	out := make([]models.CropProfile, len(cropProfiles))
	copy(out, cropProfiles)
	return out
}
