package models

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64 `json:"min" example:"18"`
	Max float64 `json:"max" example:"32"`
}

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// CropProfile is static agronomic reference data for one crop.
// OptimalRainfall is a period total in mm.
type CropProfile struct {
	Key              string `json:"key" example:"maize"`
	Name             string `json:"name" example:"Maize"`
	PlantingSeason   string `json:"planting_season" example:"September - October (Season A), February - March (Season B)"`
	HarvestingSeason string `json:"harvesting_season" example:"January - February, June - July"`
	OptimalTemp      Range  `json:"optimal_temp"`
	OptimalRainfall  Range  `json:"optimal_rainfall"`
	DroughtTolerance string `json:"drought_tolerance" example:"moderate"`
	FloodTolerance   string `json:"flood_tolerance" example:"low"`
	Tips             string `json:"tips" example:"Maize requires well-drained soil and regular rainfall."`
}
