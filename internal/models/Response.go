package models

// Response is the failure envelope shared by every endpoint.
// Option lists are filled when the request named something unknown.
type Response struct {
	Success            bool     `json:"success" example:"false"`
	Error              string   `json:"error" example:"Unsupported crop"`
	Message            string   `json:"message" example:"crop \"wheat\" is not supported"`
	SupportedCrops     []string `json:"supported_crops,omitempty"`
	AvailableLocations []string `json:"available_locations,omitempty"`
}
