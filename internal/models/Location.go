package models

type Location struct {
	Key       string  `json:"key" example:"kigali"`
	Name      string  `json:"name" example:"Kigali"`
	Latitude  float64 `json:"latitude" example:"-1.9441"`
	Longitude float64 `json:"longitude" example:"30.0619"`
}
