package agronomy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInsufficientData is matched by errors.Is on every InsufficientDataError.
var ErrInsufficientData = errors.New("insufficient weather data")

// UnsupportedCropError names the rejected key and every key that would have worked.
type UnsupportedCropError struct {
	Crop      string
	Supported []string
}

func (e *UnsupportedCropError) Error() string {
	return fmt.Sprintf("crop %q is not supported, supported crops: %s", e.Crop, strings.Join(e.Supported, ", "))
}

// InsufficientDataError is returned when an analysis has no daily records to work with.
type InsufficientDataError struct {
	Crop string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: no daily records to analyze for %s", ErrInsufficientData, e.Crop)
}

func (e *InsufficientDataError) Unwrap() error {
	return ErrInsufficientData
}
