// Package units provides shared constants and conversions for temperature units
package units

import "github.com/pkg/errors"

// Unit constants
const (
	Celsius    = "c"
	Fahrenheit = "f"
)

// ErrInvalidUnit is returned when a unit is not in the list of valid units.
var ErrInvalidUnit = errors.New("invalid temperature unit")

// ValidUnits contains all valid unit values
var ValidUnits = []string{Celsius, Fahrenheit}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "c, f"
}

// CelsiusToFahrenheit converts a temperature from Celsius to Fahrenheit
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// FahrenheitToCelsius converts a temperature from Fahrenheit to Celsius
func FahrenheitToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}

// Convert converts a temperature between the supported units
func Convert(value float64, fromUnit, toUnit string) (float64, error) {
	if !IsValid(fromUnit) || !IsValid(toUnit) {
		return 0, errors.Wrapf(ErrInvalidUnit, "from %q to %q", fromUnit, toUnit)
	}

	if fromUnit == toUnit {
		return value, nil
	}

	if fromUnit == Celsius {
		return CelsiusToFahrenheit(value), nil
	}

	return FahrenheitToCelsius(value), nil
}
