// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/avanzyl/property-forecast/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within currency tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// ApplyPercentage applies a percentage to a value, e.g.
// ApplyPercentage(1000, 12.5) == 125.
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}

// AsPercentage calculates what percentage value is of total.
func AsPercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// AnnualizeMonthly converts a monthly amount to its annual equivalent.
func AnnualizeMonthly(monthly float64) float64 {
	return monthly * constants.MonthsPerYear
}

// CompoundGrowth returns the growth on base after the given number of yearly
// compounding periods at an annual percentage rate, i.e. the grown value
// minus the base.
func CompoundGrowth(base, annualRatePercent float64, years int) float64 {
	grown := base * math.Pow(1+annualRatePercent/constants.PercentageMultiplier, float64(years))
	return grown - base
}
