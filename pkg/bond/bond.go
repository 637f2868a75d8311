// Package bond provides home loan repayment calculations.
package bond

import (
	"fmt"
	"math"

	"github.com/avanzyl/property-forecast/pkg/constants"
	"github.com/avanzyl/property-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// Payment holds the values for a given month's bond payment.
type Payment struct {
	Month              int     `json:"month"`
	Payment            float64 `json:"payment"`
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	RemainingPrincipal float64 `json:"remainingPrincipal"`
}

// CalculateMonthlyPayment calculates the monthly bond repayment using the
// standard amortization formula.
func CalculateMonthlyPayment(principal, annualRatePercent float64, termYears int) float64 {
	payments := termYears * constants.MonthsPerYear
	if annualRatePercent == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(payments)
	}

	monthlyRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+monthlyRate, float64(payments))
	discountFactor := (power - 1.00) / power
	return principal * monthlyRate / discountFactor
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualRatePercent float64) float64 {
	return remainingPrincipal * annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// ScheduleGenerator provides utilities for generating bond amortization schedules
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// GenerateSchedule creates a complete month-by-month amortization schedule
// for a bond.
func (g *ScheduleGenerator) GenerateSchedule(principal, annualRatePercent float64, termYears int) []Payment {
	payments := termYears * constants.MonthsPerYear
	monthlyPayment := CalculateMonthlyPayment(principal, annualRatePercent, termYears)

	schedule := make([]Payment, 0, payments)
	remaining := principal
	for month := 1; month <= payments; month++ {
		interest := CalculateInterestPayment(remaining, annualRatePercent)
		principalPortion := monthlyPayment - interest

		remaining -= principalPortion
		if month == payments || mathutil.Round(remaining) <= 0 {
			// We will get machine error otherwise so just set to 0.
			remaining = 0
		}

		schedule = append(schedule, Payment{
			Month:              month,
			Payment:            monthlyPayment,
			Principal:          principalPortion,
			Interest:           interest,
			RemainingPrincipal: remaining,
		})

		if remaining == 0 && month < payments {
			g.logger.Debug(fmt.Sprintf("bond settled at month %d of %d", month, payments),
				zap.String("op", "bond.GenerateSchedule"),
			)
			break
		}
	}

	return schedule
}

// RemainingPrincipalAt returns the outstanding balance after the given number
// of months. Months beyond the end of the schedule report a zero balance.
func RemainingPrincipalAt(schedule []Payment, months int) float64 {
	if months <= 0 {
		if len(schedule) == 0 {
			return 0
		}
		return schedule[0].RemainingPrincipal + schedule[0].Principal
	}
	if months > len(schedule) {
		return 0
	}
	return schedule[months-1].RemainingPrincipal
}
