// Package validation provides input validation for forecast requests and
// output format checks.
package validation

import (
	"fmt"
	"strings"

	"github.com/avanzyl/property-forecast/pkg/constants"
)

// InvalidInputError describes one rejected input field. The forecast engine
// fails fast with these instead of letting malformed numbers propagate as
// NaN through the arithmetic.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// InvalidInputErrors aggregates every rejected field from one request.
type InvalidInputErrors []*InvalidInputError

func (e InvalidInputErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// PropertyFields are the numeric fields checked before a forecast runs.
type PropertyFields struct {
	PurchasePrice   float64
	Deposit         float64
	InterestRate    float64
	LoanTermYears   int
	MonthlyLevies   float64
	MonthlyRates    float64
	ExpectedRent    float64
	VacancyRate     float64
	MaintenanceRate float64
}

// ValidateProperty checks all numeric fields and returns the aggregated
// problems in field order, or nil when the input is acceptable.
func ValidateProperty(fields PropertyFields) error {
	var errs InvalidInputErrors

	reject := func(field, reason string) {
		errs = append(errs, &InvalidInputError{Field: field, Reason: reason})
	}

	if fields.PurchasePrice <= 0 {
		reject("purchasePrice", "must be positive")
	}
	if fields.Deposit < 0 {
		reject("deposit", "must not be negative")
	}
	if fields.PurchasePrice > 0 && fields.Deposit >= fields.PurchasePrice {
		reject("deposit", "must be less than the purchase price")
	}
	if fields.InterestRate < 0 {
		reject("interestRate", "must not be negative")
	} else if fields.InterestRate > constants.MaxInterestRate {
		reject("interestRate", fmt.Sprintf("must not exceed %.0f%%", constants.MaxInterestRate))
	}
	if fields.LoanTermYears <= 0 {
		reject("loanTermYears", "must be positive")
	} else if fields.LoanTermYears > constants.MaxLoanTermYears {
		reject("loanTermYears", fmt.Sprintf("must not exceed %d years", constants.MaxLoanTermYears))
	}
	if fields.MonthlyLevies < 0 {
		reject("monthlyLevies", "must not be negative")
	}
	if fields.MonthlyRates < 0 {
		reject("monthlyRates", "must not be negative")
	}
	if fields.ExpectedRent < 0 {
		reject("expectedRent", "must not be negative")
	}
	if fields.VacancyRate < 0 || fields.VacancyRate > 100 {
		reject("vacancyRate", "must be between 0 and 100")
	}
	if fields.MaintenanceRate < 0 || fields.MaintenanceRate > 100 {
		reject("maintenanceRate", "must be between 0 and 100")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
