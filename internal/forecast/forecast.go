// Package forecast defines the data structures related to a given forecast
// and includes the orchestration that computes them.
package forecast

import (
	"fmt"

	"github.com/avanzyl/property-forecast/internal/config"
	"github.com/avanzyl/property-forecast/pkg/bond"
	"github.com/avanzyl/property-forecast/pkg/constants"
	"github.com/avanzyl/property-forecast/pkg/investment"
	"github.com/avanzyl/property-forecast/pkg/narrative"
	"github.com/avanzyl/property-forecast/pkg/transfercosts"
	"go.uber.org/zap"
)

// Forecast holds all information related to a specific forecast. It is the
// sole output record consumed by the report and API layers.
type Forecast struct {
	Name  string          `json:"name"`
	Input config.Property `json:"input"`

	LoanAmount         float64                      `json:"loanAmount"`
	PurchaseCosts      transfercosts.PurchaseCosts  `json:"purchaseCosts"`
	TotalInvestment    float64                      `json:"totalInvestment"`
	MonthlyBondPayment float64                      `json:"monthlyBondPayment"`
	Expenses           investment.MonthlyExpenses   `json:"expenses"`
	EffectiveRent      float64                      `json:"effectiveRent"`
	Yields             investment.YieldMetrics      `json:"yields"`
	CashFlow           investment.CashFlowMetrics   `json:"cashFlow"`
	FiveYear           investment.HorizonProjection `json:"fiveYear"`
	TenYear            investment.HorizonProjection `json:"tenYear"`
	Breakeven          investment.BreakevenResult   `json:"breakeven"`
	Summary            string                       `json:"summary"`
}

// GenerateForecast validates the property input and computes the full
// forecast record. Inputs are checked up front so malformed numbers fail
// with a descriptive error instead of propagating through the arithmetic.
func GenerateForecast(logger *zap.Logger, input config.Property) (*Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	loanAmount := input.PurchasePrice - input.Deposit
	costs := transfercosts.CalculatePurchaseCosts(input.PurchasePrice)
	totalInvestment := input.PurchasePrice + costs.Total

	bondPayment := bond.CalculateMonthlyPayment(loanAmount, input.InterestRate, input.LoanTermYears)
	expenses := investment.CalculateMonthlyExpenses(input.PurchasePrice, input.MonthlyLevies,
		input.MonthlyRates, input.MaintenanceRate)
	effectiveRent := investment.EffectiveRentalIncome(input.ExpectedRent, input.VacancyRate)

	yields := investment.CalculateYields(input.PurchasePrice, totalInvestment,
		input.ExpectedRent, effectiveRent, expenses.Total)
	cashFlow := investment.CalculateCashFlow(effectiveRent, expenses.Total, bondPayment)

	fiveYear, tenYear := investment.Project(investment.ProjectionParams{
		Deposit:          input.Deposit,
		TotalInvestment:  totalInvestment,
		AnnualCashFlow:   cashFlow.Annual,
		BondPayment:      bondPayment,
		LoanTermYears:    input.LoanTermYears,
		AppreciationRate: constants.DefaultAppreciationRate,
	})

	initialOutflow := input.Deposit + costs.Total
	breakeven := investment.CalculateBreakeven(initialOutflow, cashFlow.Monthly)

	summary := narrative.Summarize(narrative.Figures{
		MonthlyCashFlow:      cashFlow.Monthly,
		NetYieldOnInvestment: yields.NetOnInvestment,
		TenYearAnnualizedROI: tenYear.AnnualizedROI,
		BreakevenYears:       breakeven.Years,
	})

	logger.Debug(fmt.Sprintf("forecast computed for %s", input.Name),
		zap.String("op", "forecast.GenerateForecast"),
		zap.Float64("totalInvestment", totalInvestment),
		zap.Float64("monthlyCashFlow", cashFlow.Monthly),
	)

	return &Forecast{
		Name:               input.Name,
		Input:              input,
		LoanAmount:         loanAmount,
		PurchaseCosts:      costs,
		TotalInvestment:    totalInvestment,
		MonthlyBondPayment: bondPayment,
		Expenses:           expenses,
		EffectiveRent:      effectiveRent,
		Yields:             yields,
		CashFlow:           cashFlow,
		FiveYear:           fiveYear,
		TenYear:            tenYear,
		Breakeven:          breakeven,
		Summary:            summary,
	}, nil
}

// GetForecasts processes the forecasts for all active scenarios in the
// configuration.
func GetForecasts(logger *zap.Logger, conf config.Configuration) ([]Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Forecast
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "forecast.GetForecasts"),
			)
			continue
		}

		result, err := GenerateForecast(logger, scenario)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		results = append(results, *result)
	}

	return results, nil
}
