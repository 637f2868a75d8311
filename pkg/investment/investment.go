// Package investment provides the rental investment metrics: operating
// expenses, effective income, yields, cash flow, multi-year ROI projections,
// and the breakeven calculation.
package investment

import (
	"encoding/json"
	"math"

	"github.com/avanzyl/property-forecast/pkg/constants"
	"github.com/avanzyl/property-forecast/pkg/mathutil"
)

// MonthlyExpenses holds the recurring monthly ownership costs.
type MonthlyExpenses struct {
	Levies      float64 `json:"levies"`
	Rates       float64 `json:"rates"`
	Maintenance float64 `json:"maintenance"`
	Total       float64 `json:"total"`
}

// CalculateMonthlyExpenses assembles the recurring monthly costs. The
// maintenance provision converts the annual percentage of the purchase price
// into a monthly amount.
func CalculateMonthlyExpenses(purchasePrice, levies, rates, maintenancePct float64) MonthlyExpenses {
	maintenance := mathutil.ApplyPercentage(purchasePrice, maintenancePct) / constants.MonthsPerYear
	return MonthlyExpenses{
		Levies:      levies,
		Rates:       rates,
		Maintenance: maintenance,
		Total:       levies + rates + maintenance,
	}
}

// EffectiveRentalIncome discounts the expected rent by the vacancy rate.
func EffectiveRentalIncome(expectedRent, vacancyPct float64) float64 {
	return expectedRent * (1 - vacancyPct/constants.PercentageMultiplier)
}

// YieldMetrics holds the four annualized yield percentages.
type YieldMetrics struct {
	GrossOnPrice      float64 `json:"grossOnPrice"`
	GrossOnInvestment float64 `json:"grossOnInvestment"`
	NetOnPrice        float64 `json:"netOnPrice"`
	NetOnInvestment   float64 `json:"netOnInvestment"`
}

// CalculateYields computes gross and net yields on both the purchase price
// and the total investment basis. Gross uses expected rent; net uses
// vacancy-adjusted rent less expenses.
func CalculateYields(purchasePrice, totalInvestment, expectedRent, effectiveRent, monthlyExpenses float64) YieldMetrics {
	annualGross := mathutil.AnnualizeMonthly(expectedRent)
	annualNet := mathutil.AnnualizeMonthly(effectiveRent - monthlyExpenses)
	return YieldMetrics{
		GrossOnPrice:      mathutil.AsPercentage(annualGross, purchasePrice),
		GrossOnInvestment: mathutil.AsPercentage(annualGross, totalInvestment),
		NetOnPrice:        mathutil.AsPercentage(annualNet, purchasePrice),
		NetOnInvestment:   mathutil.AsPercentage(annualNet, totalInvestment),
	}
}

// CashFlowMetrics holds the net cash position after expenses and the bond
// repayment.
type CashFlowMetrics struct {
	Monthly float64 `json:"monthly"`
	Annual  float64 `json:"annual"`
}

// CalculateCashFlow computes the net monthly and annual cash flow.
func CalculateCashFlow(effectiveRent, monthlyExpenses, bondPayment float64) CashFlowMetrics {
	monthly := effectiveRent - monthlyExpenses - bondPayment
	return CashFlowMetrics{
		Monthly: monthly,
		Annual:  mathutil.AnnualizeMonthly(monthly),
	}
}

// ProjectionParams are the inputs to the ROI projection.
type ProjectionParams struct {
	Deposit          float64
	TotalInvestment  float64
	AnnualCashFlow   float64
	BondPayment      float64
	LoanTermYears    int
	AppreciationRate float64 // annual percentage
}

// HorizonProjection holds the projected returns for one horizon.
type HorizonProjection struct {
	Years         int     `json:"years"`
	Appreciation  float64 `json:"appreciation"`
	CashFlow      float64 `json:"cashFlow"`
	EquityBuild   float64 `json:"equityBuild"`
	TotalReturn   float64 `json:"totalReturn"`
	ROI           float64 `json:"roi"`
	AnnualizedROI float64 `json:"annualizedRoi"`
}

// Project computes the ROI projection for the standard five and ten year
// horizons.
func Project(params ProjectionParams) (fiveYear, tenYear HorizonProjection) {
	return ProjectHorizon(params, constants.ProjectionHorizonsYears[0]),
		ProjectHorizon(params, constants.ProjectionHorizonsYears[1])
}

// ProjectHorizon computes the projected return over a single horizon.
func ProjectHorizon(params ProjectionParams, years int) HorizonProjection {
	appreciation := mathutil.CompoundGrowth(params.TotalInvestment, params.AppreciationRate, years)
	cashFlow := params.AnnualCashFlow * float64(years)
	equityBuild := estimateEquityBuild(params.BondPayment, years, params.LoanTermYears)
	totalReturn := appreciation + cashFlow + equityBuild

	// Written as deposit plus the financed remainder, which algebraically
	// reduces to the total investment. Kept in this form to preserve the
	// inherited behavior; flagged for product-owner review.
	initialInvestment := params.Deposit + (params.TotalInvestment - params.Deposit)

	roi := mathutil.AsPercentage(totalReturn, initialInvestment)

	// Annualizes a total-return percentage of principal with a compound
	// growth formula. The two conventions are not strictly consistent;
	// reproduced as inherited.
	annualized := (math.Pow(1+roi/constants.PercentageMultiplier, 1/float64(years)) - 1) *
		constants.PercentageMultiplier

	return HorizonProjection{
		Years:         years,
		Appreciation:  appreciation,
		CashFlow:      cashFlow,
		EquityBuild:   equityBuild,
		TotalReturn:   totalReturn,
		ROI:           roi,
		AnnualizedROI: annualized,
	}
}

// estimateEquityBuild approximates the principal repaid over the horizon as
// a flat share of total bond payments. Payments stop when the bond matures,
// so the horizon is capped at the loan term.
func estimateEquityBuild(bondPayment float64, years, loanTermYears int) float64 {
	paymentYears := years
	if loanTermYears > 0 && loanTermYears < paymentYears {
		paymentYears = loanTermYears
	}
	totalPayments := bondPayment * float64(paymentYears*constants.MonthsPerYear)
	return totalPayments * constants.EquityBuildFactor
}

// ProjectionPoint is one year of the projection series consumed by chart
// rendering. It is computed by the same helpers as the horizon projections
// so chart math cannot drift from the forecast.
type ProjectionPoint struct {
	Year               int     `json:"year"`
	PropertyValue      float64 `json:"propertyValue"`
	Appreciation       float64 `json:"appreciation"`
	CumulativeCashFlow float64 `json:"cumulativeCashFlow"`
	EquityBuild        float64 `json:"equityBuild"`
	TotalReturn        float64 `json:"totalReturn"`
}

// ProjectionSeries produces the year-by-year projection from year 1 through
// the requested final year.
func ProjectionSeries(params ProjectionParams, years int) []ProjectionPoint {
	series := make([]ProjectionPoint, 0, years)
	for year := 1; year <= years; year++ {
		horizon := ProjectHorizon(params, year)
		series = append(series, ProjectionPoint{
			Year:               year,
			PropertyValue:      params.TotalInvestment + horizon.Appreciation,
			Appreciation:       horizon.Appreciation,
			CumulativeCashFlow: horizon.CashFlow,
			EquityBuild:        horizon.EquityBuild,
			TotalReturn:        horizon.TotalReturn,
		})
	}
	return series
}

// BreakevenResult reports how long cumulative cash flow takes to recover the
// initial outflow. Months and Years are +Inf when monthly cash flow is not
// positive.
type BreakevenResult struct {
	Months float64 `json:"-"`
	Years  float64 `json:"-"`
}

// Unbounded reports whether the investment never recovers its initial
// outflow from cash flow alone.
func (b BreakevenResult) Unbounded() bool {
	return math.IsInf(b.Months, 1)
}

// MarshalJSON renders the unbounded sentinel as null with an explicit flag,
// since JSON has no representation for infinity.
func (b BreakevenResult) MarshalJSON() ([]byte, error) {
	if b.Unbounded() {
		return json.Marshal(struct {
			Months    *float64 `json:"months"`
			Years     *float64 `json:"years"`
			Unbounded bool     `json:"unbounded"`
		}{nil, nil, true})
	}
	return json.Marshal(struct {
		Months    float64 `json:"months"`
		Years     float64 `json:"years"`
		Unbounded bool    `json:"unbounded"`
	}{b.Months, b.Years, false})
}

// UnmarshalJSON restores the sentinel from the wire form.
func (b *BreakevenResult) UnmarshalJSON(data []byte) error {
	var wire struct {
		Months    *float64 `json:"months"`
		Years     *float64 `json:"years"`
		Unbounded bool     `json:"unbounded"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Unbounded || wire.Months == nil || wire.Years == nil {
		b.Months = math.Inf(1)
		b.Years = math.Inf(1)
		return nil
	}
	b.Months = *wire.Months
	b.Years = *wire.Years
	return nil
}

// CalculateBreakeven computes how long cumulative cash flow takes to recover
// the initial outflow. Non-positive cash flow returns the unbounded
// sentinel.
func CalculateBreakeven(initialOutflow, monthlyCashFlow float64) BreakevenResult {
	if monthlyCashFlow <= 0 {
		return BreakevenResult{Months: math.Inf(1), Years: math.Inf(1)}
	}
	months := math.Ceil(initialOutflow / monthlyCashFlow)
	return BreakevenResult{
		Months: months,
		Years:  months / constants.MonthsPerYear,
	}
}
