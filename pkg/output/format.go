// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"fmt"
	"strings"

	"github.com/avanzyl/property-forecast/internal/forecast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(results []forecast.Forecast) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		fmt.Printf("--- Forecast for %s ---\n", result.Name)
		_, _ = p.Printf("Purchase price:        R%.2f\n", result.Input.PurchasePrice)
		_, _ = p.Printf("Deposit:               R%.2f\n", result.Input.Deposit)
		_, _ = p.Printf("Loan amount:           R%.2f\n", result.LoanAmount)
		_, _ = p.Printf("Transfer duty:         R%.2f\n", result.PurchaseCosts.TransferDuty)
		_, _ = p.Printf("Attorney fees:         R%.2f\n", result.PurchaseCosts.AttorneyFees)
		_, _ = p.Printf("Total purchase costs:  R%.2f\n", result.PurchaseCosts.Total)
		_, _ = p.Printf("Total investment:      R%.2f\n", result.TotalInvestment)
		fmt.Printf("\n")
		_, _ = p.Printf("Monthly bond payment:  R%.2f\n", result.MonthlyBondPayment)
		_, _ = p.Printf("Monthly expenses:      R%.2f\n", result.Expenses.Total)
		_, _ = p.Printf("Effective rent:        R%.2f\n", result.EffectiveRent)
		_, _ = p.Printf("Monthly cash flow:     R%.2f\n", result.CashFlow.Monthly)
		_, _ = p.Printf("Annual cash flow:      R%.2f\n", result.CashFlow.Annual)
		fmt.Printf("\n")
		fmt.Printf("Gross yield (price):       %.2f%%\n", result.Yields.GrossOnPrice)
		fmt.Printf("Gross yield (investment):  %.2f%%\n", result.Yields.GrossOnInvestment)
		fmt.Printf("Net yield (price):         %.2f%%\n", result.Yields.NetOnPrice)
		fmt.Printf("Net yield (investment):    %.2f%%\n", result.Yields.NetOnInvestment)
		fmt.Printf("\n")
		fmt.Printf("5-year ROI:                %.2f%% (%.2f%% annualized)\n",
			result.FiveYear.ROI, result.FiveYear.AnnualizedROI)
		fmt.Printf("10-year ROI:               %.2f%% (%.2f%% annualized)\n",
			result.TenYear.ROI, result.TenYear.AnnualizedROI)
		fmt.Printf("Breakeven:                 %s\n", formatBreakeven(result))
		fmt.Printf("\n%s\n", result.Summary)
		if i < len(results)-1 {
			fmt.Printf("\n")
		}
	}
}

func formatBreakeven(result forecast.Forecast) string {
	if result.Breakeven.Unbounded() {
		return "never (cash flow does not recover the initial outlay)"
	}
	return fmt.Sprintf("%.0f months (%.1f years)", result.Breakeven.Months, result.Breakeven.Years)
}

// CsvFormat outputs in comma-separated value format, one row per scenario.
func CsvFormat(results []forecast.Forecast) {
	header := []string{
		"name", "purchase price", "deposit", "loan amount",
		"transfer duty", "attorney fees", "total purchase costs", "total investment",
		"monthly bond payment", "monthly expenses", "effective rent",
		"monthly cash flow", "annual cash flow",
		"gross yield on price (%)", "gross yield on investment (%)",
		"net yield on price (%)", "net yield on investment (%)",
		"5-year roi (%)", "10-year roi (%)", "10-year annualized roi (%)",
		"breakeven months",
	}
	fmt.Printf(`"%s"`+"\n", strings.Join(header, `","`))

	for _, result := range results {
		breakeven := ""
		if !result.Breakeven.Unbounded() {
			breakeven = fmt.Sprintf("%.0f", result.Breakeven.Months)
		}
		fmt.Printf(`"%s","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%s"`+"\n",
			result.Name,
			result.Input.PurchasePrice,
			result.Input.Deposit,
			result.LoanAmount,
			result.PurchaseCosts.TransferDuty,
			result.PurchaseCosts.AttorneyFees,
			result.PurchaseCosts.Total,
			result.TotalInvestment,
			result.MonthlyBondPayment,
			result.Expenses.Total,
			result.EffectiveRent,
			result.CashFlow.Monthly,
			result.CashFlow.Annual,
			result.Yields.GrossOnPrice,
			result.Yields.GrossOnInvestment,
			result.Yields.NetOnPrice,
			result.Yields.NetOnInvestment,
			result.FiveYear.ROI,
			result.TenYear.ROI,
			result.TenYear.AnnualizedROI,
			breakeven,
		)
	}
}
