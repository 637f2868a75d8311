// Package narrative generates the plain-language investment summary from the
// forecast's headline figures.
package narrative

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Figures are the forecast numbers the summary is built from.
type Figures struct {
	MonthlyCashFlow      float64
	NetYieldOnInvestment float64
	TenYearAnnualizedROI float64
	BreakevenYears       float64 // +Inf when cash flow never recovers the outlay
}

// Summarize produces the summary paragraph. Each figure selects one sentence
// from a descending threshold ladder; a final combined ladder selects the
// closing sentence. The output is deterministic.
func Summarize(figures Figures) string {
	p := message.NewPrinter(language.English)

	sentences := []string{
		cashFlowSentence(p, figures.MonthlyCashFlow),
		yieldSentence(p, figures.NetYieldOnInvestment),
		roiSentence(p, figures.TenYearAnnualizedROI),
		breakevenSentence(p, figures.BreakevenYears),
		closingSentence(figures),
	}

	return strings.Join(sentences, " ")
}

func cashFlowSentence(p *message.Printer, monthly float64) string {
	switch {
	case monthly > 2000:
		return p.Sprintf("This property generates a substantial surplus of R%.0f per month after expenses and bond repayments.", monthly)
	case monthly > 500:
		return p.Sprintf("The property produces a healthy monthly surplus of R%.0f after all expenses and bond repayments.", monthly)
	case monthly > 0:
		return p.Sprintf("The property roughly pays for itself, with a small monthly surplus of R%.0f.", monthly)
	default:
		return p.Sprintf("The property runs at a monthly shortfall of R%.0f that you would need to fund from other income.", math.Abs(monthly))
	}
}

func yieldSentence(p *message.Printer, netYield float64) string {
	switch {
	case netYield > 10:
		return p.Sprintf("A net yield of %.1f%% on your total investment is exceptional for the residential market.", netYield)
	case netYield > 8:
		return p.Sprintf("A net yield of %.1f%% is excellent compared to typical residential returns.", netYield)
	case netYield > 6:
		return p.Sprintf("A net yield of %.1f%% is solid and in line with well-performing rental stock.", netYield)
	default:
		return p.Sprintf("A net yield of %.1f%% is modest, so the investment case rests mostly on capital growth.", netYield)
	}
}

func roiSentence(p *message.Printer, annualizedROI float64) string {
	switch {
	case annualizedROI > 20:
		return p.Sprintf("The projected ten-year annualized return of %.1f%% is exceptional.", annualizedROI)
	case annualizedROI > 15:
		return p.Sprintf("The projected ten-year annualized return of %.1f%% is very strong.", annualizedROI)
	case annualizedROI > 10:
		return p.Sprintf("The projected ten-year annualized return of %.1f%% is healthy.", annualizedROI)
	default:
		return p.Sprintf("The projected ten-year annualized return of %.1f%% is muted relative to listed alternatives.", annualizedROI)
	}
}

func breakevenSentence(p *message.Printer, years float64) string {
	switch {
	case years < 5:
		return p.Sprintf("At the current cash flow you would recover your initial investment relatively quickly, in about %.1f years.", years)
	case years < 10:
		return p.Sprintf("You would recover your initial investment in about %.1f years, a reasonable horizon for a rental.", years)
	case years < 20:
		return p.Sprintf("Recovering your initial investment would take about %.1f years, so patience is required.", years)
	default:
		return "Cash flow alone will not recover your initial investment within a realistic holding period."
	}
}

func closingSentence(figures Figures) string {
	switch {
	case figures.MonthlyCashFlow > 0 && figures.TenYearAnnualizedROI > 15:
		return "Overall, this looks like a strong investment opportunity."
	case figures.MonthlyCashFlow > 0 && figures.TenYearAnnualizedROI > 10:
		return "Overall, this is a sound investment with a balanced risk and return profile."
	case figures.MonthlyCashFlow > 0 || figures.TenYearAnnualizedROI > 10:
		return "Overall, the numbers are workable but leave little margin for rising rates or vacancies."
	default:
		return "Overall, the fundamentals are weak and you should negotiate the price down or look elsewhere."
	}
}
