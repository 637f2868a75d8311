package narrative

import (
	"math"
	"strings"
	"testing"
)

func TestSummarizeStrongInvestment(t *testing.T) {
	summary := Summarize(Figures{
		MonthlyCashFlow:      600,
		NetYieldOnInvestment: 9,
		TenYearAnnualizedROI: 16,
		BreakevenYears:       3,
	})

	fragments := []string{
		"healthy monthly surplus",
		"excellent compared to",
		"very strong",
		"recover your initial investment relatively quickly",
		"strong investment opportunity",
	}
	for _, fragment := range fragments {
		if !strings.Contains(summary, fragment) {
			t.Errorf("summary missing fragment %q\nsummary: %s", fragment, summary)
		}
	}
}

func TestSummarizeWeakInvestment(t *testing.T) {
	summary := Summarize(Figures{
		MonthlyCashFlow:      -2500,
		NetYieldOnInvestment: 3,
		TenYearAnnualizedROI: 4,
		BreakevenYears:       math.Inf(1),
	})

	fragments := []string{
		"monthly shortfall",
		"modest",
		"muted",
		"will not recover your initial investment",
		"fundamentals are weak",
	}
	for _, fragment := range fragments {
		if !strings.Contains(summary, fragment) {
			t.Errorf("summary missing fragment %q\nsummary: %s", fragment, summary)
		}
	}
}

func TestCashFlowLadder(t *testing.T) {
	tests := []struct {
		name     string
		monthly  float64
		fragment string
	}{
		{"Substantial surplus", 3000, "substantial surplus"},
		{"Healthy surplus", 600, "healthy monthly surplus"},
		{"Small surplus", 100, "small monthly surplus"},
		{"Exactly zero is a shortfall rung", 0, "monthly shortfall"},
		{"Negative", -500, "monthly shortfall"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(Figures{MonthlyCashFlow: tt.monthly, BreakevenYears: math.Inf(1)})
			if !strings.Contains(summary, tt.fragment) {
				t.Errorf("summary for monthly=%v missing %q\nsummary: %s", tt.monthly, tt.fragment, summary)
			}
		})
	}
}

func TestBreakevenLadder(t *testing.T) {
	tests := []struct {
		name     string
		years    float64
		fragment string
	}{
		{"Quick recovery", 3, "relatively quickly"},
		{"Reasonable horizon", 7.5, "reasonable horizon"},
		{"Patience required", 15, "patience is required"},
		{"Beyond realistic horizon", 40, "will not recover"},
		{"Unbounded", math.Inf(1), "will not recover"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(Figures{MonthlyCashFlow: 1000, BreakevenYears: tt.years})
			if !strings.Contains(summary, tt.fragment) {
				t.Errorf("summary for years=%v missing %q\nsummary: %s", tt.years, tt.fragment, summary)
			}
		})
	}
}

// The summary is a pure function of its inputs.
func TestSummarizeDeterministic(t *testing.T) {
	figures := Figures{
		MonthlyCashFlow:      1234.56,
		NetYieldOnInvestment: 7.8,
		TenYearAnnualizedROI: 12.3,
		BreakevenYears:       11.25,
	}
	first := Summarize(figures)
	for i := 0; i < 5; i++ {
		if next := Summarize(figures); next != first {
			t.Fatalf("summary not deterministic:\nfirst: %s\nnext:  %s", first, next)
		}
	}
}
