package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/avanzyl/property-forecast/internal/config"
	"github.com/avanzyl/property-forecast/internal/forecast"
)

func sampleForecast(t *testing.T) forecast.Forecast {
	t.Helper()
	result, err := forecast.GenerateForecast(nil, config.Property{
		Name:            "Test Scenario",
		Active:          true,
		PurchasePrice:   1200000,
		Deposit:         200000,
		InterestRate:    10.75,
		LoanTermYears:   20,
		MonthlyLevies:   1800,
		MonthlyRates:    950,
		ExpectedRent:    10500,
		VacancyRate:     5,
		MaintenanceRate: 1,
	})
	if err != nil {
		t.Fatalf("failed to generate forecast: %v", err)
	}
	return *result
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrettyFormat(t *testing.T) {
	results := []forecast.Forecast{sampleForecast(t)}

	output := captureStdout(t, func() {
		PrettyFormat(results)
	})

	if !strings.Contains(output, "--- Forecast for Test Scenario ---") {
		t.Errorf("PrettyFormat missing scenario header")
	}
	if !strings.Contains(output, "Loan amount:           R1,000,000.00") {
		t.Errorf("PrettyFormat missing grouped loan amount, got:\n%s", output)
	}
	if !strings.Contains(output, "Breakeven:") {
		t.Errorf("PrettyFormat missing breakeven line")
	}
	if !strings.Contains(output, results[0].Summary) {
		t.Errorf("PrettyFormat missing narrative summary")
	}
}

func TestCsvFormat(t *testing.T) {
	results := []forecast.Forecast{sampleForecast(t)}

	output := captureStdout(t, func() {
		CsvFormat(results)
	})

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], `"name"`) {
		t.Errorf("CSV header missing name column")
	}
	if !strings.Contains(lines[1], `"Test Scenario"`) {
		t.Errorf("CSV row missing scenario name")
	}
	if !strings.Contains(lines[1], `"1000000.00"`) {
		t.Errorf("CSV row missing loan amount, got: %s", lines[1])
	}
}

func TestCsvFormatUnboundedBreakeven(t *testing.T) {
	result := sampleForecast(t)
	result.Input.ExpectedRent = 0
	regenerated, err := forecast.GenerateForecast(nil, result.Input)
	if err != nil {
		t.Fatalf("failed to regenerate forecast: %v", err)
	}

	output := captureStdout(t, func() {
		CsvFormat([]forecast.Forecast{*regenerated})
	})

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if !strings.HasSuffix(lines[1], `,""`) {
		t.Errorf("expected empty breakeven column for unbounded result, got: %s", lines[1])
	}
}
