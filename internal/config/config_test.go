package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `---
scenarios:
  - name: Sea Point flat
    active: true
    purchasePrice: 1200000
    deposit: 200000
    interestRate: 10.75
    loanTermYears: 20
    monthlyLevies: 1800
    monthlyRates: 950
    expectedRent: 10500
    vacancyRate: 5
    maintenanceRate: 1
    propertyType: Apartment
    location: Sea Point, Cape Town
    bedrooms: 2
    bathrooms: 1
  - name: Paper exercise
    active: false
    purchasePrice: 900000
    deposit: 0
    interestRate: 11.25
    loanTermYears: 30
    expectedRent: 8000
logging:
  level: debug
  format: console
output:
  format: csv
`

func writeSampleConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		t.Fatalf("failed to write sample config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeSampleConfig(t))
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if len(conf.Scenarios) != 2 {
		t.Fatalf("loaded %d scenarios, expected 2", len(conf.Scenarios))
	}

	first := conf.Scenarios[0]
	if first.Name != "Sea Point flat" {
		t.Errorf("Name = %q", first.Name)
	}
	if !first.Active {
		t.Error("first scenario should be active")
	}
	if first.PurchasePrice != 1200000 || first.Deposit != 200000 {
		t.Errorf("price/deposit = %v/%v", first.PurchasePrice, first.Deposit)
	}
	if first.InterestRate != 10.75 || first.LoanTermYears != 20 {
		t.Errorf("rate/term = %v/%v", first.InterestRate, first.LoanTermYears)
	}
	if first.Bedrooms != 2 || first.PropertyType != "Apartment" {
		t.Errorf("descriptive fields = %d/%q", first.Bedrooms, first.PropertyType)
	}

	if conf.Scenarios[1].Active {
		t.Error("second scenario should be inactive")
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("logging config = %+v", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %q", conf.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader failed: %v", err)
	}
	if len(conf.Scenarios) != 2 {
		t.Fatalf("loaded %d scenarios, expected 2", len(conf.Scenarios))
	}
	if conf.Scenarios[0].ExpectedRent != 10500 {
		t.Errorf("ExpectedRent = %v", conf.Scenarios[0].ExpectedRent)
	}
}

func TestPropertyValidate(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := conf.Scenarios[0].Validate(); err != nil {
		t.Errorf("valid scenario rejected: %v", err)
	}

	broken := conf.Scenarios[0]
	broken.Deposit = broken.PurchasePrice * 2
	if err := broken.Validate(); err == nil {
		t.Error("deposit above price accepted")
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	empty := Configuration{}
	warnings := empty.ValidateConfiguration()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "no scenarios") {
		t.Errorf("empty config warnings = %v", warnings)
	}

	inactive := Configuration{Scenarios: []Property{{Name: "idle"}}}
	warnings = inactive.ValidateConfiguration()
	found := false
	for _, warning := range warnings {
		if strings.Contains(warning, "no scenarios are active") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected inactive warning, got %v", warnings)
	}

	duplicated := Configuration{Scenarios: []Property{
		{Name: "twin", Active: true, ExpectedRent: 100},
		{Name: "twin", Active: true, ExpectedRent: 100},
	}}
	warnings = duplicated.ValidateConfiguration()
	found = false
	for _, warning := range warnings {
		if strings.Contains(warning, "duplicate scenario name") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected duplicate warning, got %v", warnings)
	}
}
