// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"

	"github.com/avanzyl/property-forecast/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for property-forecast.
type Configuration struct {
	Scenarios []Property    `yaml:"scenarios"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Property holds one property scenario: the financing and rental parameters
// the forecast engine consumes, plus descriptive fields that pass through to
// the report unmodified.
type Property struct {
	Name   string `yaml:"name" json:"name"`
	Active bool   `yaml:"active" json:"active"`

	PurchasePrice   float64 `yaml:"purchasePrice" json:"purchasePrice"`
	Deposit         float64 `yaml:"deposit" json:"deposit"`
	InterestRate    float64 `yaml:"interestRate" json:"interestRate"`       // annual %
	LoanTermYears   int     `yaml:"loanTermYears" json:"loanTermYears"`
	MonthlyLevies   float64 `yaml:"monthlyLevies" json:"monthlyLevies"`
	MonthlyRates    float64 `yaml:"monthlyRates" json:"monthlyRates"`
	ExpectedRent    float64 `yaml:"expectedRent" json:"expectedRent"`
	VacancyRate     float64 `yaml:"vacancyRate" json:"vacancyRate"`         // %
	MaintenanceRate float64 `yaml:"maintenanceRate" json:"maintenanceRate"` // % of price per year

	PropertyType string `yaml:"propertyType" json:"propertyType"`
	Location     string `yaml:"location" json:"location"`
	Bedrooms     int    `yaml:"bedrooms" json:"bedrooms"`
	Bathrooms    int    `yaml:"bathrooms" json:"bathrooms"`
}

// Validate checks the property's numeric fields at the engine boundary.
func (p *Property) Validate() error {
	return validation.ValidateProperty(validation.PropertyFields{
		PurchasePrice:   p.PurchasePrice,
		Deposit:         p.Deposit,
		InterestRate:    p.InterestRate,
		LoanTermYears:   p.LoanTermYears,
		MonthlyLevies:   p.MonthlyLevies,
		MonthlyRates:    p.MonthlyRates,
		ExpectedRent:    p.ExpectedRent,
		VacancyRate:     p.VacancyRate,
		MaintenanceRate: p.MaintenanceRate,
	})
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML configuration from an in-memory
// reader, used by the HTTP server.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard input errors surface per scenario when the forecast
// runs; these are advisory only.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Scenarios) == 0 {
		warnings = append(warnings, "configuration contains no scenarios")
		return warnings
	}

	active := 0
	seen := make(map[string]struct{})
	for _, scenario := range c.Scenarios {
		if scenario.Active {
			active++
		}
		if _, duplicate := seen[scenario.Name]; duplicate && scenario.Name != "" {
			warnings = append(warnings, fmt.Sprintf("duplicate scenario name '%s'", scenario.Name))
		}
		seen[scenario.Name] = struct{}{}

		if scenario.Active && scenario.ExpectedRent == 0 {
			warnings = append(warnings, fmt.Sprintf("scenario '%s' has no expected rent; yields and cash flow will be zero or negative", scenario.Name))
		}
	}
	if active == 0 {
		warnings = append(warnings, "no scenarios are active")
	}

	return warnings
}
