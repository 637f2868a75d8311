// Package constants provides shared constants for the property-forecast application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// DefaultAppreciationRate is the assumed annual property appreciation
	// percentage used by the ROI projection. It is a fixed model constant,
	// not a user input.
	DefaultAppreciationRate = 5.0

	// EquityBuildFactor approximates the principal portion of cumulative
	// bond payments over a projection horizon. The true figure requires
	// summing the principal components of the amortization schedule; the
	// projection deliberately uses this flat coefficient instead.
	EquityBuildFactor = 0.4

	// MaxLoanTermYears is the longest bond term accepted from input.
	MaxLoanTermYears = 50

	// MaxInterestRate is the highest annual interest rate percentage
	// accepted from input.
	MaxInterestRate = 100.0
)

// ProjectionHorizonsYears are the forecast horizons, in years, reported by
// the ROI projection.
var ProjectionHorizonsYears = [2]int{5, 10}

// Purchase cost flat fees. These are the fixed conveyancing charges added on
// top of transfer duty and the tariff-based attorney fee.
const (
	// DeedsOfficeFee is the deeds office registration fee.
	DeedsOfficeFee = 2281.0

	// ElectronicTransferFee is the electronic instruction and postage fee
	// charged by the transferring attorney.
	ElectronicTransferFee = 1950.0
)

// VATMultiplier is applied to the tariff-based attorney fee (15% VAT).
const VATMultiplier = 1.15

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size for
	// JSON payloads (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)
