// Package constants provides shared constants for the bagbuddy-roi application.
package constants

// Digital ads benchmark defaults (Meta 2024, WordStream 2024).
const (
	// DefaultCPM is the default cost per 1000 impressions
	DefaultCPM = 10.00

	// DefaultCTR is the default click-through rate percentage
	DefaultCTR = 1.0

	// DefaultAdsConversionRate is the default post-click conversion rate percentage
	DefaultAdsConversionRate = 2.5
)

// Flyer campaign benchmark defaults (DMA 2023, USPS 2024).
const (
	// DefaultPrintCost is the default print cost per flyer
	DefaultPrintCost = 0.12

	// DefaultDistributionCost is the default distribution cost per flyer
	DefaultDistributionCost = 0.10

	// DefaultResponseRate is the default flyer response rate percentage
	DefaultResponseRate = 0.8

	// DefaultFlyerConversionRate is the default response-to-sale conversion rate percentage
	DefaultFlyerConversionRate = 10.0
)

// BagBuddy platform defaults.
const (
	// DefaultCostPerSlot is the price a brand pays per bag slot
	DefaultCostPerSlot = 0.15

	// DefaultBagsPerQuarter is the minimum quarterly bag distribution volume
	DefaultBagsPerQuarter = 5000.0

	// DefaultSlotsPerBag is the number of brand slots per bag
	DefaultSlotsPerBag = 8.0

	// DefaultImpressionsPerBag is the estimated impressions per bag per brand
	DefaultImpressionsPerBag = 5.0

	// DefaultAvgRevenue is the default average revenue per conversion
	DefaultAvgRevenue = 25.0

	// TreesPerRevenueDollar converts revenue into trees planted (1 per $1000)
	TreesPerRevenueDollar = 1000.0
)

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// QuartersPerYear is the number of quarters in a year
	QuartersPerYear = 4

	// MonthsPerQuarter is the number of months in a quarter
	MonthsPerQuarter = 3

	// DaysPerMonth is the accounting month length used for daily-cap limits
	DaysPerMonth = 30

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatExcel is the formula-linked xlsx output format
	OutputFormatExcel = "xlsx"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the report API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
