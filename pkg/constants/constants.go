// Package constants provides shared constants for the agency-analytics application.
package constants

// DateLayout is the format expected for dates in config files.
const DateLayout = "2006-01-02"

// MonthLayout is the format used for month-granular dates in config files.
const MonthLayout = "2006-01"

// MonthLabelLayout is the display format of forecast month buckets, e.g. "Jan 2026".
const MonthLabelLayout = "Jan 2006"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// ForecastHorizonMonths is the number of month buckets in a forecast
	ForecastHorizonMonths = 12

	// StandardAnnualHours is the assumed number of working hours per year (40h x 52w)
	StandardAnnualHours = 2080

	// FallbackHourlyRate is the internal cost rate used when a salary cannot be parsed
	FallbackHourlyRate = 75

	// DefaultBaseMonthlyRevenue is the recurring revenue assumed for every forecast month
	DefaultBaseMonthlyRevenue = 50000
)

// Health scoring constants
const (
	// TargetProfitMargin is the organization-wide margin that earns the full margin sub-score
	TargetProfitMargin = 35.0

	// ConcentrationCeiling is the top-client revenue share at which the concentration sub-score hits zero
	ConcentrationCeiling = 50.0

	// SatisfactionFloor is the average satisfaction at which the satisfaction sub-score starts
	SatisfactionFloor = 3.5

	// SatisfactionMax is the top of the client satisfaction scale
	SatisfactionMax = 5.0

	// MaxProbability is the top of the sales lead probability scale
	MaxProbability = 100.0

	// ChurnCeiling is the churn rate at which the churn sub-score hits zero
	ChurnCeiling = 10.0

	// IdealUtilization is the team utilization that earns the full utilization sub-score
	IdealUtilization = 85.0

	// UtilizationTolerance is the distance from ideal utilization at which the sub-score hits zero
	UtilizationTolerance = 25.0

	// OverdueTaskCeiling is the overdue task count at which the overdue sub-score hits zero
	OverdueTaskCeiling = 5.0

	// FinancialWeight, ClientWeight and TeamWeight weight the overall health score
	FinancialWeight = 0.40
	ClientWeight    = 0.35
	TeamWeight      = 0.25

	// Rating thresholds
	ExcellentThreshold = 85
	GoodThreshold      = 70
	FairThreshold      = 50
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)
