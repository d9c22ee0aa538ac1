// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/agency-analytics/pkg/validation"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. AGENCY_ASOF.
const EnvPrefix = "AGENCY"

// Configuration holds all configuration for agency-analytics.
type Configuration struct {
	AsOf      string `yaml:"asOf,omitempty"` // YYYY-MM-DD, defaults to today
	Costing   CostingConfig
	Forecast  ForecastConfig
	Budgets   []BudgetOverride
	Dataset   Dataset
	Scenarios []Scenario
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
	Format string `yaml:"format,omitempty"` // pretty, csv, yaml
}

// CostingConfig tunes how logged hours are turned into cost. Empty values
// keep the defaults.
type CostingConfig struct {
	StandardAnnualHours string
	FallbackHourlyRate  string
}

// ForecastConfig tunes the forecast baseline.
type ForecastConfig struct {
	BaseMonthlyRevenue string
}

// BudgetOverride replaces the annual budget of one category.
type BudgetOverride struct {
	Category string
	Amount   string
}

// Dataset holds the raw entity records. Money values are strings so that
// formatted amounts such as "$95,000" survive decoding.
type Dataset struct {
	Projects    []Project
	Clients     []Client
	Invoices    []Invoice
	Expenses    []Expense
	TimeEntries []TimeEntry
	TeamMembers []TeamMember
	SalesLeads  []SalesLead
	Tasks       []Task
}

// Project is a raw project record.
type Project struct {
	ID       string
	Name     string
	ClientID string
	Budget   string
	Status   string
}

// Client is a raw client record.
type Client struct {
	ID           string
	Name         string
	Satisfaction float64
	Status       string
	TotalBilled  string
}

// Invoice is a raw invoice record.
type Invoice struct {
	ID        string
	ProjectID string
	IssueDate string
	Amount    string
	Status    string
}

// Expense is a raw expense record.
type Expense struct {
	ID        string
	ProjectID string
	Category  string
	Date      string
	Amount    string
	Billable  bool
}

// TimeEntry is a raw time entry record.
type TimeEntry struct {
	ID         string
	EmployeeID string
	ProjectID  string
	TaskID     string
	Date       string
	Hours      string
}

// TeamMember is a raw team member record.
type TeamMember struct {
	ID           string
	Name         string
	AnnualSalary string
	Utilization  float64
}

// SalesLead is a raw sales lead record.
type SalesLead struct {
	ID                string
	Name              string
	PotentialValue    string
	Probability       float64
	ExpectedCloseDate string
	Status            string
}

// Task is a raw task record.
type Task struct {
	ID         string
	ProjectID  string
	Title      string
	AssigneeID string
	DueDate    string
	Status     string
}

// Scenario is a what-if adjustment applied on top of the forecast baseline.
type Scenario struct {
	ID         string
	Name       string
	Kind       string // RecurringRevenue, RecurringCost, OneTimeRevenue, OneTimeCost
	Value      string
	StartMonth string // YYYY-MM or YYYY-MM-DD
	Active     bool
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Malformed values are reported by the adapters that parse
// them; this only flags settings that parse but will not do what was meant.
func (c *Configuration) ValidateConfiguration(knownCategories []string) []string {
	var warnings []string

	categories := make([]string, 0, len(c.Budgets))
	for _, b := range c.Budgets {
		categories = append(categories, b.Category)
	}
	warnings = append(warnings, validation.ValidateBudgetCategories(categories, knownCategories)...)

	if c.Forecast.BaseMonthlyRevenue != "" && strings.HasPrefix(strings.TrimSpace(c.Forecast.BaseMonthlyRevenue), "-") {
		warnings = append(warnings, fmt.Sprintf("Forecast base monthly revenue is negative (%s)", c.Forecast.BaseMonthlyRevenue))
	}

	names := make([]string, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		name := s.Name
		if name == "" {
			name = s.ID
		}
		names = append(names, name)
		if !s.Active {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' is inactive and will not affect the forecast", name))
		}
	}
	warnings = append(warnings, validation.ValidateUniqueNames("Scenario", names)...)

	return warnings
}
