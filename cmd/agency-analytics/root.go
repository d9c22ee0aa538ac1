package main

import (
	"fmt"
	"time"

	"github.com/iwvelando/agency-analytics/internal/budget"
	"github.com/iwvelando/agency-analytics/internal/config"
	"github.com/iwvelando/agency-analytics/internal/dataset"
	"github.com/iwvelando/agency-analytics/internal/forecast"
	"github.com/iwvelando/agency-analytics/internal/report"
	"github.com/iwvelando/agency-analytics/pkg/adapters"
	"github.com/iwvelando/agency-analytics/pkg/constants"
	"github.com/iwvelando/agency-analytics/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootFlags struct {
	config       string
	outputFormat string
	logLevel     string
	asOf         string
}

// session is everything a subcommand needs after the config is loaded.
type session struct {
	logger    *zap.Logger
	snapshot  *dataset.Snapshot
	scenarios []forecast.Scenario
	table     budget.Table
	generator *report.Generator
	asOf      time.Time
	format    string
}

func newRootCmd(now func() time.Time) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:          "agency-analytics",
		Short:        "Agency financial analytics",
		Long:         "Compute project profitability, agency health, budget variance and a 12-month forecast from a YAML dataset.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.config, "config", constants.DefaultConfigFile, "path to configuration file")
	root.PersistentFlags().StringVar(&flags.outputFormat, "output-format", "", "type of output override: pretty, csv, yaml")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flags.asOf, "as-of", "", "reference date override (YYYY-MM-DD), defaults to today")

	root.AddCommand(
		newReportCmd(flags, now),
		newFinancialsCmd(flags, now),
		newHealthCmd(flags, now),
		newBudgetCmd(flags, now),
		newForecastCmd(flags, now),
	)
	return root
}

// openSession loads the configuration, builds the logger and converts the
// dataset. The caller must sync the returned logger.
func openSession(flags *rootFlags, now func() time.Time) (*session, error) {
	conf, err := config.LoadConfiguration(flags.config)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", flags.config, err)
	}

	logger, err := newLogger(conf.Logging, flags.logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	s := &session{logger: logger}

	// Determine output format (CLI override takes precedence over config)
	s.format = conf.Output.Format
	if flags.outputFormat != "" {
		s.format = flags.outputFormat
	}
	if s.format == "" {
		s.format = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(s.format); err != nil {
		return nil, err
	}

	asOf := conf.AsOf
	if flags.asOf != "" {
		asOf = flags.asOf
	}
	if s.asOf, err = adapters.ResolveAsOf(asOf, now()); err != nil {
		return nil, err
	}

	records, err := adapters.ToRecords(conf.Dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if s.scenarios, err = adapters.ToScenarios(conf.Scenarios); err != nil {
		return nil, fmt.Errorf("failed to parse scenarios: %w", err)
	}
	if s.table, err = adapters.ToBudgetTable(conf.Budgets); err != nil {
		return nil, fmt.Errorf("failed to parse budgets: %w", err)
	}
	finOpts, err := adapters.ToFinancialOptions(conf.Costing)
	if err != nil {
		return nil, fmt.Errorf("failed to parse costing: %w", err)
	}
	forecastOpts, err := adapters.ToForecastOptions(conf.Forecast)
	if err != nil {
		return nil, fmt.Errorf("failed to parse forecast: %w", err)
	}

	categories := make([]string, 0, len(s.table))
	for _, alloc := range budget.DefaultTable() {
		categories = append(categories, alloc.Category)
	}
	warnings := conf.ValidateConfiguration(categories)
	warnings = append(warnings, validation.ValidateDataset(records)...)
	warnings = append(warnings, validation.ValidateScenarios(s.scenarios, s.asOf)...)
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	s.snapshot = dataset.New(records)
	s.generator = report.NewGenerator(logger, finOpts, forecastOpts)

	logger.Debug("loaded dataset",
		zap.String("op", "main"),
		zap.String("config", flags.config),
		zap.String("asOf", s.asOf.Format(constants.DateLayout)),
		zap.Int("projects", len(records.Projects)),
		zap.Int("scenarios", len(s.scenarios)),
	)
	return s, nil
}
