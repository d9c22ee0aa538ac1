package main

import (
	"fmt"
	"time"

	"github.com/iwvelando/agency-analytics/internal/budget"
	"github.com/iwvelando/agency-analytics/internal/financials"
	"github.com/iwvelando/agency-analytics/internal/forecast"
	"github.com/iwvelando/agency-analytics/internal/report"
	"github.com/iwvelando/agency-analytics/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// run opens a session, lets build assemble the report and renders the
// requested sections to the command's output.
func run(cmd *cobra.Command, flags *rootFlags, now func() time.Time,
	build func(s *session) (report.Report, []output.Section, error)) error {
	s, err := openSession(flags, now)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.logger.Sync()
	}()

	r, sections, err := build(s)
	if err != nil {
		s.logger.Error("failed to compute results",
			zap.String("op", "main"),
			zap.String("command", cmd.Name()),
			zap.Error(err),
		)
		return err
	}
	return output.Render(cmd.OutOrStdout(), s.format, r, sections...)
}

func newReportCmd(flags *rootFlags, now func() time.Time) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Run every analysis and print the full report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, now, func(s *session) (report.Report, []output.Section, error) {
				r, err := s.generator.Generate(s.snapshot, s.scenarios, s.table, s.asOf)
				return r, output.AllSections, err
			})
		},
	}
}

func newFinancialsCmd(flags *rootFlags, now func() time.Time) *cobra.Command {
	return &cobra.Command{
		Use:   "financials [projectID...]",
		Short: "Show project profit and loss, for all projects or the given ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, now, func(s *session) (report.Report, []output.Section, error) {
				aggregator := s.generator.Aggregator()
				if len(args) == 0 {
					return report.Report{AsOf: s.asOf, Portfolio: aggregator.Portfolio(s.snapshot)},
						[]output.Section{output.SectionProjects, output.SectionPortfolio}, nil
				}

				projects := make([]financials.ProjectFinancials, 0, len(args))
				for _, id := range args {
					pf, err := aggregator.ComputeProjectFinancials(s.snapshot, id)
					if err != nil {
						return report.Report{}, nil, err
					}
					projects = append(projects, pf)
				}
				return report.Report{AsOf: s.asOf, Portfolio: financials.Summary{Projects: projects}},
					[]output.Section{output.SectionProjects}, nil
			})
		},
	}
}

func newHealthCmd(flags *rootFlags, now func() time.Time) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Score financial, client and team health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, now, func(s *session) (report.Report, []output.Section, error) {
				h := s.generator.Scorer().Compute(s.snapshot, s.asOf)
				return report.Report{AsOf: s.asOf, Health: h}, []output.Section{output.SectionHealth}, nil
			})
		},
	}
}

func newBudgetCmd(flags *rootFlags, now func() time.Time) *cobra.Command {
	return &cobra.Command{
		Use:   "budget",
		Short: "Compare annual category budgets with actuals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, now, func(s *session) (report.Report, []output.Section, error) {
				items := s.generator.Calculator().ComputeBudgetVsActuals(s.snapshot, s.table)
				return report.Report{AsOf: s.asOf, Budget: items, BudgetSummary: budget.Summarize(items)},
					[]output.Section{output.SectionBudget}, nil
			})
		},
	}
}

func newForecastCmd(flags *rootFlags, now func() time.Time) *cobra.Command {
	return &cobra.Command{
		Use:   "forecast",
		Short: "Project revenue and costs over the next 12 months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, now, func(s *session) (report.Report, []output.Section, error) {
				points, err := s.generator.Forecaster().Generate(s.snapshot, s.scenarios, s.asOf)
				if err != nil {
					return report.Report{}, nil, fmt.Errorf("failed to generate forecast: %w", err)
				}
				return report.Report{AsOf: s.asOf, Forecast: points, ForecastSummary: forecast.Summarize(points)},
					[]output.Section{output.SectionForecast}, nil
			})
		},
	}
}
