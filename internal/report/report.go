// Package report assembles every analysis of a dataset snapshot into a
// single result.
package report

import (
	"fmt"
	"time"

	"github.com/iwvelando/agency-analytics/internal/budget"
	"github.com/iwvelando/agency-analytics/internal/dataset"
	"github.com/iwvelando/agency-analytics/internal/financials"
	"github.com/iwvelando/agency-analytics/internal/forecast"
	"github.com/iwvelando/agency-analytics/internal/health"
	"go.uber.org/zap"
)

// Report holds the outputs of all four analyses for one instant.
type Report struct {
	AsOf            time.Time
	Portfolio       financials.Summary
	Health          health.AgencyHealth
	Budget          []budget.Item
	BudgetSummary   budget.Summary
	Forecast        []forecast.DataPoint
	ForecastSummary forecast.Summary
}

// Generator runs the analyses with shared options.
type Generator struct {
	aggregator *financials.Aggregator
	scorer     *health.Scorer
	calculator *budget.Calculator
	forecaster *forecast.Forecaster
	logger     *zap.Logger
}

// NewGenerator wires the analyses together. If logger is nil, it will use a
// no-op logger.
func NewGenerator(logger *zap.Logger, finOpts financials.Options, forecastOpts forecast.Options) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	aggregator := financials.NewAggregator(logger, finOpts)
	return &Generator{
		aggregator: aggregator,
		scorer:     health.NewScorer(logger, aggregator),
		calculator: budget.NewCalculator(logger, aggregator),
		forecaster: forecast.NewForecaster(logger, forecastOpts),
		logger:     logger,
	}
}

// Aggregator exposes the financial aggregator for per-project queries.
func (g *Generator) Aggregator() *financials.Aggregator { return g.aggregator }

// Scorer exposes the health scorer.
func (g *Generator) Scorer() *health.Scorer { return g.scorer }

// Calculator exposes the budget calculator.
func (g *Generator) Calculator() *budget.Calculator { return g.calculator }

// Forecaster exposes the forecaster.
func (g *Generator) Forecaster() *forecast.Forecaster { return g.forecaster }

// Generate computes the portfolio once and reuses it for health and budget.
func (g *Generator) Generate(snap *dataset.Snapshot, scenarios []forecast.Scenario, table budget.Table, asOf time.Time) (Report, error) {
	r := Report{AsOf: asOf}

	r.Portfolio = g.aggregator.Portfolio(snap)
	r.Health = g.scorer.ComputeWithPortfolio(snap, r.Portfolio, asOf)
	r.Budget = g.calculator.ComputeWithPortfolio(snap, table, r.Portfolio)
	r.BudgetSummary = budget.Summarize(r.Budget)

	points, err := g.forecaster.Generate(snap, scenarios, asOf)
	if err != nil {
		return r, fmt.Errorf("failed to generate forecast: %w", err)
	}
	r.Forecast = points
	r.ForecastSummary = forecast.Summarize(points)

	g.logger.Info("generated agency report",
		zap.String("op", "report.Generate"),
		zap.String("asOf", asOf.Format(time.RFC3339)),
		zap.Int("projects", len(r.Portfolio.Projects)),
		zap.Int("overallHealth", r.Health.Overall.Score),
		zap.Int("scenarios", len(scenarios)),
	)
	return r, nil
}
