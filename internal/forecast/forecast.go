// Package forecast defines the data structures related to a 12-month revenue
// and cost projection and includes functions for computing it with and
// without what-if scenarios.
package forecast

import (
	"fmt"
	"time"

	"github.com/iwvelando/agency-analytics/internal/dataset"
	"github.com/iwvelando/agency-analytics/pkg/constants"
	"github.com/iwvelando/agency-analytics/pkg/datetime"
	"github.com/iwvelando/agency-analytics/pkg/finance"
	"github.com/iwvelando/agency-analytics/pkg/money"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	monthsPerYear = decimal.NewFromInt(constants.MonthsPerYear)
	hundred       = decimal.NewFromInt(100)
)

// Scenario is a caller-defined adjustment layered on top of the baseline.
type Scenario struct {
	ID         string
	Name       string
	Kind       finance.Kind
	Value      decimal.Decimal
	StartMonth time.Time
	Active     bool
}

// GetName returns the scenario name, falling back to its ID.
func (s Scenario) GetName() string {
	if s.Name == "" {
		return s.ID
	}
	return s.Name
}

// GetKind returns the scenario kind
func (s Scenario) GetKind() finance.Kind { return s.Kind }

// GetValue returns the monthly or one-off delta
func (s Scenario) GetValue() decimal.Decimal { return s.Value }

// GetStartMonth returns the month the scenario takes effect
func (s Scenario) GetStartMonth() time.Time { return s.StartMonth }

// IsActive reports whether the scenario contributes to the forecast
func (s Scenario) IsActive() bool { return s.Active }

// DataPoint holds the baseline and scenario-adjusted figures of one month.
type DataPoint struct {
	Month           time.Time
	Label           string
	BaselineRevenue decimal.Decimal
	BaselineCosts   decimal.Decimal
	ScenarioRevenue decimal.Decimal
	ScenarioCosts   decimal.Decimal
}

// Options tunes the baseline.
type Options struct {
	// BaseMonthlyRevenue is recurring revenue assumed for every month.
	BaseMonthlyRevenue decimal.Decimal
}

// DefaultOptions returns a base monthly revenue of 50000.
func DefaultOptions() Options {
	return Options{BaseMonthlyRevenue: decimal.NewFromInt(constants.DefaultBaseMonthlyRevenue)}
}

// Forecaster projects revenue and cost over a fixed horizon.
type Forecaster struct {
	opts   Options
	engine *finance.ForecastEngine
	logger *zap.Logger
}

// NewForecaster creates a forecaster. If logger is nil, it will use a no-op
// logger.
func NewForecaster(logger *zap.Logger, opts Options) *Forecaster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Forecaster{
		opts:   opts,
		engine: finance.NewForecastEngine(logger),
		logger: logger,
	}
}

// BaselineCost returns the monthly payroll: the sum of every positive
// annual salary divided by twelve.
func (f *Forecaster) BaselineCost(members []dataset.TeamMember) decimal.Decimal {
	total := decimal.Zero
	for _, m := range members {
		salary, ok := money.PositiveOr(m.AnnualSalary, decimal.Zero)
		if !ok {
			f.logger.Debug("excluding unusable salary from baseline cost",
				zap.String("op", "forecast.BaselineCost"),
				zap.String("member", m.ID),
				zap.String("salary", m.AnnualSalary),
			)
			continue
		}
		total = total.Add(salary.Div(monthsPerYear))
	}
	return total
}

// BaselineRevenue returns the base recurring revenue plus the
// probability-weighted value of every lead expected to close in month.
func (f *Forecaster) BaselineRevenue(month time.Time, leads []dataset.SalesLead) decimal.Decimal {
	total := f.opts.BaseMonthlyRevenue
	for _, lead := range leads {
		if !datetime.SameMonth(lead.ExpectedCloseDate, month) {
			continue
		}
		weighted := lead.PotentialValue.Mul(decimal.NewFromFloat(lead.Probability)).Div(hundred)
		total = total.Add(weighted)
	}
	return total
}

// Generate produces exactly twelve consecutive monthly data points starting
// with the month containing asOf. Scenarios outside the horizon never apply.
func (f *Forecaster) Generate(snap *dataset.Snapshot, scenarios []Scenario, asOf time.Time) ([]DataPoint, error) {
	start := datetime.StartOfMonth(asOf)
	cost := f.BaselineCost(snap.TeamMembers())
	leads := snap.SalesLeads()

	schedule := make([]finance.ScenarioWithSchedule, 0, len(scenarios))
	for _, s := range scenarios {
		if !s.Active {
			f.logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", s.GetName()),
				zap.String("op", "forecast.Generate"),
			)
			continue
		}
		schedule = append(schedule, s)
	}

	points := make([]DataPoint, 0, constants.ForecastHorizonMonths)
	for i := 0; i < constants.ForecastHorizonMonths; i++ {
		month := datetime.OffsetMonth(start, i)
		baseline := finance.MonthlyAmounts{
			Revenue: f.BaselineRevenue(month, leads),
			Cost:    cost,
		}

		adjusted, err := f.engine.ProcessMonthlyChanges(month, baseline, schedule)
		if err != nil {
			return points, err
		}

		points = append(points, DataPoint{
			Month:           month,
			Label:           datetime.MonthLabel(month),
			BaselineRevenue: baseline.Revenue,
			BaselineCosts:   baseline.Cost,
			ScenarioRevenue: adjusted.Revenue,
			ScenarioCosts:   adjusted.Cost,
		})
	}

	return points, nil
}

// Summary totals a forecast over its horizon.
type Summary struct {
	BaselineRevenue decimal.Decimal
	BaselineCosts   decimal.Decimal
	ScenarioRevenue decimal.Decimal
	ScenarioCosts   decimal.Decimal
}

// BaselineNet is baseline revenue minus baseline costs.
func (s Summary) BaselineNet() decimal.Decimal {
	return s.BaselineRevenue.Sub(s.BaselineCosts)
}

// ScenarioNet is scenario revenue minus scenario costs.
func (s Summary) ScenarioNet() decimal.Decimal {
	return s.ScenarioRevenue.Sub(s.ScenarioCosts)
}

// NetImpact is how much the scenarios change net income over the horizon.
func (s Summary) NetImpact() decimal.Decimal {
	return s.ScenarioNet().Sub(s.BaselineNet())
}

// Summarize totals every data point.
func Summarize(points []DataPoint) Summary {
	s := Summary{
		BaselineRevenue: decimal.Zero,
		BaselineCosts:   decimal.Zero,
		ScenarioRevenue: decimal.Zero,
		ScenarioCosts:   decimal.Zero,
	}
	for _, p := range points {
		s.BaselineRevenue = s.BaselineRevenue.Add(p.BaselineRevenue)
		s.BaselineCosts = s.BaselineCosts.Add(p.BaselineCosts)
		s.ScenarioRevenue = s.ScenarioRevenue.Add(p.ScenarioRevenue)
		s.ScenarioCosts = s.ScenarioCosts.Add(p.ScenarioCosts)
	}
	return s
}
