// Package finance provides common financial calculation utilities.
package finance

import (
	"fmt"
	"time"

	"github.com/iwvelando/agency-analytics/pkg/datetime"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Kind identifies how a scenario adjusts the forecast.
type Kind string

const (
	RecurringRevenue Kind = "RecurringRevenue"
	RecurringCost    Kind = "RecurringCost"
	OneTimeRevenue   Kind = "OneTimeRevenue"
	OneTimeCost      Kind = "OneTimeCost"
)

// ParseKind validates a scenario kind name.
func ParseKind(value string) (Kind, error) {
	switch k := Kind(value); k {
	case RecurringRevenue, RecurringCost, OneTimeRevenue, OneTimeCost:
		return k, nil
	}
	return "", fmt.Errorf("unknown scenario kind %q, expected one of %s, %s, %s, %s",
		value, RecurringRevenue, RecurringCost, OneTimeRevenue, OneTimeCost)
}

// IsRecurring reports whether the kind persists past its start month.
func (k Kind) IsRecurring() bool {
	return k == RecurringRevenue || k == RecurringCost
}

// IsRevenue reports whether the kind adjusts revenue rather than cost.
func (k Kind) IsRevenue() bool {
	return k == RecurringRevenue || k == OneTimeRevenue
}

// ScenarioWithSchedule interface for what-if adjustments anchored to a start month
type ScenarioWithSchedule interface {
	GetName() string
	GetKind() Kind
	GetValue() decimal.Decimal
	GetStartMonth() time.Time
	IsActive() bool
}

// AppliesTo reports whether a scenario contributes to the given month bucket.
// Recurring scenarios apply from their start month onwards; one-time
// scenarios apply to their start month only.
func AppliesTo(s ScenarioWithSchedule, month time.Time) bool {
	if !s.IsActive() {
		return false
	}
	if s.GetKind().IsRecurring() {
		return datetime.MonthOnOrAfter(month, s.GetStartMonth())
	}
	return datetime.SameMonth(month, s.GetStartMonth())
}

// MonthlyAmounts is a revenue/cost pair for one month.
type MonthlyAmounts struct {
	Revenue decimal.Decimal
	Cost    decimal.Decimal
}

// Add returns the element-wise sum of two pairs.
func (m MonthlyAmounts) Add(other MonthlyAmounts) MonthlyAmounts {
	return MonthlyAmounts{
		Revenue: m.Revenue.Add(other.Revenue),
		Cost:    m.Cost.Add(other.Cost),
	}
}

// ScenarioProcessor handles scenario delta processing
type ScenarioProcessor struct {
	logger *zap.Logger
}

// NewScenarioProcessor creates a new scenario processor with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewScenarioProcessor(logger *zap.Logger) *ScenarioProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScenarioProcessor{logger: logger}
}

// ProcessScenariosForMonth sums the revenue and cost deltas of every scenario
// that applies to the given month. Deltas are additive, so the order of
// scenarios does not affect the result.
func (sp *ScenarioProcessor) ProcessScenariosForMonth(month time.Time, scenarios []ScenarioWithSchedule) MonthlyAmounts {
	delta := MonthlyAmounts{Revenue: decimal.Zero, Cost: decimal.Zero}
	for _, s := range scenarios {
		if s == nil {
			sp.logger.Warn("Skipping nil scenario")
			continue
		}
		if !AppliesTo(s, month) {
			continue
		}

		sp.logger.Debug("Scenario active",
			zap.String("month", datetime.MonthLabel(month)),
			zap.String("scenario", s.GetName()),
			zap.String("kind", string(s.GetKind())),
			zap.String("value", s.GetValue().String()),
		)
		if s.GetKind().IsRevenue() {
			delta.Revenue = delta.Revenue.Add(s.GetValue())
		} else {
			delta.Cost = delta.Cost.Add(s.GetValue())
		}
	}
	return delta
}

// ForecastEngine coordinates applying scenarios on top of a monthly baseline
type ForecastEngine struct {
	scenarioProcessor *ScenarioProcessor
	logger            *zap.Logger
}

// NewForecastEngine creates a new forecast engine
func NewForecastEngine(logger *zap.Logger) *ForecastEngine {
	if logger == nil {
		// Create a no-op logger if none provided
		logger = zap.NewNop()
	}

	return &ForecastEngine{
		scenarioProcessor: NewScenarioProcessor(logger),
		logger:            logger,
	}
}

// ProcessMonthlyChanges returns the baseline for a month adjusted by every
// applicable scenario.
func (fe *ForecastEngine) ProcessMonthlyChanges(month time.Time, baseline MonthlyAmounts, scenarios []ScenarioWithSchedule) (MonthlyAmounts, error) {
	if fe.scenarioProcessor == nil {
		return baseline, fmt.Errorf("forecast engine not properly initialized")
	}
	return baseline.Add(fe.scenarioProcessor.ProcessScenariosForMonth(month, scenarios)), nil
}
