// Package financials rolls invoices, expenses and logged time into
// per-project profit and loss.
package financials

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/iwvelando/agency-analytics/internal/dataset"
	"github.com/iwvelando/agency-analytics/pkg/constants"
	"github.com/iwvelando/agency-analytics/pkg/money"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrNotFound is returned when the requested project does not exist.
var ErrNotFound = errors.New("project not found")

// CostKind distinguishes direct expenses from labour.
type CostKind string

const (
	CostExpense CostKind = "Expense"
	CostTime    CostKind = "Time"
)

// RevenueItem is one invoice recognized as project revenue.
type RevenueItem struct {
	InvoiceID   string
	Description string
	Amount      decimal.Decimal
	Status      dataset.InvoiceStatus
	Date        time.Time
}

// CostItem is one billable expense or time entry charged to a project.
type CostItem struct {
	Kind        CostKind
	Reference   string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// ProjectFinancials is the profit and loss breakdown of one project.
type ProjectFinancials struct {
	ProjectID    string
	ProjectName  string
	ClientID     string
	Budget       decimal.Decimal
	RevenueItems []RevenueItem
	CostItems    []CostItem
	TotalRevenue decimal.Decimal
	DirectCost   decimal.Decimal
	TimeCost     decimal.Decimal
	TotalCost    decimal.Decimal
	NetProfit    decimal.Decimal
	ProfitMargin float64 // percent of revenue
	BudgetUsage  float64 // percent of budget
}

// Options tunes how labour is costed.
type Options struct {
	// StandardAnnualHours divides an annual salary into an hourly rate.
	StandardAnnualHours decimal.Decimal
	// FallbackHourlyRate is used when a salary cannot be parsed to a positive number.
	FallbackHourlyRate decimal.Decimal
}

// DefaultOptions returns 2080 annual hours and a fallback rate of 75/hour.
func DefaultOptions() Options {
	return Options{
		StandardAnnualHours: decimal.NewFromInt(constants.StandardAnnualHours),
		FallbackHourlyRate:  decimal.NewFromInt(constants.FallbackHourlyRate),
	}
}

// Aggregator computes project financials from a dataset snapshot.
type Aggregator struct {
	opts   Options
	logger *zap.Logger
}

// NewAggregator creates an aggregator. If logger is nil, it will use a no-op
// logger. Non-positive option values are replaced with the defaults.
func NewAggregator(logger *zap.Logger, opts Options) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaults := DefaultOptions()
	if !opts.StandardAnnualHours.IsPositive() {
		opts.StandardAnnualHours = defaults.StandardAnnualHours
	}
	if !opts.FallbackHourlyRate.IsPositive() {
		opts.FallbackHourlyRate = defaults.FallbackHourlyRate
	}
	return &Aggregator{opts: opts, logger: logger}
}

// HourlyRate returns the internal cost rate of a team member: annual salary
// divided by standard annual hours, or the fallback rate when the salary is
// not a positive number.
func (a *Aggregator) HourlyRate(member dataset.TeamMember) decimal.Decimal {
	salary, ok := money.PositiveOr(member.AnnualSalary, decimal.Zero)
	if !ok {
		a.logger.Debug("using fallback hourly rate",
			zap.String("op", "financials.HourlyRate"),
			zap.String("member", member.ID),
			zap.String("salary", member.AnnualSalary),
		)
		return a.opts.FallbackHourlyRate
	}
	return salary.Div(a.opts.StandardAnnualHours)
}

// ComputeProjectFinancials produces the profit and loss breakdown of one
// project. It returns ErrNotFound when the project does not exist.
func (a *Aggregator) ComputeProjectFinancials(snap *dataset.Snapshot, projectID string) (ProjectFinancials, error) {
	project, ok := snap.Project(projectID)
	if !ok {
		return ProjectFinancials{}, fmt.Errorf("%w: %s", ErrNotFound, projectID)
	}

	result := ProjectFinancials{
		ProjectID:    project.ID,
		ProjectName:  project.Name,
		ClientID:     project.ClientID,
		Budget:       project.Budget,
		TotalRevenue: decimal.Zero,
		DirectCost:   decimal.Zero,
		TimeCost:     decimal.Zero,
	}

	for _, inv := range snap.InvoicesFor(project.ID) {
		result.RevenueItems = append(result.RevenueItems, RevenueItem{
			InvoiceID:   inv.ID,
			Description: "Invoice " + inv.ID,
			Amount:      inv.Amount,
			Status:      inv.Status,
			Date:        inv.IssueDate,
		})
		result.TotalRevenue = result.TotalRevenue.Add(inv.Amount)
	}

	for _, exp := range snap.ExpensesFor(project.ID) {
		if !exp.Billable {
			continue
		}
		result.CostItems = append(result.CostItems, CostItem{
			Kind:        CostExpense,
			Reference:   exp.ID,
			Description: exp.Category,
			Amount:      exp.Amount,
			Date:        exp.Date,
		})
		result.DirectCost = result.DirectCost.Add(exp.Amount)
	}

	for _, entry := range snap.TimeEntriesFor(project.ID) {
		member, found := snap.Member(entry.EmployeeID)
		if !found {
			a.logger.Debug("time entry references unknown team member",
				zap.String("op", "financials.ComputeProjectFinancials"),
				zap.String("entry", entry.ID),
				zap.String("member", entry.EmployeeID),
			)
			member = dataset.TeamMember{ID: entry.EmployeeID, Name: entry.EmployeeID}
		}
		cost := a.HourlyRate(member).Mul(entry.Hours)
		result.CostItems = append(result.CostItems, CostItem{
			Kind:        CostTime,
			Reference:   entry.ID,
			Description: fmt.Sprintf("%s: %sh", member.Name, entry.Hours.String()),
			Amount:      cost,
			Date:        entry.Date,
		})
		result.TimeCost = result.TimeCost.Add(cost)
	}

	sort.SliceStable(result.CostItems, func(i, j int) bool {
		return result.CostItems[i].Date.After(result.CostItems[j].Date)
	})

	result.TotalCost = result.DirectCost.Add(result.TimeCost)
	result.NetProfit = result.TotalRevenue.Sub(result.TotalCost)
	result.ProfitMargin = money.Percent(result.NetProfit, result.TotalRevenue)
	if project.Budget.IsPositive() {
		result.BudgetUsage = money.Percent(result.TotalCost, project.Budget)
	}

	a.logger.Debug("computed project financials",
		zap.String("op", "financials.ComputeProjectFinancials"),
		zap.String("project", project.ID),
		zap.String("revenue", result.TotalRevenue.String()),
		zap.String("cost", result.TotalCost.String()),
	)
	return result, nil
}

// ComputeAll computes financials for every project in dataset order.
func (a *Aggregator) ComputeAll(snap *dataset.Snapshot) []ProjectFinancials {
	projects := snap.Projects()
	results := make([]ProjectFinancials, 0, len(projects))
	seen := make(map[string]bool, len(projects))
	for _, p := range projects {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		pf, err := a.ComputeProjectFinancials(snap, p.ID)
		if err != nil {
			// Unreachable for IDs taken from the snapshot itself.
			a.logger.Warn("failed to compute project financials",
				zap.String("op", "financials.ComputeAll"),
				zap.String("project", p.ID),
				zap.Error(err),
			)
			continue
		}
		results = append(results, pf)
	}
	return results
}
