// Package budget compares fixed annual category budgets against actuals.
package budget

import (
	"github.com/iwvelando/agency-analytics/internal/dataset"
	"github.com/iwvelando/agency-analytics/internal/financials"
	"github.com/iwvelando/agency-analytics/pkg/money"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Category names with dedicated actuals; every other category is matched
// against expense categories.
const (
	CategoryRevenue  = "Revenue"
	CategorySalaries = "Salaries"
)

// Allocation is the budgeted amount for one category.
type Allocation struct {
	Category string
	Amount   decimal.Decimal
}

// Table is an ordered set of category allocations.
type Table []Allocation

// DefaultTable returns a fresh copy of the standard annual budget.
func DefaultTable() Table {
	return Table{
		{Category: CategoryRevenue, Amount: decimal.NewFromInt(600000)},
		{Category: CategorySalaries, Amount: decimal.NewFromInt(450000)},
		{Category: "Marketing", Amount: decimal.NewFromInt(30000)},
		{Category: "Software", Amount: decimal.NewFromInt(15000)},
		{Category: "Travel", Amount: decimal.NewFromInt(10000)},
		{Category: "Office Supplies", Amount: decimal.NewFromInt(5000)},
	}
}

// WithOverrides returns a copy of t with amounts replaced for the named
// categories. Unknown categories are ignored so the category set stays fixed.
func (t Table) WithOverrides(overrides map[string]decimal.Decimal) Table {
	out := make(Table, len(t))
	copy(out, t)
	for i := range out {
		if amount, ok := overrides[out[i].Category]; ok {
			out[i].Amount = amount
		}
	}
	return out
}

// Item is the budget-versus-actual comparison of one category. A positive
// variance means over budget for costs and above target for revenue.
type Item struct {
	Category string
	Budgeted decimal.Decimal
	Actual   decimal.Decimal
	Variance decimal.Decimal
}

// IsRevenue reports whether the item tracks income rather than spend.
func (i Item) IsRevenue() bool {
	return i.Category == CategoryRevenue
}

// Calculator computes budget variance.
type Calculator struct {
	aggregator *financials.Aggregator
	logger     *zap.Logger
}

// NewCalculator creates a calculator. If aggregator is nil, one with default
// options is used.
func NewCalculator(logger *zap.Logger, aggregator *financials.Aggregator) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if aggregator == nil {
		aggregator = financials.NewAggregator(logger, financials.DefaultOptions())
	}
	return &Calculator{aggregator: aggregator, logger: logger}
}

// ComputeBudgetVsActuals returns one item per table category in table order.
func (c *Calculator) ComputeBudgetVsActuals(snap *dataset.Snapshot, table Table) []Item {
	return c.ComputeWithPortfolio(snap, table, c.aggregator.Portfolio(snap))
}

// ComputeWithPortfolio is ComputeBudgetVsActuals reusing a computed portfolio.
// Revenue is invoice-basis; expense categories include non-billable spend.
func (c *Calculator) ComputeWithPortfolio(snap *dataset.Snapshot, table Table, portfolio financials.Summary) []Item {
	spend := make(map[string]decimal.Decimal)
	for _, e := range snap.Expenses() {
		if current, ok := spend[e.Category]; ok {
			spend[e.Category] = current.Add(e.Amount)
		} else {
			spend[e.Category] = e.Amount
		}
	}

	items := make([]Item, 0, len(table))
	for _, alloc := range table {
		var actual decimal.Decimal
		switch alloc.Category {
		case CategoryRevenue:
			actual = portfolio.TotalRevenue
		case CategorySalaries:
			actual = c.totalSalaries(snap)
		default:
			actual = spend[alloc.Category]
		}
		items = append(items, Item{
			Category: alloc.Category,
			Budgeted: alloc.Amount,
			Actual:   actual,
			Variance: actual.Sub(alloc.Amount),
		})
	}
	return items
}

func (c *Calculator) totalSalaries(snap *dataset.Snapshot) decimal.Decimal {
	total := decimal.Zero
	for _, m := range snap.TeamMembers() {
		salary, ok := money.PositiveOr(m.AnnualSalary, decimal.Zero)
		if !ok {
			c.logger.Debug("excluding unusable salary from actuals",
				zap.String("op", "budget.ComputeBudgetVsActuals"),
				zap.String("member", m.ID),
				zap.String("salary", m.AnnualSalary),
			)
			continue
		}
		total = total.Add(salary)
	}
	return total
}

// Summary totals the cost categories of a variance report.
type Summary struct {
	BudgetedCosts decimal.Decimal
	ActualCosts   decimal.Decimal
	OverBudget    []string // cost categories with positive variance
	RevenueGap    decimal.Decimal
}

// Summarize rolls up a variance report.
func Summarize(items []Item) Summary {
	s := Summary{BudgetedCosts: decimal.Zero, ActualCosts: decimal.Zero, RevenueGap: decimal.Zero}
	for _, item := range items {
		if item.IsRevenue() {
			s.RevenueGap = s.RevenueGap.Add(item.Variance)
			continue
		}
		s.BudgetedCosts = s.BudgetedCosts.Add(item.Budgeted)
		s.ActualCosts = s.ActualCosts.Add(item.Actual)
		if item.Variance.IsPositive() {
			s.OverBudget = append(s.OverBudget, item.Category)
		}
	}
	return s
}
