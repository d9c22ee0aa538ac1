// Package adapters provides adapter implementations between the raw
// configuration and the typed analytics packages.
package adapters

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/agency-analytics/internal/budget"
	"github.com/iwvelando/agency-analytics/internal/config"
	"github.com/iwvelando/agency-analytics/internal/dataset"
	"github.com/iwvelando/agency-analytics/internal/financials"
	"github.com/iwvelando/agency-analytics/internal/forecast"
	"github.com/iwvelando/agency-analytics/pkg/datetime"
	"github.com/iwvelando/agency-analytics/pkg/finance"
	"github.com/iwvelando/agency-analytics/pkg/money"
	"github.com/shopspring/decimal"
)

// amount parses an optional money field; empty means zero.
func amount(field, value string) (decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, nil
	}
	d, err := money.ParseAmount(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

// date parses an optional date field; empty means the zero time.
func date(field, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	t, err := datetime.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return t, nil
}

// enum checks an optional status against its allowed values.
func enum[T ~string](field, value string, allowed ...T) (T, error) {
	if value == "" {
		return "", nil
	}
	for _, a := range allowed {
		if string(a) == value {
			return a, nil
		}
	}
	return "", fmt.Errorf("%s: unknown value %q", field, value)
}

// ToRecords converts the raw dataset into typed records. The first malformed
// value aborts the conversion.
func ToRecords(d config.Dataset) (dataset.Records, error) {
	var r dataset.Records

	for _, p := range d.Projects {
		budgetAmount, err := amount("budget", p.Budget)
		if err != nil {
			return r, fmt.Errorf("project %s: %w", p.ID, err)
		}
		status, err := enum("status", p.Status,
			dataset.ProjectPlanning, dataset.ProjectActive, dataset.ProjectOnHold, dataset.ProjectCompleted)
		if err != nil {
			return r, fmt.Errorf("project %s: %w", p.ID, err)
		}
		r.Projects = append(r.Projects, dataset.Project{
			ID: p.ID, Name: p.Name, ClientID: p.ClientID, Budget: budgetAmount, Status: status,
		})
	}

	for _, c := range d.Clients {
		billed, err := amount("totalBilled", c.TotalBilled)
		if err != nil {
			return r, fmt.Errorf("client %s: %w", c.ID, err)
		}
		status, err := enum("status", c.Status, dataset.ClientActive, dataset.ClientOnboarding, dataset.ClientChurned)
		if err != nil {
			return r, fmt.Errorf("client %s: %w", c.ID, err)
		}
		r.Clients = append(r.Clients, dataset.Client{
			ID: c.ID, Name: c.Name, Satisfaction: c.Satisfaction, Status: status, TotalBilled: billed,
		})
	}

	for _, inv := range d.Invoices {
		value, err := amount("amount", inv.Amount)
		if err != nil {
			return r, fmt.Errorf("invoice %s: %w", inv.ID, err)
		}
		issued, err := date("issueDate", inv.IssueDate)
		if err != nil {
			return r, fmt.Errorf("invoice %s: %w", inv.ID, err)
		}
		status, err := enum("status", inv.Status, dataset.InvoiceDraft, dataset.InvoicePending,
			dataset.InvoicePaid, dataset.InvoiceOverdue, dataset.InvoiceCancelled)
		if err != nil {
			return r, fmt.Errorf("invoice %s: %w", inv.ID, err)
		}
		r.Invoices = append(r.Invoices, dataset.Invoice{
			ID: inv.ID, ProjectID: inv.ProjectID, IssueDate: issued, Amount: value, Status: status,
		})
	}

	for _, e := range d.Expenses {
		value, err := amount("amount", e.Amount)
		if err != nil {
			return r, fmt.Errorf("expense %s: %w", e.ID, err)
		}
		spent, err := date("date", e.Date)
		if err != nil {
			return r, fmt.Errorf("expense %s: %w", e.ID, err)
		}
		r.Expenses = append(r.Expenses, dataset.Expense{
			ID: e.ID, ProjectID: e.ProjectID, Category: e.Category, Date: spent, Amount: value, Billable: e.Billable,
		})
	}

	for _, te := range d.TimeEntries {
		hours, err := amount("hours", te.Hours)
		if err != nil {
			return r, fmt.Errorf("time entry %s: %w", te.ID, err)
		}
		logged, err := date("date", te.Date)
		if err != nil {
			return r, fmt.Errorf("time entry %s: %w", te.ID, err)
		}
		r.TimeEntries = append(r.TimeEntries, dataset.TimeEntry{
			ID: te.ID, EmployeeID: te.EmployeeID, ProjectID: te.ProjectID, TaskID: te.TaskID, Date: logged, Hours: hours,
		})
	}

	// Salaries stay raw; costing falls back when they cannot be parsed.
	for _, m := range d.TeamMembers {
		r.TeamMembers = append(r.TeamMembers, dataset.TeamMember{
			ID: m.ID, Name: m.Name, AnnualSalary: m.AnnualSalary, Utilization: m.Utilization,
		})
	}

	for _, l := range d.SalesLeads {
		value, err := amount("potentialValue", l.PotentialValue)
		if err != nil {
			return r, fmt.Errorf("sales lead %s: %w", l.ID, err)
		}
		closing, err := date("expectedCloseDate", l.ExpectedCloseDate)
		if err != nil {
			return r, fmt.Errorf("sales lead %s: %w", l.ID, err)
		}
		status, err := enum("status", l.Status, dataset.LeadNew, dataset.LeadContacted, dataset.LeadProposal,
			dataset.LeadNegotiation, dataset.LeadWon, dataset.LeadLost)
		if err != nil {
			return r, fmt.Errorf("sales lead %s: %w", l.ID, err)
		}
		r.SalesLeads = append(r.SalesLeads, dataset.SalesLead{
			ID: l.ID, Name: l.Name, PotentialValue: value, Probability: l.Probability, ExpectedCloseDate: closing, Status: status,
		})
	}

	for _, task := range d.Tasks {
		due, err := date("dueDate", task.DueDate)
		if err != nil {
			return r, fmt.Errorf("task %s: %w", task.ID, err)
		}
		status, err := enum("status", task.Status, dataset.TaskToDo, dataset.TaskInProgress, dataset.TaskReview, dataset.TaskDone)
		if err != nil {
			return r, fmt.Errorf("task %s: %w", task.ID, err)
		}
		r.Tasks = append(r.Tasks, dataset.Task{
			ID: task.ID, ProjectID: task.ProjectID, Title: task.Title, AssigneeID: task.AssigneeID, DueDate: due, Status: status,
		})
	}

	return r, nil
}

// ScenarioID derives a stable identifier for a scenario that was configured
// without one, so repeated runs over the same file agree.
func ScenarioID(s config.Scenario) string {
	key := strings.Join([]string{s.Name, s.Kind, s.StartMonth, s.Value}, "|")
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

// ToScenarios converts configured scenarios into forecast scenarios.
func ToScenarios(scenarios []config.Scenario) ([]forecast.Scenario, error) {
	if scenarios == nil {
		return nil, nil
	}

	out := make([]forecast.Scenario, 0, len(scenarios))
	for _, s := range scenarios {
		kind, err := finance.ParseKind(s.Kind)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		value, err := money.ParseAmount(s.Value)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: value: %w", s.Name, err)
		}
		start, err := datetime.ParseDate(s.StartMonth)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: startMonth: %w", s.Name, err)
		}

		id := s.ID
		if id == "" {
			id = ScenarioID(s)
		}
		out = append(out, forecast.Scenario{
			ID:         id,
			Name:       s.Name,
			Kind:       kind,
			Value:      value,
			StartMonth: datetime.StartOfMonth(start),
			Active:     s.Active,
		})
	}
	return out, nil
}

// ToBudgetTable applies overrides to the default budget table.
func ToBudgetTable(overrides []config.BudgetOverride) (budget.Table, error) {
	values := make(map[string]decimal.Decimal, len(overrides))
	for _, o := range overrides {
		d, err := money.ParseAmount(o.Amount)
		if err != nil {
			return nil, fmt.Errorf("budget %s: %w", o.Category, err)
		}
		values[o.Category] = d
	}
	return budget.DefaultTable().WithOverrides(values), nil
}

// ToFinancialOptions applies costing overrides to the default options.
func ToFinancialOptions(c config.CostingConfig) (financials.Options, error) {
	opts := financials.DefaultOptions()
	if c.StandardAnnualHours != "" {
		hours, err := money.ParseAmount(c.StandardAnnualHours)
		if err != nil {
			return opts, fmt.Errorf("standardAnnualHours: %w", err)
		}
		opts.StandardAnnualHours = hours
	}
	if c.FallbackHourlyRate != "" {
		rate, err := money.ParseAmount(c.FallbackHourlyRate)
		if err != nil {
			return opts, fmt.Errorf("fallbackHourlyRate: %w", err)
		}
		opts.FallbackHourlyRate = rate
	}
	return opts, nil
}

// ToForecastOptions applies forecast overrides to the default options.
func ToForecastOptions(c config.ForecastConfig) (forecast.Options, error) {
	opts := forecast.DefaultOptions()
	if c.BaseMonthlyRevenue != "" {
		base, err := money.ParseAmount(c.BaseMonthlyRevenue)
		if err != nil {
			return opts, fmt.Errorf("baseMonthlyRevenue: %w", err)
		}
		opts.BaseMonthlyRevenue = base
	}
	return opts, nil
}

// ResolveAsOf parses a YYYY-MM-DD override, falling back to now.
func ResolveAsOf(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now.UTC(), nil
	}
	t, err := time.Parse(datetime.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid as-of date %q, expected %s: %w", value, datetime.DateLayout, err)
	}
	return t, nil
}
