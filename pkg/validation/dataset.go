package validation

import (
	"fmt"
	"time"

	"github.com/iwvelando/agency-analytics/internal/dataset"
	"github.com/iwvelando/agency-analytics/internal/forecast"
	"github.com/iwvelando/agency-analytics/pkg/constants"
	"github.com/iwvelando/agency-analytics/pkg/datetime"
	"github.com/iwvelando/agency-analytics/pkg/money"
)

// ValidateDataset reports records that will be computed over but probably do
// not mean what they say: dangling references, out-of-range percentages,
// unparseable salaries and negative money.
func ValidateDataset(r dataset.Records) []string {
	var warnings []string

	projects := make(map[string]bool, len(r.Projects))
	for _, p := range r.Projects {
		if projects[p.ID] {
			warnings = append(warnings, fmt.Sprintf("Project '%s' is defined more than once, only the first is used", p.ID))
		}
		projects[p.ID] = true
	}
	clients := make(map[string]bool, len(r.Clients))
	for _, c := range r.Clients {
		clients[c.ID] = true
		if c.Satisfaction < 0 || c.Satisfaction > constants.SatisfactionMax {
			warnings = append(warnings, fmt.Sprintf("Client '%s' satisfaction %.1f is outside 0-5", c.ID, c.Satisfaction))
		}
	}
	members := make(map[string]bool, len(r.TeamMembers))
	for _, m := range r.TeamMembers {
		members[m.ID] = true
		if salary, err := money.ParseAmount(m.AnnualSalary); err != nil || !salary.IsPositive() {
			warnings = append(warnings, fmt.Sprintf("Team member '%s' salary %q is not a positive amount, the fallback hourly rate applies",
				m.ID, m.AnnualSalary))
		}
	}

	for _, p := range r.Projects {
		if p.ClientID != "" && !clients[p.ClientID] {
			warnings = append(warnings, fmt.Sprintf("Project '%s' references unknown client '%s'", p.ID, p.ClientID))
		}
		if p.Budget.IsNegative() {
			warnings = append(warnings, fmt.Sprintf("Project '%s' has a negative budget (%s)", p.ID, p.Budget))
		}
	}
	for _, inv := range r.Invoices {
		if !projects[inv.ProjectID] {
			warnings = append(warnings, fmt.Sprintf("Invoice '%s' references unknown project '%s'", inv.ID, inv.ProjectID))
		}
	}
	for _, e := range r.Expenses {
		if e.ProjectID != "" && !projects[e.ProjectID] {
			warnings = append(warnings, fmt.Sprintf("Expense '%s' references unknown project '%s'", e.ID, e.ProjectID))
		}
		if e.Amount.IsNegative() {
			warnings = append(warnings, fmt.Sprintf("Expense '%s' has a negative amount (%s)", e.ID, e.Amount))
		}
	}
	for _, te := range r.TimeEntries {
		if !projects[te.ProjectID] {
			warnings = append(warnings, fmt.Sprintf("Time entry '%s' references unknown project '%s'", te.ID, te.ProjectID))
		}
		if !members[te.EmployeeID] {
			warnings = append(warnings, fmt.Sprintf("Time entry '%s' references unknown team member '%s', the fallback hourly rate applies",
				te.ID, te.EmployeeID))
		}
	}
	for _, l := range r.SalesLeads {
		if l.Probability < 0 || l.Probability > constants.MaxProbability {
			warnings = append(warnings, fmt.Sprintf("Sales lead '%s' probability %.1f is outside 0-100", l.ID, l.Probability))
		}
	}

	return warnings
}

// ValidateScenarios reports scenarios that can never affect a forecast
// anchored at asOf.
func ValidateScenarios(scenarios []forecast.Scenario, asOf time.Time) []string {
	var warnings []string

	first := datetime.MonthIndex(datetime.StartOfMonth(asOf))
	last := first + constants.ForecastHorizonMonths - 1
	for _, s := range scenarios {
		if !s.Active {
			continue
		}
		start := datetime.MonthIndex(s.StartMonth)
		switch {
		case start > last:
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' starts in %s, after the forecast horizon ends",
				s.GetName(), datetime.MonthLabel(s.StartMonth)))
		case start < first && !s.Kind.IsRecurring():
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' is a one-time %s before the forecast horizon starts",
				s.GetName(), datetime.MonthLabel(s.StartMonth)))
		}
	}

	return warnings
}
