// Package testutil provides common utility functions for testing.
package testutil

import (
	"fmt"
	"time"

	"github.com/iwvelando/agency-analytics/internal/dataset"
	"github.com/iwvelando/agency-analytics/pkg/datetime"
	"github.com/shopspring/decimal"
)

// AsOf is the fixed reference instant shared by fixtures.
var AsOf = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

// D parses a decimal literal and panics on error.
func D(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// Date parses a YYYY-MM-DD literal and panics on error.
func Date(value string) time.Time {
	return datetime.MustParseTime(datetime.DateLayout, value)
}

// EndToEndRecords is a single project with one paid invoice of 15750, one
// billable expense of 300 and 40 hours logged by an employee earning 95000.
func EndToEndRecords() dataset.Records {
	return dataset.Records{
		Projects: []dataset.Project{
			{ID: "proj-1", Name: "Website Redesign", ClientID: "client-1", Budget: D("45000"), Status: dataset.ProjectActive},
		},
		Clients: []dataset.Client{
			{ID: "client-1", Name: "Acme Corp", Satisfaction: 4.5, Status: dataset.ClientActive, TotalBilled: D("15750")},
		},
		Invoices: []dataset.Invoice{
			{ID: "INV-001", ProjectID: "proj-1", IssueDate: Date("2026-09-01"), Amount: D("15750"), Status: dataset.InvoicePaid},
		},
		Expenses: []dataset.Expense{
			{ID: "EXP-001", ProjectID: "proj-1", Category: "Software", Date: Date("2026-09-05"), Amount: D("300"), Billable: true},
		},
		TimeEntries: []dataset.TimeEntry{
			{ID: "TE-001", EmployeeID: "emp-1", ProjectID: "proj-1", Date: Date("2026-09-10"), Hours: D("40")},
		},
		TeamMembers: []dataset.TeamMember{
			{ID: "emp-1", Name: "Sarah Chen", AnnualSalary: "$95,000", Utilization: 85},
		},
	}
}

// AgencyRecords is a small but complete agency used across packages.
func AgencyRecords() dataset.Records {
	return dataset.Records{
		Projects: []dataset.Project{
			{ID: "proj-1", Name: "Website Redesign", ClientID: "client-1", Budget: D("45000"), Status: dataset.ProjectActive},
			{ID: "proj-2", Name: "Mobile App", ClientID: "client-2", Budget: D("80000"), Status: dataset.ProjectActive},
			{ID: "proj-3", Name: "Brand Guide", ClientID: "client-3", Budget: D("12000"), Status: dataset.ProjectCompleted},
			{ID: "proj-4", Name: "Internal Tools", Budget: D("0"), Status: dataset.ProjectPlanning},
		},
		Clients: []dataset.Client{
			{ID: "client-1", Name: "Acme Corp", Satisfaction: 4.8, Status: dataset.ClientActive, TotalBilled: D("25000")},
			{ID: "client-2", Name: "Globex", Satisfaction: 4.2, Status: dataset.ClientActive, TotalBilled: D("30000")},
			{ID: "client-3", Name: "Initech", Satisfaction: 3.1, Status: dataset.ClientChurned, TotalBilled: D("9000")},
			{ID: "client-4", Name: "Umbrella", Satisfaction: 4.0, Status: dataset.ClientOnboarding},
		},
		Invoices: []dataset.Invoice{
			{ID: "INV-001", ProjectID: "proj-1", IssueDate: Date("2026-08-01"), Amount: D("15750"), Status: dataset.InvoicePaid},
			{ID: "INV-002", ProjectID: "proj-1", IssueDate: Date("2026-09-01"), Amount: D("9250"), Status: dataset.InvoicePending},
			{ID: "INV-003", ProjectID: "proj-2", IssueDate: Date("2026-09-15"), Amount: D("30000"), Status: dataset.InvoiceOverdue},
			{ID: "INV-004", ProjectID: "proj-3", IssueDate: Date("2026-06-01"), Amount: D("9000"), Status: dataset.InvoicePaid},
		},
		Expenses: []dataset.Expense{
			{ID: "EXP-001", ProjectID: "proj-1", Category: "Software", Date: Date("2026-08-05"), Amount: D("300"), Billable: true},
			{ID: "EXP-002", ProjectID: "proj-2", Category: "Travel", Date: Date("2026-09-20"), Amount: D("1200"), Billable: true},
			{ID: "EXP-003", ProjectID: "proj-2", Category: "Software", Date: Date("2026-09-21"), Amount: D("450"), Billable: false},
			{ID: "EXP-004", Category: "Marketing", Date: Date("2026-07-01"), Amount: D("5000")},
			{ID: "EXP-005", Category: "Office Supplies", Date: Date("2026-07-15"), Amount: D("250.75")},
		},
		TimeEntries: []dataset.TimeEntry{
			{ID: "TE-001", EmployeeID: "emp-1", ProjectID: "proj-1", Date: Date("2026-08-10"), Hours: D("40")},
			{ID: "TE-002", EmployeeID: "emp-2", ProjectID: "proj-2", Date: Date("2026-09-16"), Hours: D("60")},
			{ID: "TE-003", EmployeeID: "emp-3", ProjectID: "proj-2", Date: Date("2026-09-17"), Hours: D("10")},
			{ID: "TE-004", EmployeeID: "emp-1", ProjectID: "proj-3", Date: Date("2026-05-20"), Hours: D("20")},
		},
		TeamMembers: []dataset.TeamMember{
			{ID: "emp-1", Name: "Sarah Chen", AnnualSalary: "$95,000", Utilization: 88},
			{ID: "emp-2", Name: "Marcus Johnson", AnnualSalary: "$104,000", Utilization: 92},
			{ID: "emp-3", Name: "Priya Patel", AnnualSalary: "TBD", Utilization: 70},
		},
		SalesLeads: []dataset.SalesLead{
			{ID: "lead-1", Name: "Stark Industries", PotentialValue: D("40000"), Probability: 50, ExpectedCloseDate: Date("2026-11-20"), Status: dataset.LeadProposal},
			{ID: "lead-2", Name: "Wayne Enterprises", PotentialValue: D("10000"), Probability: 25, ExpectedCloseDate: Date("2027-02-03"), Status: dataset.LeadContacted},
			{ID: "lead-3", Name: "Cyberdyne", PotentialValue: D("90000"), Probability: 80, ExpectedCloseDate: Date("2025-11-10"), Status: dataset.LeadNegotiation},
		},
		Tasks: []dataset.Task{
			{ID: "task-1", ProjectID: "proj-1", Title: "Wireframes", AssigneeID: "emp-1", DueDate: Date("2026-10-01"), Status: dataset.TaskDone},
			{ID: "task-2", ProjectID: "proj-2", Title: "API design", AssigneeID: "emp-2", DueDate: Date("2026-10-10"), Status: dataset.TaskInProgress},
			{ID: "task-3", ProjectID: "proj-2", Title: "Login screen", AssigneeID: "emp-3", DueDate: Date("2026-11-01"), Status: dataset.TaskToDo},
		},
	}
}

// ScaledRecords builds a synthetic agency with the given number of projects,
// each with its own client, two invoices, one expense and one time entry.
// Members are shared across projects in groups of ten.
func ScaledRecords(projects int) dataset.Records {
	var r dataset.Records
	members := projects/10 + 1
	for i := 0; i < members; i++ {
		r.TeamMembers = append(r.TeamMembers, dataset.TeamMember{
			ID:           fmt.Sprintf("emp-%d", i),
			Name:         fmt.Sprintf("Member %d", i),
			AnnualSalary: "104000",
			Utilization:  80,
		})
	}
	base := Date("2026-01-01")
	for i := 0; i < projects; i++ {
		projectID := fmt.Sprintf("proj-%d", i)
		clientID := fmt.Sprintf("client-%d", i)
		day := base.AddDate(0, 0, i%270)
		r.Projects = append(r.Projects, dataset.Project{
			ID: projectID, Name: fmt.Sprintf("Project %d", i), ClientID: clientID, Budget: D("20000"), Status: dataset.ProjectActive,
		})
		r.Clients = append(r.Clients, dataset.Client{
			ID: clientID, Name: fmt.Sprintf("Client %d", i), Satisfaction: 4, Status: dataset.ClientActive, TotalBilled: D("10000"),
		})
		r.Invoices = append(r.Invoices,
			dataset.Invoice{ID: fmt.Sprintf("INV-%d-a", i), ProjectID: projectID, IssueDate: day, Amount: D("6000"), Status: dataset.InvoicePaid},
			dataset.Invoice{ID: fmt.Sprintf("INV-%d-b", i), ProjectID: projectID, IssueDate: day.AddDate(0, 1, 0), Amount: D("4000"), Status: dataset.InvoicePending},
		)
		r.Expenses = append(r.Expenses, dataset.Expense{
			ID: fmt.Sprintf("EXP-%d", i), ProjectID: projectID, Category: "Software", Date: day, Amount: D("250"), Billable: true,
		})
		r.TimeEntries = append(r.TimeEntries, dataset.TimeEntry{
			ID: fmt.Sprintf("TE-%d", i), EmployeeID: fmt.Sprintf("emp-%d", i/10), ProjectID: projectID, Date: day, Hours: D("20"),
		})
	}
	return r
}
