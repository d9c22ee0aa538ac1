// Package dataset defines the read-only entity records the analytics core
// computes over.
package dataset

import (
	"time"

	"github.com/iwvelando/agency-analytics/pkg/datetime"
	"github.com/shopspring/decimal"
)

// ProjectStatus is the lifecycle stage of a project.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "Planning"
	ProjectActive    ProjectStatus = "Active"
	ProjectOnHold    ProjectStatus = "OnHold"
	ProjectCompleted ProjectStatus = "Completed"
)

// ClientStatus is the relationship stage of a client.
type ClientStatus string

const (
	ClientActive     ClientStatus = "Active"
	ClientOnboarding ClientStatus = "Onboarding"
	ClientChurned    ClientStatus = "Churned"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "Draft"
	InvoicePending   InvoiceStatus = "Pending"
	InvoicePaid      InvoiceStatus = "Paid"
	InvoiceOverdue   InvoiceStatus = "Overdue"
	InvoiceCancelled InvoiceStatus = "Cancelled"
)

// LeadStatus is the pipeline stage of a sales lead.
type LeadStatus string

const (
	LeadNew         LeadStatus = "New"
	LeadContacted   LeadStatus = "Contacted"
	LeadProposal    LeadStatus = "Proposal"
	LeadNegotiation LeadStatus = "Negotiation"
	LeadWon         LeadStatus = "Won"
	LeadLost        LeadStatus = "Lost"
)

// TaskStatus is the board column of a task.
type TaskStatus string

const (
	TaskToDo       TaskStatus = "ToDo"
	TaskInProgress TaskStatus = "InProgress"
	TaskReview     TaskStatus = "Review"
	TaskDone       TaskStatus = "Done"
)

// Project is a piece of client work with a fixed budget.
type Project struct {
	ID       string
	Name     string
	ClientID string
	Budget   decimal.Decimal
	Status   ProjectStatus
}

// Client is an organization the agency bills.
type Client struct {
	ID           string
	Name         string
	Satisfaction float64 // 0.0 - 5.0
	Status       ClientStatus
	TotalBilled  decimal.Decimal
}

// Invoice is a bill raised against a project.
type Invoice struct {
	ID        string
	ProjectID string
	IssueDate time.Time
	Amount    decimal.Decimal
	Status    InvoiceStatus
}

// Expense is money spent by the agency, optionally on behalf of a project.
type Expense struct {
	ID        string
	ProjectID string // empty when not tied to a project
	Category  string
	Date      time.Time
	Amount    decimal.Decimal
	Billable  bool
}

// TimeEntry is a block of hours an employee logged against a project.
type TimeEntry struct {
	ID         string
	EmployeeID string
	ProjectID  string
	TaskID     string // optional
	Date       time.Time
	Hours      decimal.Decimal
}

// TeamMember is an employee. AnnualSalary is kept exactly as the HR record
// delivers it (e.g. "$95,000") and parsed where it is used.
type TeamMember struct {
	ID           string
	Name         string
	AnnualSalary string
	Utilization  float64 // percent, may exceed 100
}

// SalesLead is a prospective deal in the pipeline.
type SalesLead struct {
	ID                string
	Name              string
	PotentialValue    decimal.Decimal
	Probability       float64 // 0 - 100
	ExpectedCloseDate time.Time
	Status            LeadStatus
}

// Task is a unit of project work with a due date.
type Task struct {
	ID         string
	ProjectID  string
	Title      string
	AssigneeID string
	DueDate    time.Time
	Status     TaskStatus
}

// IsOverdue reports whether the task is unfinished and its due date falls
// before the calendar day of asOf.
func (t Task) IsOverdue(asOf time.Time) bool {
	if t.Status == TaskDone || t.DueDate.IsZero() {
		return false
	}
	return datetime.StartOfDay(t.DueDate).Before(datetime.StartOfDay(asOf))
}
