package testutil

import (
	"testing"
	"time"

	"github.com/iwvelando/agency-analytics/internal/dataset"
)

func TestD(t *testing.T) {
	if got := D("15750.25").String(); got != "15750.25" {
		t.Errorf("D() = %s, expected 15750.25", got)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("D() expected panic for a malformed literal")
		}
	}()
	D("not-a-number")
}

func TestDate(t *testing.T) {
	got := Date("2026-09-01")
	want := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Date() = %v, expected %v", got, want)
	}
}

func TestFixturesAreConsistent(t *testing.T) {
	tests := []struct {
		name    string
		records dataset.Records
	}{
		{"End to end", EndToEndRecords()},
		{"Agency", AgencyRecords()},
		{"Scaled", ScaledRecords(25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := make(map[string]bool, len(tt.records.Projects))
			for _, p := range tt.records.Projects {
				if projects[p.ID] {
					t.Errorf("duplicate project %s", p.ID)
				}
				projects[p.ID] = true
			}
			for _, inv := range tt.records.Invoices {
				if !projects[inv.ProjectID] {
					t.Errorf("invoice %s references unknown project %s", inv.ID, inv.ProjectID)
				}
			}
			for _, te := range tt.records.TimeEntries {
				if !projects[te.ProjectID] {
					t.Errorf("time entry %s references unknown project %s", te.ID, te.ProjectID)
				}
			}
		})
	}
}

func TestScaledRecords(t *testing.T) {
	r := ScaledRecords(25)
	if len(r.Projects) != 25 || len(r.Clients) != 25 || len(r.Invoices) != 50 {
		t.Errorf("ScaledRecords(25) = %d projects, %d clients, %d invoices", len(r.Projects), len(r.Clients), len(r.Invoices))
	}
	if len(r.TeamMembers) != 3 {
		t.Errorf("Expected 3 team members, got %d", len(r.TeamMembers))
	}
	members := make(map[string]bool, len(r.TeamMembers))
	for _, m := range r.TeamMembers {
		members[m.ID] = true
	}
	for _, te := range r.TimeEntries {
		if !members[te.EmployeeID] {
			t.Errorf("time entry %s references unknown member %s", te.ID, te.EmployeeID)
		}
	}
}
