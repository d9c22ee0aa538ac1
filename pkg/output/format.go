// Package output provides utilities for formatting and displaying analytics results.
package output

import (
	"io"

	"github.com/iwvelando/agency-analytics/internal/health"
	"github.com/iwvelando/agency-analytics/internal/report"
	"github.com/iwvelando/agency-analytics/pkg/constants"
	"github.com/iwvelando/agency-analytics/pkg/validation"
)

// Section names one part of a report.
type Section string

const (
	SectionProjects  Section = "projects"
	SectionPortfolio Section = "portfolio"
	SectionHealth    Section = "health"
	SectionBudget    Section = "budget"
	SectionForecast  Section = "forecast"
)

// AllSections is the order sections appear in a full report.
var AllSections = []Section{SectionProjects, SectionPortfolio, SectionHealth, SectionBudget, SectionForecast}

// Render writes the requested sections of r in the given format. With no
// sections, the whole report is written.
func Render(w io.Writer, format string, r report.Report, sections ...Section) error {
	if err := validation.ValidateOutputFormat(format); err != nil {
		return err
	}
	if len(sections) == 0 {
		sections = AllSections
	}

	switch format {
	case constants.OutputFormatCSV:
		return CsvFormat(w, r, sections...)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, r, sections...)
	default:
		return PrettyFormat(w, r, sections...)
	}
}

type healthEntry struct {
	name  string
	score health.HealthScore
}

func healthEntries(r report.Report) []healthEntry {
	return []healthEntry{
		{"Overall", r.Health.Overall},
		{"Financial", r.Health.Financial},
		{"Client", r.Health.Client},
		{"Team", r.Health.Team},
	}
}
