package output

import (
	"bytes"
	"encoding/csv"
	"regexp"
	"strings"
	"testing"

	"github.com/iwvelando/agency-analytics/internal/budget"
	"github.com/iwvelando/agency-analytics/internal/dataset"
	"github.com/iwvelando/agency-analytics/internal/financials"
	"github.com/iwvelando/agency-analytics/internal/forecast"
	"github.com/iwvelando/agency-analytics/internal/health"
	"github.com/iwvelando/agency-analytics/internal/report"
	"github.com/iwvelando/agency-analytics/pkg/testutil"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func agencyReport(t *testing.T) report.Report {
	t.Helper()
	g := report.NewGenerator(zap.NewNop(), financials.DefaultOptions(), forecast.DefaultOptions())
	r, err := g.Generate(dataset.New(testutil.AgencyRecords()), nil, budget.DefaultTable(), testutil.AsOf)
	if err != nil {
		t.Fatalf("Generate() returned error: %v", err)
	}
	return r
}

func render(t *testing.T, format string, r report.Report, sections ...Section) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, format, r, sections...); err != nil {
		t.Fatalf("Render(%s) returned error: %v", format, err)
	}
	return ansi.ReplaceAllString(buf.String(), "")
}

func TestPrettyFormat(t *testing.T) {
	output := render(t, "pretty", agencyReport(t))

	expected := []string{
		"--- Project financials ---",
		"proj-1 Website Redesign",
		"$25,000.00",
		"$1,826.92",
		"--- Portfolio ---",
		"Total revenue: $64,000.00",
		"Globex",
		"46.9%",
		"--- Agency health as of 2026-10-15 ---",
		"Overall:    58/100 Fair",
		"- Client churn rate is 25.0%",
		"- 1 overdue task",
		"+ 1 client onboarding",
		"--- Budget vs actuals ---",
		"-$536,000.00",
		"below target",
		"under budget",
		"--- 12-month forecast ---",
		"Nov 2026",
		"$70,000.00",
		"Scenario impact on net income: $0.00",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("PrettyFormat missing %q", want)
		}
	}
}

func TestPrettyFormatSingleSection(t *testing.T) {
	output := render(t, "pretty", agencyReport(t), SectionHealth)

	if !strings.Contains(output, "Agency health") {
		t.Errorf("PrettyFormat missing health section")
	}
	for _, unwanted := range []string{"Project financials", "Budget vs actuals", "12-month forecast"} {
		if strings.Contains(output, unwanted) {
			t.Errorf("PrettyFormat rendered unrequested section %q", unwanted)
		}
	}
}

func TestCsvFormat(t *testing.T) {
	output := render(t, "csv", agencyReport(t), SectionBudget, SectionForecast)

	reader := csv.NewReader(strings.NewReader(output))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("CsvFormat produced invalid csv: %v", err)
	}

	// Budget header + 6 rows, forecast header + 12 rows.
	if len(records) != 1+6+1+12 {
		t.Fatalf("CsvFormat produced %d records, expected 20", len(records))
	}

	expected := [][]string{
		{"category", "budgeted", "actual", "variance"},
		{"Revenue", "600000.00", "64000.00", "-536000.00"},
	}
	for i, row := range expected {
		if strings.Join(records[i], ",") != strings.Join(row, ",") {
			t.Errorf("record %d = %v, expected %v", i, records[i], row)
		}
	}

	if got := strings.Join(records[7], ","); got != "month,baseline_revenue,baseline_costs,scenario_revenue,scenario_costs" {
		t.Errorf("forecast header = %s", got)
	}
	if got := strings.Join(records[8], ","); got != "2026-10,50000.00,16583.33,50000.00,16583.33" {
		t.Errorf("first forecast row = %s", got)
	}
}

func TestCsvFormatQuotesFields(t *testing.T) {
	r := agencyReport(t)
	r.Portfolio.Projects[0].ProjectName = `Redesign, "phase 2"`

	output := render(t, "csv", r, SectionProjects)
	if !strings.Contains(output, `"Redesign, ""phase 2"""`) {
		t.Errorf("CsvFormat did not quote a field containing a comma:\n%s", output)
	}
}

func TestYAMLFormat(t *testing.T) {
	output := render(t, "yaml", agencyReport(t))

	var doc yamlDocument
	if err := yaml.Unmarshal([]byte(output), &doc); err != nil {
		t.Fatalf("YAMLFormat produced invalid yaml: %v", err)
	}

	if doc.AsOf != "2026-10-15" {
		t.Errorf("asOf = %s, expected 2026-10-15", doc.AsOf)
	}
	if len(doc.Projects) != 4 || doc.Projects[0].TimeCost != "1826.92" {
		t.Errorf("unexpected projects %+v", doc.Projects)
	}
	if doc.Portfolio == nil || doc.Portfolio.TotalRevenue != "64000.00" {
		t.Errorf("unexpected portfolio %+v", doc.Portfolio)
	}
	if doc.Health["Overall"].Score != 58 || doc.Health["Overall"].Rating != "Fair" {
		t.Errorf("unexpected overall health %+v", doc.Health["Overall"])
	}
	if len(doc.Budget) != 6 || doc.Budget[5].Actual != "250.75" {
		t.Errorf("unexpected budget %+v", doc.Budget)
	}
	if len(doc.Forecast) != 12 || doc.Forecast[1].BaselineRevenue != "70000.00" {
		t.Errorf("unexpected forecast %+v", doc.Forecast)
	}
}

func TestYAMLFormatOmitsUnrequestedSections(t *testing.T) {
	output := render(t, "yaml", agencyReport(t), SectionBudget)
	if strings.Contains(output, "forecast:") || strings.Contains(output, "projects:") {
		t.Errorf("YAMLFormat rendered unrequested sections:\n%s", output)
	}
	if !strings.Contains(output, "budget:") {
		t.Errorf("YAMLFormat missing budget section")
	}
}

func TestRenderErrors(t *testing.T) {
	r := agencyReport(t)
	var buf bytes.Buffer

	if err := Render(&buf, "json", r); err == nil {
		t.Errorf("Render() expected error for unsupported format")
	}
	for _, format := range []string{"pretty", "csv", "yaml"} {
		if err := Render(&buf, format, r, Section("invoices")); err == nil {
			t.Errorf("Render(%s) expected error for unknown section", format)
		}
	}
}

func TestRatingLabel(t *testing.T) {
	for _, rating := range []string{"Excellent", "Good", "Fair", "Poor"} {
		if got := ansi.ReplaceAllString(RatingLabel(health.Rating(rating)), ""); got != rating {
			t.Errorf("RatingLabel(%s) = %q", rating, got)
		}
	}
}
