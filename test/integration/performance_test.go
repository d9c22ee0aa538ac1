package integration

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/iwvelando/agency-analytics/internal/budget"
	"github.com/iwvelando/agency-analytics/internal/dataset"
	"github.com/iwvelando/agency-analytics/internal/financials"
	"github.com/iwvelando/agency-analytics/internal/forecast"
	"github.com/iwvelando/agency-analytics/internal/report"
	"github.com/iwvelando/agency-analytics/pkg/finance"
	"github.com/iwvelando/agency-analytics/pkg/output"
	"github.com/iwvelando/agency-analytics/pkg/testutil"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

func scaledScenarios() []forecast.Scenario {
	return []forecast.Scenario{
		{ID: "hire", Name: "Hire", Kind: finance.RecurringCost, Value: testutil.D("9000"), StartMonth: testutil.Date("2027-01-01"), Active: true},
		{ID: "upsell", Name: "Upsell", Kind: finance.RecurringRevenue, Value: testutil.D("4500"), StartMonth: testutil.Date("2026-12-01"), Active: true},
	}
}

// TestPerformance generates a report for a large agency and logs the timings.
func TestPerformance(t *testing.T) {
	logger := zap.NewNop()

	start := time.Now()
	snap := dataset.New(testutil.ScaledRecords(2000))
	indexTime := time.Since(start)

	start = time.Now()
	r, err := report.NewGenerator(logger, financials.DefaultOptions(), forecast.DefaultOptions()).
		Generate(snap, scaledScenarios(), budget.DefaultTable(), testutil.AsOf)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	generateTime := time.Since(start)

	start = time.Now()
	if err := output.Render(io.Discard, "pretty", r); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	renderTime := time.Since(start)

	t.Logf("Performance metrics for 2000 projects:")
	t.Logf("  Indexing: %v", indexTime)
	t.Logf("  Report generation: %v", generateTime)
	t.Logf("  Rendering: %v", renderTime)

	// Each project bills 10000 and costs 250 plus 20 hours at 50 per hour.
	if got := r.Portfolio.TotalRevenue.StringFixed(2); got != "20000000.00" {
		t.Errorf("Expected total revenue 20000000.00, got %s", got)
	}
	if got := r.Portfolio.TotalCost.StringFixed(2); got != "2500000.00" {
		t.Errorf("Expected total cost 2500000.00, got %s", got)
	}

	if generateTime > 5*time.Second {
		t.Errorf("Report generation took too long: %v", generateTime)
	}
}

func BenchmarkGenerate(b *testing.B) {
	logger := zap.NewNop()
	snap := dataset.New(testutil.ScaledRecords(500))
	generator := report.NewGenerator(logger, financials.DefaultOptions(), forecast.DefaultOptions())
	scenarios := scaledScenarios()
	table := budget.DefaultTable()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := generator.Generate(snap, scenarios, table, testutil.AsOf); err != nil {
			b.Fatal(err)
		}
	}
}
