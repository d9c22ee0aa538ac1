package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/iwvelando/agency-analytics/internal/budget"
	"github.com/iwvelando/agency-analytics/internal/health"
	"github.com/iwvelando/agency-analytics/internal/report"
	"github.com/iwvelando/agency-analytics/pkg/datetime"
	"github.com/iwvelando/agency-analytics/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	titleStyle  = lipgloss.NewStyle().Bold(true)

	ratingStyles = map[health.Rating]lipgloss.Style{
		health.Excellent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#879A39")),
		health.Good:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3AA99F")),
		health.Fair:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D0A215")),
		health.Poor:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D14D41")),
	}
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#879A39"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D14D41"))
)

// RatingLabel renders a rating in its band color.
func RatingLabel(r health.Rating) string {
	style, ok := ratingStyles[r]
	if !ok {
		return string(r)
	}
	return style.Render(string(r))
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, r report.Report, sections ...Section) error {
	p := message.NewPrinter(language.English)
	for i, section := range sections {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		switch section {
		case SectionProjects:
			prettyProjects(w, r)
		case SectionPortfolio:
			prettyPortfolio(w, p, r)
		case SectionHealth:
			prettyHealth(w, r)
		case SectionBudget:
			prettyBudget(w, r)
		case SectionForecast:
			prettyForecast(w, r)
		default:
			return fmt.Errorf("unknown output section %q", section)
		}
	}
	return nil
}

func prettyProjects(w io.Writer, r report.Report) {
	_, _ = fmt.Fprintln(w, titleStyle.Render("--- Project financials ---"))
	t := newTable("Project", "Client", "Revenue", "Direct Cost", "Time Cost", "Net Profit", "Margin", "Budget Used")
	for _, pf := range r.Portfolio.Projects {
		t.Row(
			pf.ProjectID+" "+pf.ProjectName,
			pf.ClientID,
			format.Currency(pf.TotalRevenue),
			format.Currency(pf.DirectCost),
			format.Currency(pf.TimeCost),
			format.Currency(pf.NetProfit),
			format.Percent(pf.ProfitMargin),
			format.Percent(pf.BudgetUsage),
		)
	}
	_, _ = fmt.Fprintln(w, t.Render())
}

func prettyPortfolio(w io.Writer, p *message.Printer, r report.Report) {
	s := r.Portfolio
	_, _ = fmt.Fprintln(w, titleStyle.Render("--- Portfolio ---"))
	_, _ = p.Fprintf(w, "Projects:      %d\n", len(s.Projects))
	_, _ = fmt.Fprintf(w, "Total revenue: %s\n", format.Currency(s.TotalRevenue))
	_, _ = fmt.Fprintf(w, "Total cost:    %s\n", format.Currency(s.TotalCost))
	_, _ = fmt.Fprintf(w, "Net profit:    %s\n", format.Currency(s.NetProfit))
	_, _ = p.Fprintf(w, "Profit margin: %.1f%%\n", s.ProfitMargin)

	if len(s.RevenueByClient) == 0 {
		return
	}
	t := newTable("Client", "Revenue", "Share")
	for _, c := range s.RevenueByClient {
		t.Row(c.Name, format.Currency(c.Revenue), p.Sprintf("%.1f%%", c.Share))
	}
	_, _ = fmt.Fprintln(w, t.Render())
}

func prettyHealth(w io.Writer, r report.Report) {
	_, _ = fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("--- Agency health as of %s ---", r.AsOf.Format(datetime.DateLayout))))

	for _, s := range healthEntries(r) {
		_, _ = fmt.Fprintf(w, "%-10s %3d/100 %s\n", s.name+":", s.score.Score, RatingLabel(s.score.Rating))
		for _, f := range s.score.Factors {
			marker := positiveStyle.Render("+")
			if f.Polarity == health.Negative {
				marker = negativeStyle.Render("-")
			}
			_, _ = fmt.Fprintf(w, "    %s %s\n", marker, f.Text)
		}
	}
}

func budgetStatus(item budget.Item) string {
	switch {
	case item.Variance.IsZero():
		return "on target"
	case item.IsRevenue() && item.Variance.IsPositive():
		return positiveStyle.Render("above target")
	case item.IsRevenue():
		return negativeStyle.Render("below target")
	case item.Variance.IsPositive():
		return negativeStyle.Render("over budget")
	default:
		return positiveStyle.Render("under budget")
	}
}

func prettyBudget(w io.Writer, r report.Report) {
	_, _ = fmt.Fprintln(w, titleStyle.Render("--- Budget vs actuals ---"))
	t := newTable("Category", "Budgeted", "Actual", "Variance", "Status")
	for _, item := range r.Budget {
		t.Row(item.Category, format.Currency(item.Budgeted), format.Currency(item.Actual), format.Currency(item.Variance), budgetStatus(item))
	}
	_, _ = fmt.Fprintln(w, t.Render())
}

func prettyForecast(w io.Writer, r report.Report) {
	_, _ = fmt.Fprintln(w, titleStyle.Render("--- 12-month forecast ---"))
	t := newTable("Month", "Baseline Revenue", "Baseline Costs", "Baseline Net", "Scenario Revenue", "Scenario Costs", "Scenario Net")
	for _, dp := range r.Forecast {
		t.Row(
			dp.Label,
			format.Currency(dp.BaselineRevenue),
			format.Currency(dp.BaselineCosts),
			format.Currency(dp.BaselineRevenue.Sub(dp.BaselineCosts)),
			format.Currency(dp.ScenarioRevenue),
			format.Currency(dp.ScenarioCosts),
			format.Currency(dp.ScenarioRevenue.Sub(dp.ScenarioCosts)),
		)
	}
	s := r.ForecastSummary
	t.Row("Total",
		format.Currency(s.BaselineRevenue),
		format.Currency(s.BaselineCosts),
		format.Currency(s.BaselineNet()),
		format.Currency(s.ScenarioRevenue),
		format.Currency(s.ScenarioCosts),
		format.Currency(s.ScenarioNet()),
	)
	_, _ = fmt.Fprintln(w, t.Render())
	_, _ = fmt.Fprintf(w, "Scenario impact on net income: %s\n", format.Currency(s.NetImpact()))
}
