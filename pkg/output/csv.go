package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/agency-analytics/internal/report"
	"github.com/iwvelando/agency-analytics/pkg/datetime"
	"github.com/iwvelando/agency-analytics/pkg/format"
)

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// CsvFormat outputs in comma-separated value format. Each section is its own
// table with a header row; tables are separated by a blank line.
func CsvFormat(w io.Writer, r report.Report, sections ...Section) error {
	for i, section := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		records, err := csvRecords(r, section)
		if err != nil {
			return err
		}
		cw := csv.NewWriter(w)
		if err := cw.WriteAll(records); err != nil {
			return fmt.Errorf("failed to write %s csv: %w", section, err)
		}
	}
	return nil
}

func csvRecords(r report.Report, section Section) ([][]string, error) {
	switch section {
	case SectionProjects:
		records := [][]string{{"project_id", "project_name", "client_id", "budget", "revenue", "direct_cost", "time_cost", "total_cost", "net_profit", "profit_margin", "budget_usage"}}
		for _, pf := range r.Portfolio.Projects {
			records = append(records, []string{
				pf.ProjectID, pf.ProjectName, pf.ClientID,
				format.Plain(pf.Budget), format.Plain(pf.TotalRevenue), format.Plain(pf.DirectCost),
				format.Plain(pf.TimeCost), format.Plain(pf.TotalCost), format.Plain(pf.NetProfit),
				percent(pf.ProfitMargin), percent(pf.BudgetUsage),
			})
		}
		return records, nil

	case SectionPortfolio:
		s := r.Portfolio
		records := [][]string{{"client_id", "client_name", "revenue", "share"}}
		for _, c := range s.RevenueByClient {
			records = append(records, []string{c.ClientID, c.Name, format.Plain(c.Revenue), percent(c.Share)})
		}
		total := 0.0
		if !s.TotalRevenue.IsZero() {
			total = 100
		}
		records = append(records, []string{"", "Total", format.Plain(s.TotalRevenue), percent(total)})
		return records, nil

	case SectionHealth:
		records := [][]string{{"as_of", "category", "score", "rating", "polarity", "factor"}}
		asOf := r.AsOf.Format(datetime.DateLayout)
		for _, entry := range healthEntries(r) {
			records = append(records, []string{asOf, entry.name, strconv.Itoa(entry.score.Score), string(entry.score.Rating), "", ""})
			for _, f := range entry.score.Factors {
				records = append(records, []string{asOf, entry.name, "", "", string(f.Polarity), f.Text})
			}
		}
		return records, nil

	case SectionBudget:
		records := [][]string{{"category", "budgeted", "actual", "variance"}}
		for _, item := range r.Budget {
			records = append(records, []string{item.Category, format.Plain(item.Budgeted), format.Plain(item.Actual), format.Plain(item.Variance)})
		}
		return records, nil

	case SectionForecast:
		records := [][]string{{"month", "baseline_revenue", "baseline_costs", "scenario_revenue", "scenario_costs"}}
		for _, dp := range r.Forecast {
			records = append(records, []string{
				dp.Month.Format(datetime.MonthLayout),
				format.Plain(dp.BaselineRevenue), format.Plain(dp.BaselineCosts),
				format.Plain(dp.ScenarioRevenue), format.Plain(dp.ScenarioCosts),
			})
		}
		return records, nil
	}
	return nil, fmt.Errorf("unknown output section %q", section)
}
