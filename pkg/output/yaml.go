package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/agency-analytics/internal/report"
	"github.com/iwvelando/agency-analytics/pkg/datetime"
	"github.com/iwvelando/agency-analytics/pkg/format"
	"gopkg.in/yaml.v3"
)

type yamlProject struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	ClientID     string  `yaml:"clientId,omitempty"`
	Budget       string  `yaml:"budget"`
	Revenue      string  `yaml:"revenue"`
	DirectCost   string  `yaml:"directCost"`
	TimeCost     string  `yaml:"timeCost"`
	TotalCost    string  `yaml:"totalCost"`
	NetProfit    string  `yaml:"netProfit"`
	ProfitMargin float64 `yaml:"profitMargin"`
	BudgetUsage  float64 `yaml:"budgetUsage"`
}

type yamlClientRevenue struct {
	ClientID string  `yaml:"clientId"`
	Name     string  `yaml:"name"`
	Revenue  string  `yaml:"revenue"`
	Share    float64 `yaml:"share"`
}

type yamlPortfolio struct {
	TotalRevenue    string              `yaml:"totalRevenue"`
	TotalCost       string              `yaml:"totalCost"`
	NetProfit       string              `yaml:"netProfit"`
	ProfitMargin    float64             `yaml:"profitMargin"`
	RevenueByClient []yamlClientRevenue `yaml:"revenueByClient"`
}

type yamlFactor struct {
	Text     string `yaml:"text"`
	Polarity string `yaml:"polarity"`
}

type yamlScore struct {
	Score   int          `yaml:"score"`
	Rating  string       `yaml:"rating"`
	Factors []yamlFactor `yaml:"factors"`
}

type yamlBudgetItem struct {
	Category string `yaml:"category"`
	Budgeted string `yaml:"budgeted"`
	Actual   string `yaml:"actual"`
	Variance string `yaml:"variance"`
}

type yamlDataPoint struct {
	Month           string `yaml:"month"`
	BaselineRevenue string `yaml:"baselineRevenue"`
	BaselineCosts   string `yaml:"baselineCosts"`
	ScenarioRevenue string `yaml:"scenarioRevenue"`
	ScenarioCosts   string `yaml:"scenarioCosts"`
}

type yamlDocument struct {
	AsOf      string               `yaml:"asOf"`
	Projects  []yamlProject        `yaml:"projects,omitempty"`
	Portfolio *yamlPortfolio       `yaml:"portfolio,omitempty"`
	Health    map[string]yamlScore `yaml:"health,omitempty"`
	Budget    []yamlBudgetItem     `yaml:"budget,omitempty"`
	Forecast  []yamlDataPoint      `yaml:"forecast,omitempty"`
}

// YAMLFormat outputs the requested sections as a single YAML document.
func YAMLFormat(w io.Writer, r report.Report, sections ...Section) error {
	doc := yamlDocument{AsOf: r.AsOf.Format(datetime.DateLayout)}

	for _, section := range sections {
		switch section {
		case SectionProjects:
			doc.Projects = make([]yamlProject, 0, len(r.Portfolio.Projects))
			for _, pf := range r.Portfolio.Projects {
				doc.Projects = append(doc.Projects, yamlProject{
					ID:           pf.ProjectID,
					Name:         pf.ProjectName,
					ClientID:     pf.ClientID,
					Budget:       format.Plain(pf.Budget),
					Revenue:      format.Plain(pf.TotalRevenue),
					DirectCost:   format.Plain(pf.DirectCost),
					TimeCost:     format.Plain(pf.TimeCost),
					TotalCost:    format.Plain(pf.TotalCost),
					NetProfit:    format.Plain(pf.NetProfit),
					ProfitMargin: pf.ProfitMargin,
					BudgetUsage:  pf.BudgetUsage,
				})
			}
		case SectionPortfolio:
			s := r.Portfolio
			p := &yamlPortfolio{
				TotalRevenue: format.Plain(s.TotalRevenue),
				TotalCost:    format.Plain(s.TotalCost),
				NetProfit:    format.Plain(s.NetProfit),
				ProfitMargin: s.ProfitMargin,
			}
			for _, c := range s.RevenueByClient {
				p.RevenueByClient = append(p.RevenueByClient, yamlClientRevenue{
					ClientID: c.ClientID, Name: c.Name, Revenue: format.Plain(c.Revenue), Share: c.Share,
				})
			}
			doc.Portfolio = p
		case SectionHealth:
			doc.Health = make(map[string]yamlScore, 4)
			for _, entry := range healthEntries(r) {
				score := yamlScore{Score: entry.score.Score, Rating: string(entry.score.Rating)}
				for _, f := range entry.score.Factors {
					score.Factors = append(score.Factors, yamlFactor{Text: f.Text, Polarity: string(f.Polarity)})
				}
				doc.Health[entry.name] = score
			}
		case SectionBudget:
			for _, item := range r.Budget {
				doc.Budget = append(doc.Budget, yamlBudgetItem{
					Category: item.Category,
					Budgeted: format.Plain(item.Budgeted),
					Actual:   format.Plain(item.Actual),
					Variance: format.Plain(item.Variance),
				})
			}
		case SectionForecast:
			for _, dp := range r.Forecast {
				doc.Forecast = append(doc.Forecast, yamlDataPoint{
					Month:           dp.Month.Format(datetime.MonthLayout),
					BaselineRevenue: format.Plain(dp.BaselineRevenue),
					BaselineCosts:   format.Plain(dp.BaselineCosts),
					ScenarioRevenue: format.Plain(dp.ScenarioRevenue),
					ScenarioCosts:   format.Plain(dp.ScenarioCosts),
				})
			}
		default:
			return fmt.Errorf("unknown output section %q", section)
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
