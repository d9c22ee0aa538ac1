package financials

import (
	"sort"

	"github.com/iwvelando/agency-analytics/internal/dataset"
	"github.com/iwvelando/agency-analytics/pkg/money"
	"github.com/shopspring/decimal"
)

// ClientRevenue is the revenue attributed to one client across its projects.
type ClientRevenue struct {
	ClientID string
	Name     string
	Revenue  decimal.Decimal
	Share    float64 // percent of portfolio revenue
}

// Summary is the organization-wide roll-up of every project's financials.
type Summary struct {
	Projects        []ProjectFinancials
	TotalRevenue    decimal.Decimal
	TotalCost       decimal.Decimal
	NetProfit       decimal.Decimal
	ProfitMargin    float64
	RevenueByClient []ClientRevenue // largest first
}

// TopClient returns the client with the largest revenue share, if any.
func (s Summary) TopClient() (ClientRevenue, bool) {
	if len(s.RevenueByClient) == 0 {
		return ClientRevenue{}, false
	}
	return s.RevenueByClient[0], true
}

// Portfolio computes every project and rolls them up. Revenue of projects
// without a client is counted in totals but attributed to no client.
func (a *Aggregator) Portfolio(snap *dataset.Snapshot) Summary {
	summary := Summary{
		Projects:     a.ComputeAll(snap),
		TotalRevenue: decimal.Zero,
		TotalCost:    decimal.Zero,
	}

	byClient := make(map[string]decimal.Decimal)
	for _, pf := range summary.Projects {
		summary.TotalRevenue = summary.TotalRevenue.Add(pf.TotalRevenue)
		summary.TotalCost = summary.TotalCost.Add(pf.TotalCost)
		if pf.ClientID == "" {
			continue
		}
		if current, ok := byClient[pf.ClientID]; ok {
			byClient[pf.ClientID] = current.Add(pf.TotalRevenue)
		} else {
			byClient[pf.ClientID] = pf.TotalRevenue
		}
	}
	summary.NetProfit = summary.TotalRevenue.Sub(summary.TotalCost)
	summary.ProfitMargin = money.Percent(summary.NetProfit, summary.TotalRevenue)

	for id, revenue := range byClient {
		name := id
		if c, ok := snap.Client(id); ok {
			name = c.Name
		}
		summary.RevenueByClient = append(summary.RevenueByClient, ClientRevenue{
			ClientID: id,
			Name:     name,
			Revenue:  revenue,
			Share:    money.Percent(revenue, summary.TotalRevenue),
		})
	}
	sort.Slice(summary.RevenueByClient, func(i, j int) bool {
		ci, cj := summary.RevenueByClient[i], summary.RevenueByClient[j]
		if cmp := ci.Revenue.Cmp(cj.Revenue); cmp != 0 {
			return cmp > 0
		}
		return ci.ClientID < cj.ClientID
	})

	return summary
}
