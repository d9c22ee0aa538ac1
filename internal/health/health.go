// Package health reduces organization-wide financial, client and team
// signals into normalized 0-100 scores with qualitative ratings.
package health

import (
	"fmt"
	"math"
	"time"

	"github.com/iwvelando/agency-analytics/internal/dataset"
	"github.com/iwvelando/agency-analytics/internal/financials"
	"github.com/iwvelando/agency-analytics/pkg/constants"
	"github.com/iwvelando/agency-analytics/pkg/mathutil"
	"go.uber.org/zap"
)

// Rating is the qualitative band of a score.
type Rating string

const (
	Excellent Rating = "Excellent"
	Good      Rating = "Good"
	Fair      Rating = "Fair"
	Poor      Rating = "Poor"
)

// RatingFor maps a score to its band. The same thresholds apply to every
// category and to the overall score.
func RatingFor(score int) Rating {
	switch {
	case score >= constants.ExcellentThreshold:
		return Excellent
	case score >= constants.GoodThreshold:
		return Good
	case score >= constants.FairThreshold:
		return Fair
	default:
		return Poor
	}
}

// Polarity tags a factor as helping or hurting the score.
type Polarity string

const (
	Positive Polarity = "positive"
	Negative Polarity = "negative"
)

func polarity(good bool) Polarity {
	if good {
		return Positive
	}
	return Negative
}

// Factor is a human-readable explanation of a score.
type Factor struct {
	Text     string
	Polarity Polarity
}

// Component is one sub-score and the points it was allotted.
type Component struct {
	Name   string
	Points float64
	Max    float64
}

// HealthScore is a rounded 0-100 score with its rating and explanation.
type HealthScore struct {
	Score      int
	Rating     Rating
	Factors    []Factor
	Components []Component
}

// AgencyHealth holds the three category scores and the weighted overall score.
type AgencyHealth struct {
	Financial HealthScore
	Client    HealthScore
	Team      HealthScore
	Overall   HealthScore
}

func newScore(components []Component, factors []Factor) HealthScore {
	total := 0.0
	for _, c := range components {
		total += c.Points
	}
	score := int(mathutil.Clamp(math.Round(total), 0, 100))
	return HealthScore{
		Score:      score,
		Rating:     RatingFor(score),
		Factors:    factors,
		Components: components,
	}
}

// FinancialSignals are the inputs of the financial health score.
type FinancialSignals struct {
	ProfitMargin   float64 // organization-wide percent
	TopClientShare float64 // percent of revenue from the largest client
	TopClientName  string
}

// ClientSignals are the inputs of the client health score.
type ClientSignals struct {
	AverageSatisfaction float64 // 0-5
	ChurnRate           float64 // percent
	Onboarding          int
	Total               int
}

// TeamSignals are the inputs of the team health score.
type TeamSignals struct {
	AverageUtilization float64 // percent
	OverdueTasks       int
	Members            int
}

// ScoreFinancial scores profit margin (0-70) and client concentration (0-30).
func ScoreFinancial(sig FinancialSignals) HealthScore {
	margin := mathutil.Clamp(sig.ProfitMargin/constants.TargetProfitMargin*70, 0, 70)
	concentration := mathutil.Clamp((constants.ConcentrationCeiling-sig.TopClientShare)/constants.ConcentrationCeiling*30, 0, 30)

	factors := []Factor{
		{
			Text:     fmt.Sprintf("Overall profit margin is %.1f%%", sig.ProfitMargin),
			Polarity: polarity(sig.ProfitMargin > 20),
		},
		{
			Text:     fmt.Sprintf("Top client accounts for %.1f%% of revenue", sig.TopClientShare),
			Polarity: polarity(sig.TopClientShare < 30),
		},
	}
	return newScore([]Component{
		{Name: "Profit margin", Points: margin, Max: 70},
		{Name: "Client concentration", Points: concentration, Max: 30},
	}, factors)
}

// ScoreClient scores average satisfaction (0-60) and churn rate (0-40).
func ScoreClient(sig ClientSignals) HealthScore {
	satisfaction := mathutil.Clamp(
		(sig.AverageSatisfaction-constants.SatisfactionFloor)/(constants.SatisfactionMax-constants.SatisfactionFloor)*60, 0, 60)
	churn := mathutil.Clamp((constants.ChurnCeiling-sig.ChurnRate)/constants.ChurnCeiling*40, 0, 40)

	factors := []Factor{
		{
			Text:     fmt.Sprintf("Average client satisfaction is %.1f/5", sig.AverageSatisfaction),
			Polarity: polarity(sig.AverageSatisfaction >= 4.0),
		},
		{
			Text:     fmt.Sprintf("Client churn rate is %.1f%%", sig.ChurnRate),
			Polarity: polarity(sig.ChurnRate < 5),
		},
	}
	if sig.Onboarding > 0 {
		factors = append(factors, Factor{
			Text:     fmt.Sprintf("%d %s onboarding", sig.Onboarding, plural(sig.Onboarding, "client", "clients")),
			Polarity: Positive,
		})
	}
	return newScore([]Component{
		{Name: "Satisfaction", Points: satisfaction, Max: 60},
		{Name: "Churn", Points: churn, Max: 40},
	}, factors)
}

// ScoreTeam scores utilization distance from 85% (0-70) and overdue tasks (0-30).
func ScoreTeam(sig TeamSignals) HealthScore {
	distance := math.Abs(constants.IdealUtilization - sig.AverageUtilization)
	utilization := mathutil.Clamp((constants.UtilizationTolerance-distance)/constants.UtilizationTolerance*70, 0, 70)
	overdue := mathutil.Clamp((constants.OverdueTaskCeiling-float64(sig.OverdueTasks))/constants.OverdueTaskCeiling*30, 0, 30)

	factors := []Factor{
		{
			Text:     fmt.Sprintf("Average team utilization is %.1f%%", sig.AverageUtilization),
			Polarity: polarity(distance <= 10),
		},
		{
			Text:     fmt.Sprintf("%d overdue %s", sig.OverdueTasks, plural(sig.OverdueTasks, "task", "tasks")),
			Polarity: polarity(sig.OverdueTasks == 0),
		},
	}
	return newScore([]Component{
		{Name: "Utilization", Points: utilization, Max: 70},
		{Name: "Overdue tasks", Points: overdue, Max: 30},
	}, factors)
}

// Overall weights the three category scores 40/35/25.
func Overall(financial, client, team HealthScore) HealthScore {
	components := []Component{
		{Name: "Financial", Points: float64(financial.Score) * constants.FinancialWeight, Max: 100 * constants.FinancialWeight},
		{Name: "Client", Points: float64(client.Score) * constants.ClientWeight, Max: 100 * constants.ClientWeight},
		{Name: "Team", Points: float64(team.Score) * constants.TeamWeight, Max: 100 * constants.TeamWeight},
	}
	factors := []Factor{
		{Text: fmt.Sprintf("Financial health is %s", financial.Rating), Polarity: polarity(financial.Score >= constants.GoodThreshold)},
		{Text: fmt.Sprintf("Client health is %s", client.Rating), Polarity: polarity(client.Score >= constants.GoodThreshold)},
		{Text: fmt.Sprintf("Team health is %s", team.Rating), Polarity: polarity(team.Score >= constants.GoodThreshold)},
	}
	return newScore(components, factors)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// Scorer derives health signals from a dataset snapshot.
type Scorer struct {
	aggregator *financials.Aggregator
	logger     *zap.Logger
}

// NewScorer creates a scorer. If aggregator is nil, one with default options
// is used.
func NewScorer(logger *zap.Logger, aggregator *financials.Aggregator) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if aggregator == nil {
		aggregator = financials.NewAggregator(logger, financials.DefaultOptions())
	}
	return &Scorer{aggregator: aggregator, logger: logger}
}

// FinancialSignalsFrom extracts margin and concentration from a portfolio.
func FinancialSignalsFrom(summary financials.Summary) FinancialSignals {
	sig := FinancialSignals{ProfitMargin: summary.ProfitMargin}
	if top, ok := summary.TopClient(); ok {
		sig.TopClientShare = top.Share
		sig.TopClientName = top.Name
	}
	return sig
}

// ClientSignalsFrom averages satisfaction and computes churn over all clients.
func ClientSignalsFrom(clients []dataset.Client) ClientSignals {
	sig := ClientSignals{Total: len(clients)}
	if len(clients) == 0 {
		return sig
	}
	satisfaction := 0.0
	churned := 0
	for _, c := range clients {
		satisfaction += c.Satisfaction
		switch c.Status {
		case dataset.ClientChurned:
			churned++
		case dataset.ClientOnboarding:
			sig.Onboarding++
		}
	}
	sig.AverageSatisfaction = satisfaction / float64(len(clients))
	sig.ChurnRate = mathutil.CalculatePercentage(float64(churned), float64(len(clients)))
	return sig
}

// TeamSignalsFrom averages utilization and counts tasks overdue as of asOf.
func TeamSignalsFrom(members []dataset.TeamMember, tasks []dataset.Task, asOf time.Time) TeamSignals {
	sig := TeamSignals{Members: len(members)}
	utilization := 0.0
	for _, m := range members {
		utilization += m.Utilization
	}
	sig.AverageUtilization = mathutil.Ratio(utilization, float64(len(members)))
	for _, task := range tasks {
		if task.IsOverdue(asOf) {
			sig.OverdueTasks++
		}
	}
	return sig
}

// Compute scores the whole agency. asOf anchors overdue task detection.
func (s *Scorer) Compute(snap *dataset.Snapshot, asOf time.Time) AgencyHealth {
	return s.ComputeWithPortfolio(snap, s.aggregator.Portfolio(snap), asOf)
}

// ComputeWithPortfolio scores the agency reusing an already computed portfolio.
func (s *Scorer) ComputeWithPortfolio(snap *dataset.Snapshot, portfolio financials.Summary, asOf time.Time) AgencyHealth {
	var h AgencyHealth
	h.Financial = ScoreFinancial(FinancialSignalsFrom(portfolio))
	h.Client = ScoreClient(ClientSignalsFrom(snap.Clients()))
	h.Team = ScoreTeam(TeamSignalsFrom(snap.TeamMembers(), snap.Tasks(), asOf))
	h.Overall = Overall(h.Financial, h.Client, h.Team)

	s.logger.Debug("computed agency health",
		zap.String("op", "health.Compute"),
		zap.Int("financial", h.Financial.Score),
		zap.Int("client", h.Client.Score),
		zap.Int("team", h.Team.Score),
		zap.Int("overall", h.Overall.Score),
	)
	return h
}
