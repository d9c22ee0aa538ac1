package health

import (
	"math"
	"testing"

	"github.com/iwvelando/agency-analytics/internal/dataset"
	"github.com/iwvelando/agency-analytics/internal/financials"
	"github.com/iwvelando/agency-analytics/pkg/testutil"
	"go.uber.org/zap"
)

func TestRatingFor(t *testing.T) {
	tests := []struct {
		score    int
		expected Rating
	}{
		{100, Excellent},
		{85, Excellent},
		{84, Good},
		{70, Good},
		{69, Fair},
		{50, Fair},
		{49, Poor},
		{0, Poor},
	}

	for _, tt := range tests {
		if got := RatingFor(tt.score); got != tt.expected {
			t.Errorf("RatingFor(%d) = %s, expected %s", tt.score, got, tt.expected)
		}
	}
}

func assertWithinBounds(t *testing.T, label string, s HealthScore) {
	t.Helper()
	if s.Score < 0 || s.Score > 100 {
		t.Errorf("%s score %d outside [0, 100]", label, s.Score)
	}
	for _, c := range s.Components {
		if c.Points < 0 || c.Points > c.Max {
			t.Errorf("%s component %q = %v outside [0, %v]", label, c.Name, c.Points, c.Max)
		}
	}
	if s.Rating != RatingFor(s.Score) {
		t.Errorf("%s rating %s does not match score %d", label, s.Rating, s.Score)
	}
}

func TestScoreFinancial(t *testing.T) {
	tests := []struct {
		name         string
		signals      FinancialSignals
		expected     int
		marginPoints float64
		polarities   []Polarity
	}{
		{
			name:         "Target margin, no concentration",
			signals:      FinancialSignals{ProfitMargin: 35, TopClientShare: 0},
			expected:     100,
			marginPoints: 70,
			polarities:   []Polarity{Positive, Positive},
		},
		{
			name:         "Negative margin clamps to zero",
			signals:      FinancialSignals{ProfitMargin: -50, TopClientShare: 25},
			expected:     15,
			marginPoints: 0,
			polarities:   []Polarity{Negative, Positive},
		},
		{
			name:         "Margin above target clamps to seventy",
			signals:      FinancialSignals{ProfitMargin: 120, TopClientShare: 80},
			expected:     70,
			marginPoints: 70,
			polarities:   []Polarity{Positive, Negative},
		},
		{
			name:         "Exactly twenty percent margin is not positive",
			signals:      FinancialSignals{ProfitMargin: 20, TopClientShare: 30},
			expected:     52,
			marginPoints: 40,
			polarities:   []Polarity{Negative, Negative},
		},
		{
			name:         "Sample margin",
			signals:      FinancialSignals{ProfitMargin: 22.4, TopClientShare: 50},
			expected:     45,
			marginPoints: 44.8,
			polarities:   []Polarity{Positive, Negative},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScoreFinancial(tt.signals)
			assertWithinBounds(t, "financial", s)
			if s.Score != tt.expected {
				t.Errorf("ScoreFinancial() = %d, expected %d", s.Score, tt.expected)
			}
			if math.Abs(s.Components[0].Points-tt.marginPoints) > 1e-9 {
				t.Errorf("margin points = %v, expected %v", s.Components[0].Points, tt.marginPoints)
			}
			if len(s.Factors) != len(tt.polarities) {
				t.Fatalf("got %d factors, expected %d", len(s.Factors), len(tt.polarities))
			}
			for i, p := range tt.polarities {
				if s.Factors[i].Polarity != p {
					t.Errorf("factor %q polarity = %s, expected %s", s.Factors[i].Text, s.Factors[i].Polarity, p)
				}
			}
		})
	}
}

func TestScoreFinancialFactorText(t *testing.T) {
	s := ScoreFinancial(FinancialSignals{ProfitMargin: 22.4, TopClientShare: 12.5})
	if s.Factors[0].Text != "Overall profit margin is 22.4%" {
		t.Errorf("factor text = %q", s.Factors[0].Text)
	}
	if s.Factors[1].Text != "Top client accounts for 12.5% of revenue" {
		t.Errorf("factor text = %q", s.Factors[1].Text)
	}
}

func TestScoreClient(t *testing.T) {
	tests := []struct {
		name       string
		signals    ClientSignals
		expected   int
		polarities []Polarity
	}{
		{
			name:       "Perfect satisfaction, no churn",
			signals:    ClientSignals{AverageSatisfaction: 5, ChurnRate: 0, Total: 4},
			expected:   100,
			polarities: []Polarity{Positive, Positive},
		},
		{
			name:       "Floor satisfaction, ceiling churn",
			signals:    ClientSignals{AverageSatisfaction: 3.5, ChurnRate: 10, Total: 10},
			expected:   0,
			polarities: []Polarity{Negative, Negative},
		},
		{
			name:       "Below floor clamps",
			signals:    ClientSignals{AverageSatisfaction: 1, ChurnRate: 50, Total: 2},
			expected:   0,
			polarities: []Polarity{Negative, Negative},
		},
		{
			name:       "Midpoint with onboarding",
			signals:    ClientSignals{AverageSatisfaction: 4.25, ChurnRate: 5, Onboarding: 2, Total: 20},
			expected:   50,
			polarities: []Polarity{Positive, Negative, Positive},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScoreClient(tt.signals)
			assertWithinBounds(t, "client", s)
			if s.Score != tt.expected {
				t.Errorf("ScoreClient() = %d, expected %d", s.Score, tt.expected)
			}
			if len(s.Factors) != len(tt.polarities) {
				t.Fatalf("got %d factors, expected %d", len(s.Factors), len(tt.polarities))
			}
			for i, p := range tt.polarities {
				if s.Factors[i].Polarity != p {
					t.Errorf("factor %q polarity = %s, expected %s", s.Factors[i].Text, s.Factors[i].Polarity, p)
				}
			}
		})
	}
}

func TestScoreTeam(t *testing.T) {
	tests := []struct {
		name       string
		signals    TeamSignals
		expected   int
		polarities []Polarity
	}{
		{
			name:       "Ideal utilization, nothing overdue",
			signals:    TeamSignals{AverageUtilization: 85, OverdueTasks: 0},
			expected:   100,
			polarities: []Polarity{Positive, Positive},
		},
		{
			name:       "Overloaded team, many overdue",
			signals:    TeamSignals{AverageUtilization: 115, OverdueTasks: 9},
			expected:   0,
			polarities: []Polarity{Negative, Negative},
		},
		{
			name:       "Under-utilized by ten points",
			signals:    TeamSignals{AverageUtilization: 75, OverdueTasks: 1},
			expected:   66,
			polarities: []Polarity{Positive, Negative},
		},
		{
			name:       "Exactly five overdue yields zero overdue points",
			signals:    TeamSignals{AverageUtilization: 85, OverdueTasks: 5},
			expected:   70,
			polarities: []Polarity{Positive, Negative},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScoreTeam(tt.signals)
			assertWithinBounds(t, "team", s)
			if s.Score != tt.expected {
				t.Errorf("ScoreTeam() = %d, expected %d", s.Score, tt.expected)
			}
			for i, p := range tt.polarities {
				if s.Factors[i].Polarity != p {
					t.Errorf("factor %q polarity = %s, expected %s", s.Factors[i].Text, s.Factors[i].Polarity, p)
				}
			}
		})
	}
}

func TestOverall(t *testing.T) {
	tests := []struct {
		name      string
		financial int
		client    int
		team      int
		expected  int
		rating    Rating
	}{
		{"All perfect", 100, 100, 100, 100, Excellent},
		{"All zero", 0, 0, 0, 0, Poor},
		{"Weighted", 72, 21, 89, 58, Fair},
		{"Boundary good", 84, 84, 84, 84, Good},
		{"Boundary excellent", 85, 85, 85, 85, Excellent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := HealthScore{Score: tt.financial, Rating: RatingFor(tt.financial)}
			c := HealthScore{Score: tt.client, Rating: RatingFor(tt.client)}
			tm := HealthScore{Score: tt.team, Rating: RatingFor(tt.team)}
			s := Overall(f, c, tm)
			if s.Score != tt.expected {
				t.Errorf("Overall() = %d, expected %d", s.Score, tt.expected)
			}
			if s.Rating != tt.rating {
				t.Errorf("Overall() rating = %s, expected %s", s.Rating, tt.rating)
			}
			if len(s.Factors) != 3 {
				t.Errorf("Overall() has %d factors, expected 3", len(s.Factors))
			}
		})
	}
}

func TestScorerCompute(t *testing.T) {
	snap := dataset.New(testutil.AgencyRecords())
	scorer := NewScorer(zap.NewNop(), financials.NewAggregator(zap.NewNop(), financials.DefaultOptions()))

	h := scorer.Compute(snap, testutil.AsOf)

	// Margin ~87.5% saturates 70 points, Globex holds 46.875% of revenue.
	if h.Financial.Score != 72 {
		t.Errorf("Financial = %d, expected 72", h.Financial.Score)
	}
	// Satisfaction averages 4.025, one of four clients churned.
	if h.Client.Score != 21 {
		t.Errorf("Client = %d, expected 21", h.Client.Score)
	}
	// Utilization averages 83.3%, one open task is past due.
	if h.Team.Score != 89 {
		t.Errorf("Team = %d, expected 89", h.Team.Score)
	}
	if h.Overall.Score != 58 || h.Overall.Rating != Fair {
		t.Errorf("Overall = %d %s, expected 58 Fair", h.Overall.Score, h.Overall.Rating)
	}

	for label, s := range map[string]HealthScore{
		"financial": h.Financial, "client": h.Client, "team": h.Team, "overall": h.Overall,
	} {
		assertWithinBounds(t, label, s)
		if len(s.Factors) < 2 || len(s.Factors) > 3 {
			t.Errorf("%s has %d factors, expected 2-3", label, len(s.Factors))
		}
	}

	if h.Client.Factors[1].Text != "Client churn rate is 25.0%" || h.Client.Factors[1].Polarity != Negative {
		t.Errorf("churn factor = %+v", h.Client.Factors[1])
	}
	if h.Team.Factors[1].Text != "1 overdue task" || h.Team.Factors[1].Polarity != Negative {
		t.Errorf("overdue factor = %+v", h.Team.Factors[1])
	}
}

func TestScorerComputeEmptyDataset(t *testing.T) {
	h := NewScorer(nil, nil).Compute(dataset.New(dataset.Records{}), testutil.AsOf)

	// Zero revenue leaves no concentration, no clients leaves no churn.
	if h.Financial.Score != 30 {
		t.Errorf("Financial = %d, expected 30", h.Financial.Score)
	}
	if h.Client.Score != 40 {
		t.Errorf("Client = %d, expected 40", h.Client.Score)
	}
	if h.Team.Score != 30 {
		t.Errorf("Team = %d, expected 30", h.Team.Score)
	}
	for _, s := range []HealthScore{h.Financial, h.Client, h.Team, h.Overall} {
		assertWithinBounds(t, "empty", s)
	}
}
