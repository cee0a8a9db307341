package analytics

import (
	"github.com/okian/champions/internal/domain/model"
	"github.com/okian/champions/internal/domain/random"
)

const minComparePlayers = 2

var comparisonVerdicts = []string{ //nolint:gochecknoglobals // enumeration
	"Players have complementary skill sets",
	"Similar playing styles detected",
	"Significant tactical differences identified",
}

// Compare aligns metric vectors across players in input order.
//
// The similarity score and recommendation are drawn independently of the
// metrics.
func (e *Engine) Compare(players []model.Player) (model.Comparison, error) {
	if len(players) < minComparePlayers {
		return model.Comparison{}, ErrInsufficientPlayers
	}

	n := len(players)
	m := model.ComparisonMetrics{
		OverallRating: make([]int, n),
		MarketValue:   make([]int64, n),
		Age:           make([]int, n),
		Goals90:       make([]float64, n),
		Assists90:     make([]float64, n),
	}
	for i, p := range players {
		m.OverallRating[i] = p.Stats.Overall
		m.MarketValue[i] = p.CurrentValue
		m.Age[i] = p.Age
		m.Goals90[i] = p.Stats.Goals90
		m.Assists90[i] = p.Stats.Assists90
	}

	return model.Comparison{
		Players:         append([]model.Player(nil), players...),
		Metrics:         m,
		SimilarityScore: random.Round1(e.uniform(75, 95)),
		Recommendation:  random.Choice(e.src, comparisonVerdicts),
	}, nil
}
