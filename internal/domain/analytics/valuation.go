package analytics

import (
	"github.com/okian/champions/internal/domain/model"
	"github.com/okian/champions/internal/domain/random"
)

const (
	risingAgeLimit    = 24
	plateauAgeLimit   = 28
	ageProfileLimit   = 26
	valueConfidenceLo = 75
	valueConfidenceHi = 92
)

// Five-point value multiplier curves by age band.
var (
	risingCurve    = []float64{1.05, 1.15, 1.20, 1.15, 1.05} //nolint:gochecknoglobals // lookup table
	plateauCurve   = []float64{0.98, 0.95, 0.90, 0.85, 0.75} //nolint:gochecknoglobals // lookup table
	decliningCurve = []float64{0.90, 0.80, 0.65, 0.50, 0.35} //nolint:gochecknoglobals // lookup table

	performanceTrends = []string{"positive", "stable", "declining"}    //nolint:gochecknoglobals // enumeration
	contractStatuses  = []string{"favorable", "neutral", "concerning"} //nolint:gochecknoglobals // enumeration
)

// ValueCurve returns a copy of the multiplier curve for an age:
// under 24 rising, 24 through 27 plateau, 28 and over declining.
func ValueCurve(age int) []float64 {
	var c []float64
	switch {
	case age < risingAgeLimit:
		c = risingCurve
	case age < plateauAgeLimit:
		c = plateauCurve
	default:
		c = decliningCurve
	}
	return append([]float64(nil), c...)
}

// SellWindow is the recommended window for a transfer.
func SellWindow(age int) string {
	if age < plateauAgeLimit {
		return "12-18 months"
	}
	return "6-12 months"
}

func highOrMedium(high bool) string {
	if high {
		return "high"
	}
	return "medium"
}

// PredictMarketValue projects a five-point value trajectory.
// Projected values are truncated, not rounded.
func (e *Engine) PredictMarketValue(p model.Player) model.ValuePrediction {
	curve := ValueCurve(p.Age)
	predictions := make([]int64, len(curve))
	for i, m := range curve {
		predictions[i] = int64(float64(p.CurrentValue) * m)
	}

	confidence := random.Round1(e.uniform(valueConfidenceLo, valueConfidenceHi))

	return model.ValuePrediction{
		CurrentValue:      p.CurrentValue,
		Predictions:       predictions,
		OptimalSellWindow: SellWindow(p.Age),
		Confidence:        confidence,
		Factors: []model.ValueFactor{
			{Name: "Age Profile", Impact: highOrMedium(p.Age < ageProfileLimit)},
			{Name: "Position Demand", Impact: highOrMedium(p.Position == model.Forward || p.Position == model.Midfielder)},
			{Name: "Performance Trend", Impact: random.Choice(e.src, performanceTrends)},
			{Name: "Contract Status", Impact: random.Choice(e.src, contractStatuses)},
		},
	}
}
