package analytics

import (
	"math"

	"github.com/okian/champions/internal/domain/model"
	"github.com/okian/champions/internal/domain/random"
)

const (
	riskFloor      = 5
	riskCeiling    = 50
	riskAgePivot   = 25
	riskAgeSlope   = 0.5
	weeklyFactor   = 1.3
	biweeklyFactor = 1.6
	riskBaseMin    = 10
	riskBaseMax    = 35
	riskConfMin    = 85
	riskConfMax    = 98
)

var positionRiskOffset = map[model.Position]float64{ //nolint:gochecknoglobals // lookup table
	model.Goalkeeper: -5,
	model.Defender:   2,
	model.Midfielder: 3,
	model.Forward:    4,
}

// AgeRiskAdjustment is the risk added for ages above 25; zero otherwise.
func AgeRiskAdjustment(age int) float64 {
	return math.Max(0, float64(age-riskAgePivot)*riskAgeSlope)
}

// PositionRiskOffset returns the fixed offset for a position, 0 when unknown.
func PositionRiskOffset(p model.Position) float64 {
	return positionRiskOffset[p]
}

// PredictInjuryRisk estimates current and near-term injury risk.
//
// The current risk is clamped to [5, 50]. The weekly and biweekly horizons
// scale the clamped value and are deliberately left unclamped.
func (e *Engine) PredictInjuryRisk(p model.Player) model.RiskPrediction {
	base := e.uniform(riskBaseMin, riskBaseMax)
	ageAdj := AgeRiskAdjustment(p.Age)
	current := math.Max(riskFloor, math.Min(riskCeiling, base+ageAdj+PositionRiskOffset(p.Position)))

	return model.RiskPrediction{
		CurrentRisk:  random.Round1(current),
		WeeklyRisk:   random.Round1(current * weeklyFactor),
		BiweeklyRisk: random.Round1(current * biweeklyFactor),
		Confidence:   random.Round1(e.uniform(riskConfMin, riskConfMax)),
		Drivers: []model.RiskDriver{
			{Name: "Training Load", Impact: random.Round1(e.uniform(-3, 8))},
			{Name: "Match Density", Impact: random.Round1(e.uniform(0, 6))},
			{Name: "Recovery Time", Impact: random.Round1(e.uniform(-2, 5))},
			{Name: "Age Factor", Impact: random.Round1(ageAdj)},
			{Name: "Physical Condition", Impact: random.Round1(e.uniform(-4, 3))},
		},
	}
}
