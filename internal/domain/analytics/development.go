package analytics

import (
	"github.com/okian/champions/internal/domain/model"
	"github.com/okian/champions/internal/domain/random"
)

// Age bands for growth projection.
const (
	youthAgeLimit   = 23
	primeAgeLimit   = 27
	earlyPeakAge    = 28
	latePeakAge     = 30
	devConfidenceLo = 80
	devConfidenceHi = 95
)

// skillRange bounds the current and potential draws for one skill.
type skillRange struct {
	skill                    string
	currentLo, currentHi     int
	potentialLo, potentialHi int
}

// Potential ranges sit above current ranges but the draws are independent,
// so a potential below current is possible and left as is.
var skillRanges = []skillRange{ //nolint:gochecknoglobals // lookup table
	{skill: "Technical", currentLo: 70, currentHi: 95, potentialLo: 75, potentialHi: 98},
	{skill: "Physical", currentLo: 65, currentHi: 90, potentialLo: 70, potentialHi: 95},
	{skill: "Mental", currentLo: 60, currentHi: 85, potentialLo: 70, potentialHi: 92},
	{skill: "Tactical", currentLo: 65, currentHi: 88, potentialLo: 75, potentialHi: 95},
}

// GrowthBand returns the [lo, hi] growth range for an age.
func GrowthBand(age int) (lo, hi float64) {
	switch {
	case age < youthAgeLimit:
		return 5, 15
	case age < primeAgeLimit:
		return 2, 8
	default:
		return -2, 3
	}
}

// PeakAge is 28 for midfielders and forwards, 30 for everyone else.
func PeakAge(p model.Position) int {
	if p == model.Midfielder || p == model.Forward {
		return earlyPeakAge
	}
	return latePeakAge
}

// PredictDevelopment projects growth and per-skill ceilings.
func (e *Engine) PredictDevelopment(p model.Player) model.DevelopmentPrediction {
	lo, hi := GrowthBand(p.Age)
	growth := e.uniform(lo, hi)

	areas := make([]model.DevelopmentArea, 0, len(skillRanges))
	for _, r := range skillRanges {
		areas = append(areas, model.DevelopmentArea{
			Skill:     r.skill,
			Current:   e.intBetween(r.currentLo, r.currentHi),
			Potential: e.intBetween(r.potentialLo, r.potentialHi),
		})
	}

	return model.DevelopmentPrediction{
		PotentialGrowth:  random.Round1(growth),
		PeakAge:          PeakAge(p.Position),
		DevelopmentAreas: areas,
		Confidence:       random.Round1(e.uniform(devConfidenceLo, devConfidenceHi)),
	}
}
