package analytics

import (
	"github.com/okian/champions/internal/domain/model"
	"github.com/okian/champions/internal/domain/random"
)

// Explanation categories.
const (
	Recruitment = "recruitment"
	Development = "development"
)

type factorSpec struct {
	name        string
	lo, hi      float64
	explanation string
}

var explanationFactors = map[string][]factorSpec{ //nolint:gochecknoglobals // lookup table
	Recruitment: {
		{name: "Age Profile", lo: 0.8, hi: 0.95, explanation: "Optimal age for position development"},
		{name: "Performance Metrics", lo: 0.7, hi: 0.9, explanation: "Strong statistical performance in key areas"},
		{name: "Injury History", lo: 0.6, hi: 0.85, explanation: "Clean injury record indicates reliability"},
		{name: "League Adaptation", lo: 0.5, hi: 0.8, explanation: "Successfully adapted to competitive league"},
	},
	Development: {
		{name: "Training Response", lo: 0.8, hi: 0.95, explanation: "Positive response to structured training"},
		{name: "Physical Attributes", lo: 0.7, hi: 0.9, explanation: "Strong physical foundation for improvement"},
		{name: "Mental Maturity", lo: 0.6, hi: 0.85, explanation: "Demonstrates tactical awareness and decision-making"},
		{name: "Playing Time", lo: 0.5, hi: 0.8, explanation: "Regular playing time accelerates development"},
	},
}

// ExplanationCategory resolves a requested category, falling back to
// recruitment for anything unknown.
func ExplanationCategory(category string) string {
	if _, ok := explanationFactors[category]; ok {
		return category
	}
	return Recruitment
}

// Explain returns the weighted factors behind a prediction category.
// PredictionType echoes the requested category even when the factors fell
// back to recruitment.
func (e *Engine) Explain(_ model.Player, category string) model.Explanation {
	specs := explanationFactors[ExplanationCategory(category)]
	factors := make([]model.ExplanationFactor, 0, len(specs))
	for _, f := range specs {
		factors = append(factors, model.ExplanationFactor{
			Factor:      f.name,
			Importance:  e.uniform(f.lo, f.hi),
			Explanation: f.explanation,
		})
	}
	return model.Explanation{
		PredictionType: category,
		Confidence:     random.Round1(e.uniform(85, 98)),
		Explanations:   factors,
	}
}
