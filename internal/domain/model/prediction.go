package model

import "time"

// RiskDriver is one named contribution to an injury risk estimate.
type RiskDriver struct {
	Name   string  `json:"name"`
	Impact float64 `json:"impact"`
}

// RiskPrediction is the injury risk outlook for a player.
type RiskPrediction struct {
	CurrentRisk  float64      `json:"current_risk"`
	WeeklyRisk   float64      `json:"weekly_risk"`
	BiweeklyRisk float64      `json:"biweekly_risk"`
	Confidence   float64      `json:"confidence"`
	Drivers      []RiskDriver `json:"drivers"`
}

// DevelopmentArea pairs a skill's current level with its projected ceiling.
type DevelopmentArea struct {
	Skill     string `json:"skill"`
	Current   int    `json:"current"`
	Potential int    `json:"potential"`
}

// DevelopmentPrediction is the growth outlook for a player.
type DevelopmentPrediction struct {
	PotentialGrowth  float64           `json:"potential_growth"`
	PeakAge          int               `json:"peak_age"`
	DevelopmentAreas []DevelopmentArea `json:"development_areas"`
	Confidence       float64           `json:"confidence"`
}

// ValueFactor is a qualitative driver of market value.
type ValueFactor struct {
	Name   string `json:"name"`
	Impact string `json:"impact"`
}

// ValuePrediction is a five-point market value trajectory.
type ValuePrediction struct {
	CurrentValue      int64         `json:"current_value"`
	Predictions       []int64       `json:"predictions"`
	OptimalSellWindow string        `json:"optimal_sell_window"`
	Confidence        float64       `json:"confidence"`
	Factors           []ValueFactor `json:"factors"`
}

// ExplanationFactor is a weighted reason behind a recommendation.
type ExplanationFactor struct {
	Factor      string  `json:"factor"`
	Importance  float64 `json:"importance"`
	Explanation string  `json:"explanation"`
}

// Explanation lists the factors behind a prediction category.
type Explanation struct {
	PredictionType string              `json:"prediction_type"`
	Confidence     float64             `json:"confidence"`
	Explanations   []ExplanationFactor `json:"explanations"`
}

// ComparisonMetrics holds per-metric vectors aligned with Comparison.Players.
type ComparisonMetrics struct {
	OverallRating []int     `json:"overall_rating"`
	MarketValue   []int64   `json:"market_value"`
	Age           []int     `json:"age"`
	Goals90       []float64 `json:"goals_90"`
	Assists90     []float64 `json:"assists_90"`
}

// Comparison is the side-by-side view of two or more players.
type Comparison struct {
	Players         []Player          `json:"players"`
	Metrics         ComparisonMetrics `json:"metrics"`
	SimilarityScore float64           `json:"similarity_score"`
	Recommendation  string            `json:"recommendation"`
}

// Forecast wraps a model output with the identity of the player it describes.
type Forecast[T any] struct {
	PlayerID     string    `json:"player_id"`
	PlayerName   string    `json:"player_name"`
	Prediction   T         `json:"prediction"`
	Timestamp    time.Time `json:"timestamp"`
	PredictionID string    `json:"prediction_id"`
}

// ExplanationReport wraps an Explanation for a specific player.
type ExplanationReport struct {
	PlayerID     string      `json:"player_id"`
	PlayerName   string      `json:"player_name"`
	Explanation  Explanation `json:"explanation"`
	Timestamp    time.Time   `json:"timestamp"`
	PredictionID string      `json:"prediction_id"`
}
