package probe

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/okian/champions/internal/domain/analytics"
	"github.com/okian/champions/internal/domain/insights"
	"github.com/okian/champions/internal/domain/model"
)

// Check validates a decoded response body.
type Check func(body []byte) error

// roundingSlack absorbs the one-decimal rounding applied to reported values.
const roundingSlack = 0.05

func within(name string, v, lo, hi float64) error {
	if v < lo-roundingSlack || v > hi+roundingSlack {
		return fmt.Errorf("%s %.2f outside [%g, %g]", name, v, lo, hi)
	}
	return nil
}

func decode[T any](body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("decode: %w", err)
	}
	return v, nil
}

func envelope[T any](p model.Player, f model.Forecast[T]) error {
	var errs []error
	if f.PlayerID != p.ID {
		errs = append(errs, fmt.Errorf("player_id %q, want %q", f.PlayerID, p.ID))
	}
	if f.PlayerName != p.Name {
		errs = append(errs, fmt.Errorf("player_name %q, want %q", f.PlayerName, p.Name))
	}
	if f.PredictionID == "" {
		errs = append(errs, errors.New("empty prediction_id"))
	}
	if f.Timestamp.IsZero() {
		errs = append(errs, errors.New("missing timestamp"))
	}
	return errors.Join(errs...)
}

// CheckPlayer verifies a player lookup echoes the registry record.
func CheckPlayer(p model.Player) Check {
	return func(body []byte) error {
		got, err := decode[model.Player](body)
		if err != nil {
			return err
		}
		if got.ID != p.ID || got.Age != p.Age || got.CurrentValue != p.CurrentValue {
			return fmt.Errorf("player %q does not match the listed record", p.ID)
		}
		return got.Validate()
	}
}

// CheckInjury verifies the risk bounds and horizon multipliers.
func CheckInjury(p model.Player) Check {
	return func(body []byte) error {
		f, err := decode[model.Forecast[model.RiskPrediction]](body)
		if err != nil {
			return err
		}
		r := f.Prediction
		errs := []error{
			envelope(p, f),
			within("current_risk", r.CurrentRisk, 5, 50),
			within("confidence", r.Confidence, 85, 98),
			within("weekly_risk", r.WeeklyRisk, r.CurrentRisk*1.3-0.1, r.CurrentRisk*1.3+0.1),
			within("biweekly_risk", r.BiweeklyRisk, r.CurrentRisk*1.6-0.1, r.CurrentRisk*1.6+0.1),
		}
		if len(r.Drivers) != 5 {
			errs = append(errs, fmt.Errorf("%d risk drivers, want 5", len(r.Drivers)))
		} else if want := analytics.AgeRiskAdjustment(p.Age); math.Abs(r.Drivers[3].Impact-want) > roundingSlack {
			errs = append(errs, fmt.Errorf("age driver %.1f, want %.1f", r.Drivers[3].Impact, want))
		}
		return errors.Join(errs...)
	}
}

// CheckDevelopment verifies the growth band and peak age for the player.
func CheckDevelopment(p model.Player) Check {
	return func(body []byte) error {
		f, err := decode[model.Forecast[model.DevelopmentPrediction]](body)
		if err != nil {
			return err
		}
		d := f.Prediction
		lo, hi := analytics.GrowthBand(p.Age)
		errs := []error{
			envelope(p, f),
			within("potential_growth", d.PotentialGrowth, lo, hi),
		}
		if want := analytics.PeakAge(p.Position); d.PeakAge != want {
			errs = append(errs, fmt.Errorf("peak_age %d, want %d", d.PeakAge, want))
		}
		if len(d.DevelopmentAreas) != 4 {
			errs = append(errs, fmt.Errorf("%d development areas, want 4", len(d.DevelopmentAreas)))
		}
		return errors.Join(errs...)
	}
}

// CheckValue verifies the five-point trajectory matches the age curve.
func CheckValue(p model.Player) Check {
	return func(body []byte) error {
		f, err := decode[model.Forecast[model.ValuePrediction]](body)
		if err != nil {
			return err
		}
		v := f.Prediction
		errs := []error{envelope(p, f)}
		if v.CurrentValue != p.CurrentValue {
			errs = append(errs, fmt.Errorf("current_value %d, want %d", v.CurrentValue, p.CurrentValue))
		}
		curve := analytics.ValueCurve(p.Age)
		if len(v.Predictions) != len(curve) {
			errs = append(errs, fmt.Errorf("%d value predictions, want %d", len(v.Predictions), len(curve)))
		} else {
			for i, m := range curve {
				if want := int64(float64(p.CurrentValue) * m); v.Predictions[i] != want {
					errs = append(errs, fmt.Errorf("predictions[%d] = %d, want %d", i, v.Predictions[i], want))
				}
			}
		}
		if want := analytics.SellWindow(p.Age); v.OptimalSellWindow != want {
			errs = append(errs, fmt.Errorf("optimal_sell_window %q, want %q", v.OptimalSellWindow, want))
		}
		return errors.Join(errs...)
	}
}

// CheckExplain verifies the requested category is echoed with four weighted factors.
func CheckExplain(p model.Player, category string) Check {
	return func(body []byte) error {
		r, err := decode[model.ExplanationReport](body)
		if err != nil {
			return err
		}
		errs := []error{within("confidence", r.Explanation.Confidence, 85, 98)}
		if r.PlayerID != p.ID {
			errs = append(errs, fmt.Errorf("player_id %q, want %q", r.PlayerID, p.ID))
		}
		if r.Explanation.PredictionType != category {
			errs = append(errs, fmt.Errorf("prediction_type %q, want %q", r.Explanation.PredictionType, category))
		}
		if len(r.Explanation.Explanations) != 4 {
			errs = append(errs, fmt.Errorf("%d factors, want 4", len(r.Explanation.Explanations)))
		}
		for _, f := range r.Explanation.Explanations {
			if f.Importance <= 0 || f.Importance >= 1 {
				errs = append(errs, fmt.Errorf("factor %q importance %.3f outside (0, 1)", f.Factor, f.Importance))
			}
		}
		return errors.Join(errs...)
	}
}

// CheckTraining verifies the plan belongs to the player.
func CheckTraining(p model.Player) Check {
	return func(body []byte) error {
		plan, err := decode[model.TrainingPlan](body)
		if err != nil {
			return err
		}
		if plan.PlayerID != p.ID {
			return fmt.Errorf("player_id %q, want %q", plan.PlayerID, p.ID)
		}
		if len(plan.Recommendations) == 0 {
			return errors.New("no training recommendations")
		}
		return nil
	}
}

// CheckComparison verifies the metric arrays align with the requested players.
func CheckComparison(players []model.Player) Check {
	return func(body []byte) error {
		c, err := decode[model.Comparison](body)
		if err != nil {
			return err
		}
		n := len(players)
		errs := []error{within("similarity_score", c.SimilarityScore, 75, 95)}
		if len(c.Players) != n {
			return errors.Join(append(errs, fmt.Errorf("%d players compared, want %d", len(c.Players), n))...)
		}
		m := c.Metrics
		if len(m.OverallRating) != n || len(m.MarketValue) != n || len(m.Age) != n || len(m.Goals90) != n || len(m.Assists90) != n {
			errs = append(errs, errors.New("metric arrays are not parallel to players"))
		}
		for i, p := range players {
			if c.Players[i].ID != p.ID {
				errs = append(errs, fmt.Errorf("players[%d] = %q, want %q", i, c.Players[i].ID, p.ID))
			}
		}
		return errors.Join(errs...)
	}
}

// CheckPerformance verifies every series has the timeframe's length.
func CheckPerformance(timeframe string) Check {
	return func(body []byte) error {
		a, err := decode[model.PerformanceAnalytics](body)
		if err != nil {
			return err
		}
		n := insights.DataPoints(timeframe)
		if a.DataPoints != n {
			return fmt.Errorf("data_points %d, want %d", a.DataPoints, n)
		}
		s := a.Metrics
		for name, l := range map[string]int{
			"passing_accuracy":  len(s.PassingAccuracy),
			"dribbling_success": len(s.DribblingSuccess),
			"defensive_actions": len(s.DefensiveActions),
			"goals_scored":      len(s.GoalsScored),
			"assists":           len(s.Assists),
		} {
			if l != n {
				return fmt.Errorf("%s has %d points, want %d", name, l, n)
			}
		}
		return nil
	}
}

// CheckDecodes only requires the body to decode into T.
func CheckDecodes[T any]() Check {
	return func(body []byte) error {
		_, err := decode[T](body)
		return err
	}
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// CheckError verifies an error body carries the expected code.
func CheckError(code string) Check {
	return func(body []byte) error {
		e, err := decode[errorBody](body)
		if err != nil {
			return err
		}
		if e.Error == "" || e.Code != code {
			return fmt.Errorf("error body %+v, want code %q", e, code)
		}
		return nil
	}
}
