// Package insights formats the schema-stable operational reports: training
// plans, performance series, governance status and squad strategy.
//
// These are randomized payloads with fixed enumerations. They carry no
// per-player computation and are kept apart from the analytics models.
package insights

import (
	"fmt"
	"time"

	"github.com/okian/champions/internal/domain/model"
	"github.com/okian/champions/internal/domain/random"
)

// Timeframe values accepted by Performance.
const (
	Timeframe12Weeks = "12weeks"
	Timeframe24Weeks = "24weeks"
)

var (
	priorities = []string{"HIGH", "MEDIUM", "LOW"}            //nolint:gochecknoglobals // enumeration
	trends     = []string{"improving", "stable", "declining"} //nolint:gochecknoglobals // enumeration
)

type drill struct {
	category    string
	verb        string
	focus       []string
	description string
	minutesLo   int
	minutesHi   int
	perWeekLo   int
	perWeekHi   int
}

var drills = []drill{ //nolint:gochecknoglobals // lookup table
	{
		category:    "Technical",
		verb:        "Improve",
		focus:       []string{"passing accuracy", "first touch", "ball control"},
		description: "Focus on technical drills to enhance ball manipulation skills",
		minutesLo:   15,
		minutesHi:   30,
		perWeekLo:   2,
		perWeekHi:   4,
	},
	{
		category:    "Physical",
		verb:        "Enhance",
		focus:       []string{"sprint speed", "endurance", "strength"},
		description: "Targeted physical conditioning program",
		minutesLo:   20,
		minutesHi:   45,
		perWeekLo:   2,
		perWeekHi:   5,
	},
	{
		category:    "Tactical",
		verb:        "Develop",
		focus:       []string{"positioning", "decision making", "game reading"},
		description: "Tactical awareness and game intelligence training",
		minutesLo:   10,
		minutesHi:   25,
		perWeekLo:   1,
		perWeekHi:   3,
	},
}

// Training returns one recommendation per drill category.
func Training(src random.Source) []model.TrainingRecommendation {
	out := make([]model.TrainingRecommendation, 0, len(drills))
	for _, d := range drills {
		out = append(out, model.TrainingRecommendation{
			Category:    d.category,
			Priority:    random.Choice(src, priorities),
			Title:       fmt.Sprintf("%s %s", d.verb, random.Choice(src, d.focus)),
			Description: d.description,
			Duration:    fmt.Sprintf("%d minutes", random.IntBetween(src, d.minutesLo, d.minutesHi)),
			Frequency:   fmt.Sprintf("%dx per week", random.IntBetween(src, d.perWeekLo, d.perWeekHi)),
		})
	}
	return out
}

// DataPoints is 12 for the 12-week timeframe and 24 for anything else.
func DataPoints(timeframe string) int {
	if timeframe == Timeframe12Weeks {
		return 12
	}
	return 24
}

// Performance builds weekly series over the timeframe. An empty timeframe
// means 12 weeks.
func Performance(src random.Source, timeframe string) model.PerformanceAnalytics {
	if timeframe == "" {
		timeframe = Timeframe12Weeks
	}
	n := DataPoints(timeframe)

	series := model.PerformanceSeries{
		PassingAccuracy:  floats(src, n, 80, 95),
		DribblingSuccess: floats(src, n, 65, 85),
		DefensiveActions: floats(src, n, 60, 90),
		GoalsScored:      ints(src, n, 0, 3),
		Assists:          ints(src, n, 0, 2),
	}

	return model.PerformanceAnalytics{
		Timeframe:  timeframe,
		DataPoints: n,
		Metrics:    series,
		Trends: model.PerformanceTrends{
			PassingAccuracy:  random.Choice(src, trends),
			DribblingSuccess: random.Choice(src, trends),
			DefensiveActions: random.Choice(src, trends),
		},
	}
}

func floats(src random.Source, n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = random.Uniform(src, lo, hi)
	}
	return out
}

func ints(src random.Source, n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = random.IntBetween(src, lo, hi)
	}
	return out
}

// Governance reports data source reachability, host health and compliance.
func Governance(src random.Source, now time.Time) model.GovernanceStatus {
	return model.GovernanceStatus{
		DataSources: []model.DataSource{
			{Name: "Performance Database", Status: "online", LatencyMS: random.IntBetween(src, 10, 50)},
			{Name: "Biomedical EMR", Status: "online", LatencyMS: random.IntBetween(src, 15, 60)},
			{Name: "Wearables Data", Status: random.Choice(src, []string{"online", "warning"}), LatencyMS: random.IntBetween(src, 50, 200)},
			{Name: "Match Statistics", Status: "online", LatencyMS: random.IntBetween(src, 20, 80)},
			{Name: "Training Data", Status: "online", LatencyMS: random.IntBetween(src, 10, 40)},
		},
		SystemHealth: model.SystemHealth{
			CPUUsage:       random.Uniform(src, 30, 80),
			MemoryUsage:    random.Uniform(src, 40, 85),
			DiskUsage:      random.Uniform(src, 20, 60),
			NetworkLatency: random.Uniform(src, 5, 25),
		},
		Compliance: model.Compliance{
			GDPRCompliant:    true,
			DataAnonymized:   true,
			EncryptionLevel:  256,
			AuditLogsEnabled: true,
			LastSecurityScan: now,
		},
		AccessControl: model.AccessControl{
			ActiveUsers:           random.IntBetween(src, 5, 15),
			AdminUsers:            2,
			FailedLoginAttempts:   random.IntBetween(src, 0, 3),
			SessionTimeoutMinutes: 30,
		},
	}
}

// Squad returns fatigue figures plus the fixed fixture and rotation plan.
func Squad(src random.Source) model.SquadStrategy {
	return model.SquadStrategy{
		SquadFatigue: model.SquadFatigue{
			OverallLevel:    random.Uniform(src, 50, 85),
			HighRiskPlayers: random.IntBetween(src, 2, 6),
			RecommendedRest: random.IntBetween(src, 1, 4),
		},
		UpcomingFixtures: []model.Fixture{
			{Opponent: "Barcelona", Date: "2024-10-26", Venue: "Home", Intensity: "High", RecommendedLineup: "Full strength"},
			{Opponent: "Atletico Madrid", Date: "2024-10-29", Venue: "Away", Intensity: "Medium", RecommendedLineup: "Rotate 2-3 players"},
		},
		RotationRecommendations: []model.RotationRecommendation{
			{Position: "Midfield", Priority: "HIGH", Reason: "High fatigue levels detected", SuggestedChanges: "Rest Bellingham, deploy Camavinga"},
			{Position: "Forward", Priority: "MEDIUM", Reason: "Manage load distribution", SuggestedChanges: "Rotate Mbappé and Vinicius"},
		},
	}
}
