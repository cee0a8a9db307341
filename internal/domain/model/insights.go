package model

import "time"

// TrainingRecommendation is one drill suggestion in a training plan.
type TrainingRecommendation struct {
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Frequency   string `json:"frequency"`
}

// TrainingPlan is the set of recommendations generated for a player.
type TrainingPlan struct {
	PlayerID        string                   `json:"player_id"`
	PlayerName      string                   `json:"player_name"`
	Recommendations []TrainingRecommendation `json:"recommendations"`
	GeneratedAt     time.Time                `json:"generated_at"`
}

// PerformanceSeries holds weekly values for each tracked performance metric.
type PerformanceSeries struct {
	PassingAccuracy  []float64 `json:"passing_accuracy"`
	DribblingSuccess []float64 `json:"dribbling_success"`
	DefensiveActions []float64 `json:"defensive_actions"`
	GoalsScored      []int     `json:"goals_scored"`
	Assists          []int     `json:"assists"`
}

// PerformanceTrends labels the direction of the continuous series.
type PerformanceTrends struct {
	PassingAccuracy  string `json:"passing_accuracy"`
	DribblingSuccess string `json:"dribbling_success"`
	DefensiveActions string `json:"defensive_actions"`
}

// PerformanceAnalytics is a time series report over a timeframe.
type PerformanceAnalytics struct {
	Timeframe  string            `json:"timeframe"`
	DataPoints int               `json:"data_points"`
	Metrics    PerformanceSeries `json:"metrics"`
	Trends     PerformanceTrends `json:"trends"`
	Player     string            `json:"player,omitempty"`
}

// DataSource describes an upstream feed and its reachability.
type DataSource struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	LatencyMS int    `json:"latency_ms"`
}

// SystemHealth reports host resource usage percentages.
type SystemHealth struct {
	CPUUsage       float64 `json:"cpu_usage"`
	MemoryUsage    float64 `json:"memory_usage"`
	DiskUsage      float64 `json:"disk_usage"`
	NetworkLatency float64 `json:"network_latency"`
}

// Compliance reports data-protection posture.
type Compliance struct {
	GDPRCompliant    bool      `json:"gdpr_compliant"`
	DataAnonymized   bool      `json:"data_anonymized"`
	EncryptionLevel  int       `json:"encryption_level"`
	AuditLogsEnabled bool      `json:"audit_logs_enabled"`
	LastSecurityScan time.Time `json:"last_security_scan"`
}

// AccessControl reports user and session figures.
type AccessControl struct {
	ActiveUsers           int `json:"active_users"`
	AdminUsers            int `json:"admin_users"`
	FailedLoginAttempts   int `json:"failed_login_attempts"`
	SessionTimeoutMinutes int `json:"session_timeout_minutes"`
}

// GovernanceStatus is the data governance and system status report.
type GovernanceStatus struct {
	DataSources   []DataSource  `json:"data_sources"`
	SystemHealth  SystemHealth  `json:"system_health"`
	Compliance    Compliance    `json:"compliance"`
	AccessControl AccessControl `json:"access_control"`
}

// SquadFatigue summarizes squad-wide load.
type SquadFatigue struct {
	OverallLevel    float64 `json:"overall_level"`
	HighRiskPlayers int     `json:"high_risk_players"`
	RecommendedRest int     `json:"recommended_rest"`
}

// Fixture is an upcoming match with a lineup suggestion.
type Fixture struct {
	Opponent          string `json:"opponent"`
	Date              string `json:"date"`
	Venue             string `json:"venue"`
	Intensity         string `json:"intensity"`
	RecommendedLineup string `json:"recommended_lineup"`
}

// RotationRecommendation suggests a change for one line of the squad.
type RotationRecommendation struct {
	Position         string `json:"position"`
	Priority         string `json:"priority"`
	Reason           string `json:"reason"`
	SuggestedChanges string `json:"suggested_changes"`
}

// SquadStrategy is the rotation and fixture planning report.
type SquadStrategy struct {
	SquadFatigue            SquadFatigue             `json:"squad_fatigue"`
	UpcomingFixtures        []Fixture                `json:"upcoming_fixtures"`
	RotationRecommendations []RotationRecommendation `json:"rotation_recommendations"`
}

// Health is the static service-health payload.
type Health struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}
