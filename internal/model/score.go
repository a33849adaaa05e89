package model

// Status buckets a score into one of three readiness categories.
type Status string

const (
	StatusOnTrack  Status = "on_track"
	StatusAtRisk   Status = "at_risk"
	StatusOffTrack Status = "off_track"
)

// ScoreRecord is the result of one scoring function: a numeric score
// (fractional only for the composite risk score), a qualitative result
// label, a status category, and an optional detail payload that varies
// per score type.
type ScoreRecord struct {
	Score   float64 `json:"score"`
	Result  string  `json:"result"`
	Status  Status  `json:"status"`
	Details any     `json:"details,omitempty"`
}

// PacingDetails is the detail payload of the pacing score.
type PacingDetails struct {
	CalculationsBelowTarget int     `json:"calculations_below_target"`
	FVTarget                float64 `json:"fv_target"`
}

// RiskComponents is the detail payload of the risk-of-failure score:
// the three weighted components that sum to the total.
type RiskComponents struct {
	Pacing   float64 `json:"pacing"`
	Timeline float64 `json:"timeline"`
	RedFlags float64 `json:"red_flags"`
}
