// Package engine runs a full checkpoint assessment: red flag detection,
// tier recommendations, and the three scores, assembled into the result
// shape the API and CLI present.
package engine

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/retireus/checkpoint/internal/detect"
	"github.com/retireus/checkpoint/internal/model"
	"github.com/retireus/checkpoint/internal/scoring"
)

// RecommendedPlan is the single service tier surfaced to the user: the
// first recommended tier in Basic → Tax → Wealth order, or Basic
// Planning with zero flags when nothing triggered.
type RecommendedPlan struct {
	Tier      model.ServiceTier `json:"tier"`
	FlagCount int               `json:"flag_count"`
}

// Scores bundles the three score records.
type Scores struct {
	Pacing        model.ScoreRecord `json:"pacing"`
	TaxPlanning   model.ScoreRecord `json:"tax_planning"`
	RiskOfFailure model.ScoreRecord `json:"risk_of_failure"`
}

// Summary counts detected flags overall and per tier.
type Summary struct {
	TotalFlags  int `json:"total_flags"`
	BasicCount  int `json:"basic_count"`
	TaxCount    int `json:"tax_count"`
	WealthCount int `json:"wealth_count"`
}

// Result is one complete assessment.
type Result struct {
	AssessmentID    string                                `json:"assessment_id"`
	AssessedAt      time.Time                             `json:"assessed_at"`
	RedFlags        []model.RedFlag                       `json:"red_flags"`
	Recommendations map[model.ServiceTier][]model.RedFlag `json:"-"`
	RecommendedPlan RecommendedPlan                       `json:"recommended_plan"`
	Scores          Scores                                `json:"scores"`
	Summary         Summary                               `json:"summary"`
}

// Assess runs detection, recommendation, and scoring over a normalized
// answer set. It is a pure function of the answers apart from the
// generated assessment id and timestamp.
func Assess(answers model.AnswerSet) Result {
	flags := detect.Detect(answers)
	recommendations := detect.Recommend(flags)

	pacing := scoring.Pacing(answers)
	taxPlanning := scoring.TaxPlanning(answers)
	riskOfFailure := scoring.RiskOfFailure(answers, flags, pacing.Score)

	result := Result{
		AssessmentID:    uuid.NewString(),
		AssessedAt:      time.Now().UTC(),
		RedFlags:        flags,
		Recommendations: recommendations,
		RecommendedPlan: recommendedPlan(recommendations),
		Scores: Scores{
			Pacing:        pacing,
			TaxPlanning:   taxPlanning,
			RiskOfFailure: riskOfFailure,
		},
		Summary: summarize(flags),
	}

	zap.L().Info("assessment complete",
		zap.String("assessment_id", result.AssessmentID),
		zap.Int("red_flags", len(flags)),
		zap.String("recommended_plan", result.RecommendedPlan.Tier.String()),
		zap.Float64("risk_of_failure", riskOfFailure.Score),
	)

	return result
}

// recommendedPlan picks the first recommended tier in evaluation order.
// With no recommendations it falls back to Basic Planning with zero
// flags so the frontend always has a plan to show.
func recommendedPlan(recommendations map[model.ServiceTier][]model.RedFlag) RecommendedPlan {
	for _, tier := range model.ServiceTiers {
		if flags, ok := recommendations[tier]; ok {
			return RecommendedPlan{Tier: tier, FlagCount: len(flags)}
		}
	}
	return RecommendedPlan{Tier: model.TierBasicPlanning, FlagCount: 0}
}

func summarize(flags []model.RedFlag) Summary {
	s := Summary{TotalFlags: len(flags)}
	for _, f := range flags {
		switch f.Tier {
		case model.TierBasicPlanning:
			s.BasicCount++
		case model.TierTaxMastery:
			s.TaxCount++
		case model.TierWealthMastery:
			s.WealthCount++
		}
	}
	return s
}
