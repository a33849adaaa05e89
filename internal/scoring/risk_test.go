package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retireus/checkpoint/internal/model"
)

func TestTimelineScore(t *testing.T) {
	tests := []struct {
		timeline int
		want     float64
	}{
		{3, 3},
		{5, 3},
		{6, 2},
		{10, 2},
		{11, 0},
		{15, 0},
		{16, -2},
		{30, -2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, timelineScore(tt.timeline), "timeline %d", tt.timeline)
	}
}

func TestRiskOfFailureComposite(t *testing.T) {
	// Pacing 6 -> 3.0, age 65 (timeline 25 -> -2) -> -0.5,
	// basic_rf1 (3) + basic_rf4 (4) -> 7 * 0.25 = 1.75. Total 4.25.
	answers := model.AnswerSet{model.KeyRetirementAge: 65}
	flags := []model.RedFlag{
		{ID: "basic_rf1", Tier: model.TierBasicPlanning},
		{ID: "basic_rf4", Tier: model.TierBasicPlanning},
	}

	got := RiskOfFailure(answers, flags, 6)
	assert.Equal(t, 4.25, got.Score)
	assert.Equal(t, "Likely Off Pace", got.Result)
	assert.Equal(t, model.StatusOffTrack, got.Status)

	components, ok := got.Details.(model.RiskComponents)
	require.True(t, ok)
	assert.Equal(t, 3.0, components.Pacing)
	assert.Equal(t, -0.5, components.Timeline)
	assert.Equal(t, 1.75, components.RedFlags)
}

func TestRiskOfFailureThresholds(t *testing.T) {
	tests := []struct {
		name       string
		answers    model.AnswerSet
		flags      []model.RedFlag
		pacing     float64
		wantScore  float64
		wantResult string
		wantStatus model.Status
	}{
		{
			// 0 + 0.5 + 0 = 0.5.
			"clean mid-career on track",
			model.AnswerSet{model.KeyRetirementAge: 50},
			nil, 0,
			0.5, "On Track", model.StatusOnTrack,
		},
		{
			// 1.5 + 0 + 0.5 = 2.0, lower at-risk boundary is inclusive.
			"exactly two is at risk",
			model.AnswerSet{model.KeyRetirementAge: 53},
			[]model.RedFlag{{ID: "basic_rf5", Tier: model.TierBasicPlanning}}, 3,
			2, "At Risk", model.StatusAtRisk,
		},
		{
			// 3 + 0 + 1 = 4.0, upper at-risk boundary is inclusive.
			"exactly four is at risk",
			model.AnswerSet{model.KeyRetirementAge: 53},
			[]model.RedFlag{{ID: "basic_rf3", Tier: model.TierBasicPlanning}}, 6,
			4, "At Risk", model.StatusAtRisk,
		},
		{
			// Unweighted flags contribute nothing: 0 + (-0.5) + 0.
			"unweighted flags ignored",
			model.AnswerSet{model.KeyRetirementAge: 65},
			[]model.RedFlag{
				{ID: "basic_rf7", Tier: model.TierBasicPlanning},
				{ID: "tax_rf4", Tier: model.TierTaxMastery},
				{ID: "wealth_rf1", Tier: model.TierWealthMastery},
			}, 0,
			-0.5, "On Track", model.StatusOnTrack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RiskOfFailure(tt.answers, tt.flags, tt.pacing)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantResult, got.Result)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestRiskOfFailureIdempotent(t *testing.T) {
	answers := model.AnswerSet{model.KeyRetirementAge: 58}
	flags := []model.RedFlag{
		{ID: "tax_rf1", Tier: model.TierTaxMastery},
		{ID: "wealth_rf3", Tier: model.TierWealthMastery},
	}

	assert.Equal(t, RiskOfFailure(answers, flags, 3), RiskOfFailure(answers, flags, 3))
}
