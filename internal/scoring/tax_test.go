package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retireus/checkpoint/internal/model"
)

func TestTaxPlanningAdjustments(t *testing.T) {
	tests := []struct {
		name      string
		answers   model.AnswerSet
		wantScore float64
	}{
		{
			// Defaults only: age 65, savings 15000 (< 20000, +1).
			"empty answers",
			model.AnswerSet{},
			1,
		},
		{
			// +1 rmd plan, +1 low savings.
			"rmd plan and low savings",
			model.AnswerSet{
				model.KeyTimedRMDPlanning: "yes_long_term_plan",
				model.KeyAnnualSavings:    15000,
			},
			2,
		},
		{
			// -1 rmd unclear, -1 savings >= 30000, -1 long timeline with
			// 1M+, -1 late retirement with 1M+, -1 cost exactly 50000
			// with 1M+, -1 pension with 1M+, -1 deferred comp with 1M+,
			// -1 timeline > 20 with savings >= 30000.
			"wealthy late retiree",
			model.AnswerSet{
				model.KeyRetirementAge:    68,
				model.KeyAnnualCost:       50000,
				model.KeyAnnualSavings:    30000,
				model.KeyTotalSavings:     1500000,
				model.KeyTimedRMDPlanning: "no_unclear",
				model.KeyWorkBenefits:     []string{"pension", "deferred_compensation"},
			},
			-8,
		},
		{
			// +1 low savings, +2 thin savings vs high cost, +2 short
			// runway with little saved.
			"underfunded and close to retirement",
			model.AnswerSet{
				model.KeyRetirementAge: 44,
				model.KeyAnnualCost:    150000,
				model.KeyAnnualSavings: 10000,
				model.KeyTotalSavings:  150000,
			},
			5,
		},
		{
			// Annual savings 20000 sits between both savings thresholds.
			"mid savings no adjustment",
			model.AnswerSet{
				model.KeyAnnualSavings: 20000,
				model.KeyTotalSavings:  500000,
			},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TaxPlanning(tt.answers)
			assert.Equal(t, tt.wantScore, got.Score)
		})
	}
}

func TestTaxPlanningResultMapping(t *testing.T) {
	low := TaxPlanning(model.AnswerSet{})
	assert.Equal(t, "Low Tax Burden", low.Result)
	assert.Equal(t, model.StatusOnTrack, low.Status)

	heavy := TaxPlanning(model.AnswerSet{
		model.KeyRetirementAge:    68,
		model.KeyAnnualSavings:    30000,
		model.KeyTotalSavings:     1500000,
		model.KeyTimedRMDPlanning: "no_unclear",
	})
	assert.Negative(t, heavy.Score)
	assert.Equal(t, "Heavy Projected Tax Burden", heavy.Result)
	assert.Equal(t, model.StatusOffTrack, heavy.Status)
}

func TestTaxPlanningScoreZeroIsHeavyBurden(t *testing.T) {
	// A score of exactly 0 lands in the <= 0 branch, not the documented
	// "Average Tax Burden" result.
	answers := model.AnswerSet{
		model.KeyAnnualSavings: 20000,
		model.KeyTotalSavings:  500000,
	}

	got := TaxPlanning(answers)
	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, "Heavy Projected Tax Burden", got.Result)
	assert.Equal(t, model.StatusOffTrack, got.Status)
}

func TestTaxPlanningNoDetails(t *testing.T) {
	assert.Nil(t, TaxPlanning(model.AnswerSet{}).Details)
}
