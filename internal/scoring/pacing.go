package scoring

import (
	"go.uber.org/zap"

	"github.com/retireus/checkpoint/internal/model"
)

// Defaults applied when a scoring input is unanswered. These shift score
// thresholds, so they are policy values rather than mere fallbacks.
const (
	defaultRetirementAge = 65
	defaultAnnualCost    = 100000
	defaultAnnualSavings = 15000
	defaultTotalSavings  = 500000
)

// targetDiscountRate and withdrawalFactor turn the net annual retirement
// cost into the nest egg target: FV of savings at 2.5%, divided by a
// 4.5% sustainable-withdrawal factor.
const (
	targetDiscountRate = 0.025
	withdrawalFactor   = 0.045
)

// growthScenarios maps investment style to the four annual growth rates
// the pacing projection is run against. Style "b" (moderate) is also the
// fallback for unrecognized styles.
var growthScenarios = map[string][4]float64{
	"d": {0.025, 0.03, 0.035, 0.04},
	"c": {0.04, 0.045, 0.05, 0.055},
	"b": {0.055, 0.06, 0.065, 0.07},
	"a": {0.075, 0.08, 0.085, 0.09},
}

// Pacing projects the current savings trajectory against the nest egg
// target and scores how many of the four growth scenarios fall short:
// none on track, one at risk, two or more off track.
func Pacing(answers model.AnswerSet) model.ScoreRecord {
	retirementAge := answers.Int(model.KeyRetirementAge, defaultRetirementAge)
	annualCost := answers.Int(model.KeyAnnualCost, defaultAnnualCost)
	annualSavings := answers.Int(model.KeyAnnualSavings, defaultAnnualSavings)
	totalSavings := answers.Int(model.KeyTotalSavings, defaultTotalSavings)
	style := answers.Str(model.KeyInvestmentStyle)

	// Pension income offsets the annual cost only when the pension
	// benefit is actually selected.
	pensionIncome := 0
	if answers.Includes(model.KeyWorkBenefits, "pension") {
		pensionIncome = answers.Int(model.KeyPensionIncome, 0)
	}

	periods := retirementAge - assumedCurrentAge

	rates, ok := growthScenarios[style]
	if !ok {
		rates = growthScenarios["b"]
	}

	netAnnualCost := annualCost - pensionIncome
	fvTarget := FutureValue(targetDiscountRate, periods, -float64(annualSavings), -float64(netAnnualCost), 0) / withdrawalFactor

	belowTarget := 0
	for _, rate := range rates {
		fv := FutureValue(rate, periods, -float64(annualSavings), -float64(totalSavings), 0)
		if fv < fvTarget {
			belowTarget++
		}
	}

	rec := model.ScoreRecord{
		Details: model.PacingDetails{
			CalculationsBelowTarget: belowTarget,
			FVTarget:                round2(fvTarget),
		},
	}
	switch {
	case belowTarget == 0:
		rec.Score, rec.Result, rec.Status = 0, "Likely On Track", model.StatusOnTrack
	case belowTarget == 1:
		rec.Score, rec.Result, rec.Status = 3, "At Risk", model.StatusAtRisk
	default:
		rec.Score, rec.Result, rec.Status = 6, "Likely Off Track", model.StatusOffTrack
	}

	zap.L().Debug("scoring: pacing",
		zap.Int("periods", periods),
		zap.Int("below_target", belowTarget),
		zap.Float64("fv_target", fvTarget),
	)

	return rec
}
