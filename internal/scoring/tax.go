package scoring

import "github.com/retireus/checkpoint/internal/model"

// TaxPlanning scores projected tax burden from a baseline of 0, applying
// independent integer adjustments. Positive scores indicate a low
// projected burden, negative a heavy one.
func TaxPlanning(answers model.AnswerSet) model.ScoreRecord {
	retirementAge := answers.Int(model.KeyRetirementAge, defaultRetirementAge)
	annualCost := answers.Int(model.KeyAnnualCost, defaultAnnualCost)
	annualSavings := answers.Int(model.KeyAnnualSavings, defaultAnnualSavings)
	totalSavings := answers.Int(model.KeyTotalSavings, defaultTotalSavings)
	rmdPlanning := answers.Str(model.KeyTimedRMDPlanning)

	timeline := retirementAge - assumedCurrentAge
	score := 0

	switch rmdPlanning {
	case "yes_long_term_plan":
		score++
	case "no_unclear":
		score--
	}

	if annualSavings < 20000 {
		score++
	} else if annualSavings >= 30000 {
		score--
	}

	if timeline > 10 && totalSavings >= 1000000 {
		score--
	}
	if timeline > 20 && annualSavings >= 30000 {
		score--
	}
	if retirementAge > 65 && totalSavings >= 1000000 {
		score--
	}
	if totalSavings >= 1000000 && annualCost == 50000 {
		score--
	}
	if totalSavings >= 1000000 && answers.Includes(model.KeyWorkBenefits, "pension") {
		score--
	}
	if totalSavings >= 1000000 && answers.Includes(model.KeyWorkBenefits, "deferred_compensation") {
		score--
	}
	if totalSavings < 350000 && annualCost >= 150000 {
		score += 2
	}
	if totalSavings < 200000 && timeline < 5 {
		score += 2
	}

	rec := model.ScoreRecord{Score: float64(score)}
	// The documented "Average Tax Burden"/at_risk result for a score of
	// exactly 0 is unreachable: the <= 0 branch claims it first. Kept
	// as-is pending product review of the threshold.
	if score <= 0 {
		rec.Result, rec.Status = "Heavy Projected Tax Burden", model.StatusOffTrack
	} else {
		rec.Result, rec.Status = "Low Tax Burden", model.StatusOnTrack
	}
	return rec
}
