package scoring

import "github.com/retireus/checkpoint/internal/model"

// Component weights of the risk-of-failure composite.
const (
	pacingWeight   = 0.5
	timelineWeight = 0.25
	redFlagWeight  = 0.25
)

// redFlagScores assigns risk weight to the flags that feed the
// composite. Flags not listed contribute 0.
var redFlagScores = map[string]float64{
	"basic_rf1":  3,
	"basic_rf3":  4,
	"basic_rf4":  4,
	"basic_rf5":  2,
	"tax_rf1":    2,
	"wealth_rf3": 3,
}

// timelineScore buckets years-to-retirement into a risk score: the
// shorter the runway, the higher the risk.
func timelineScore(timeline int) float64 {
	switch {
	case timeline <= 5:
		return 3
	case timeline <= 10:
		return 2
	case timeline <= 15:
		return 0
	default:
		return -2
	}
}

// RiskOfFailure blends the pacing score, the retirement timeline, and
// the weighted red flags into a single composite rounded to 2 decimals.
func RiskOfFailure(answers model.AnswerSet, flags []model.RedFlag, pacingScore float64) model.ScoreRecord {
	pacingWeighted := pacingScore * pacingWeight

	retirementAge := answers.Int(model.KeyRetirementAge, defaultRetirementAge)
	timelineWeighted := timelineScore(retirementAge-assumedCurrentAge) * timelineWeight

	flagTotal := 0.0
	for _, f := range flags {
		flagTotal += redFlagScores[f.ID]
	}
	flagsWeighted := flagTotal * redFlagWeight

	total := pacingWeighted + timelineWeighted + flagsWeighted

	rec := model.ScoreRecord{
		Score: round2(total),
		Details: model.RiskComponents{
			Pacing:   pacingWeighted,
			Timeline: timelineWeighted,
			RedFlags: flagsWeighted,
		},
	}
	switch {
	case total < 2:
		rec.Result, rec.Status = "On Track", model.StatusOnTrack
	case total <= 4:
		rec.Result, rec.Status = "At Risk", model.StatusAtRisk
	default:
		rec.Result, rec.Status = "Likely Off Pace", model.StatusOffTrack
	}
	return rec
}
