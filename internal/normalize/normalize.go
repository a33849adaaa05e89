// Package normalize coerces raw questionnaire payloads into the typed
// answer set the engine consumes. The engine performs no validation of
// its own, so every recognized field is forced into its expected shape
// here: lists stay lists, numerics become ints (0 on parse failure),
// single-select codes pass through as strings. Unrecognized keys are
// dropped, and so are empty or zero numeric answers, which behave like
// unanswered questions downstream.
package normalize

import (
	"encoding/json"
	"strconv"

	"github.com/retireus/checkpoint/internal/model"
)

var multiSelectKeys = []string{
	model.KeyConcerns,
	model.KeyWorkBenefits,
	model.KeyAccountTypes,
}

var numericKeys = []string{
	model.KeyRetirementAge,
	model.KeyAnnualCost,
	model.KeyPensionIncome,
	model.KeyAnnualSavings,
	model.KeyTotalSavings,
}

var singleSelectKeys = []string{
	model.KeyInvestmentStyle,
	model.KeyTimedValueMore,
	model.KeyTimedUpsetMore,
	model.KeyTimedSavingEnough,
	model.KeyTimedOnPace,
	model.KeyTimedInvestmentsOK,
	model.KeyTimedRMDPlanning,
	model.KeyTimedMarketCrash,
	model.KeyTimedFinancialPlan,
	model.KeyTimedCrashLoss,
	model.KeyCurrentProgress,
	model.KeyTaxConcern,
	model.KeyVolatilityConcern,
	model.KeyTotalSavingsNeeded,
	model.KeyAnnualCostSelect,
}

// Answers builds a normalized answer set from a raw decoded payload.
func Answers(raw map[string]any) model.AnswerSet {
	answers := make(model.AnswerSet)

	for _, key := range multiSelectKeys {
		if v, ok := raw[key]; ok {
			answers[key] = toStringList(v)
		}
	}

	for _, key := range numericKeys {
		v, ok := raw[key]
		if !ok || unanswered(v) {
			continue
		}
		answers[key] = toInt(v)
	}

	for _, key := range singleSelectKeys {
		if v, ok := raw[key]; ok {
			if s, ok := v.(string); ok {
				answers[key] = s
			}
		}
	}

	return answers
}

// unanswered reports whether a numeric field carries no usable value:
// nil, empty string, or a zero number. An explicit zero is treated the
// same as a missing answer, so scoring defaults take over for it.
func unanswered(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case string:
		return n == ""
	case int:
		return n == 0
	case int64:
		return n == 0
	case float64:
		return n == 0
	case json.Number:
		f, err := n.Float64()
		return err == nil && f == 0
	default:
		return false
	}
}

// toStringList keeps list values, dropping non-string elements; anything
// that is not a list becomes empty.
func toStringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if l, ok := v.([]string); ok {
			return l
		}
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// toInt coerces JSON numbers, strings, and native ints to int, with 0 on
// anything unparseable.
func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil {
				return 0
			}
			return int(f)
		}
		return int(i)
	case string:
		// Only whole-number strings parse; "12000.5" is not a valid
		// answer and falls through to 0 like any other junk string.
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}
