package model

// Question keys recognized by the engine. Keys retain the questionnaire's
// numbering so answer payloads round-trip unchanged from the quiz frontend.
const (
	KeyConcerns           = "q2_concerns"
	KeyRetirementAge      = "q4_retirement_age"
	KeyAnnualCost         = "q7_annual_retirement_cost"
	KeyWorkBenefits       = "q8_work_benefits"
	KeyPensionIncome      = "q8b_pension_income"
	KeyInvestmentStyle    = "q9_investment_style"
	KeyAnnualSavings      = "q10_annual_savings"
	KeyAccountTypes       = "q11_account_types"
	KeyTotalSavings       = "q12_total_savings"
	KeyCurrentProgress    = "q_current_progress"
	KeyTaxConcern         = "q_tax_concern"
	KeyVolatilityConcern  = "q_market_volatility_concern"
	KeyTotalSavingsNeeded = "q_total_savings_needed"
	KeyAnnualCostSelect   = "q_annual_cost"

	KeyTimedValueMore     = "timed_q1_value_more"
	KeyTimedUpsetMore     = "timed_q2_upset_more"
	KeyTimedSavingEnough  = "timed_q3_saving_enough"
	KeyTimedOnPace        = "timed_q4_on_pace"
	KeyTimedInvestmentsOK = "timed_q5_investments_appropriate"
	KeyTimedRMDPlanning   = "timed_q6_rmd_planning"
	KeyTimedMarketCrash   = "timed_q7_market_crash"
	KeyTimedFinancialPlan = "timed_q8_financial_plan"
	KeyTimedCrashLoss     = "timed_q_portfolio_crash_loss"
)

// AnswerSet is the normalized questionnaire response: question key to a
// typed value (string code, int, or []string tag list). It is produced by
// the normalizer and treated as immutable for the duration of one
// assessment. Missing keys are "unanswered"; each rule supplies its own
// default through the accessors below.
type AnswerSet map[string]any

// Str returns the single-select answer for key, or "" when unanswered or
// not a string.
func (a AnswerSet) Str(key string) string {
	s, _ := a[key].(string)
	return s
}

// Int returns the numeric answer for key, or def when unanswered or not
// an int.
func (a AnswerSet) Int(key string, def int) int {
	n, ok := a[key].(int)
	if !ok {
		return def
	}
	return n
}

// List returns the multi-select answer for key, or nil when unanswered.
func (a AnswerSet) List(key string) []string {
	l, _ := a[key].([]string)
	return l
}

// Includes reports whether the multi-select answer for key contains tag.
func (a AnswerSet) Includes(key, tag string) bool {
	for _, v := range a.List(key) {
		if v == tag {
			return true
		}
	}
	return false
}
