// Package detect evaluates the checkpoint questionnaire against the red
// flag rule set. Every rule is an independent boolean predicate over the
// answer set; rules never short-circuit each other and missing answers
// default rather than error, so detection is total over any input.
package detect

import (
	"go.uber.org/zap"

	"github.com/retireus/checkpoint/internal/model"
)

// rule pairs a red flag definition with the predicate that triggers it.
type rule struct {
	id          string
	name        string
	tier        model.ServiceTier
	description string
	match       func(model.AnswerSet) bool
}

// rules holds all 15 red flag rules in evaluation order: Basic 1-7,
// Tax 1-5, Wealth 1-3. Detect output preserves this order.
var rules = []rule{
	{
		id:          "basic_rf1",
		name:        "Haven't Calculated Retirement Goal",
		tier:        model.TierBasicPlanning,
		description: "User lacks clarity on retirement savings target and timeline",
		match: func(a model.AnswerSet) bool {
			return a.Includes(model.KeyConcerns, "running_out_of_money") ||
				a.Includes(model.KeyConcerns, "not_being_on_pace") ||
				a.Str(model.KeyTotalSavingsNeeded) == "no_idea" ||
				a.Str(model.KeyAnnualCostSelect) == "no_idea" ||
				a.Str(model.KeyTimedOnPace) == "not_sure"
		},
	},
	{
		id:          "basic_rf2",
		name:        "Investment Needs Are Unknown",
		tier:        model.TierBasicPlanning,
		description: "User is uncertain about investment strategy and retirement readiness",
		match: func(a model.AnswerSet) bool {
			return a.Includes(model.KeyConcerns, "not_being_on_pace") ||
				a.Str(model.KeyTimedOnPace) == "not_sure" ||
				a.Str(model.KeyTimedInvestmentsOK) == "should_reevaluate" ||
				a.Str(model.KeyCurrentProgress) == "savings_not_set_for_retirement" ||
				a.Str(model.KeyCurrentProgress) == "havent_started_saving" ||
				a.Str(model.KeyTimedFinancialPlan) == "dont_have_one"
		},
	},
	{
		id:          "basic_rf3",
		name:        "Investments May Be Out Of Alignment",
		tier:        model.TierBasicPlanning,
		description: "Portfolio may not match risk tolerance or retirement timeline",
		match: func(a model.AnswerSet) bool {
			return a.Str(model.KeyVolatilityConcern) == "not_sure_risk_exposure" ||
				a.Str(model.KeyTimedFinancialPlan) == "dont_have_one" ||
				a.Includes(model.KeyConcerns, "market_volatility") ||
				a.Str(model.KeyTimedCrashLoss) == "no_idea"
		},
	},
	{
		id:          "basic_rf4",
		name:        "Market Risk Is HIGH",
		tier:        model.TierBasicPlanning,
		description: "User has high exposure to market volatility or risky investment behavior",
		match: func(a model.AnswerSet) bool {
			return a.Str(model.KeyInvestmentStyle) == "a" ||
				a.Str(model.KeyTimedMarketCrash) == "concerned_stressed"
		},
	},
	{
		id:          "basic_rf5",
		name:        "Inflation Risk Is HIGH",
		tier:        model.TierBasicPlanning,
		description: "Conservative investment strategy may not keep pace with inflation",
		match: func(a model.AnswerSet) bool {
			style := a.Str(model.KeyInvestmentStyle)
			return style == "c" || style == "d"
		},
	},
	{
		id:          "basic_rf6",
		name:        "Old Employer Plan Limiting Strategy",
		tier:        model.TierBasicPlanning,
		description: "Old employer retirement plans may have limited investment options or high fees",
		match: func(a model.AnswerSet) bool {
			return a.Includes(model.KeyAccountTypes, "old_employer_plan")
		},
	},
	{
		id:          "basic_rf7",
		name:        "Limited Compounding Savings",
		tier:        model.TierBasicPlanning,
		description: "Low annual savings rate may not be sufficient for retirement goals",
		match: func(a model.AnswerSet) bool {
			return a.Int(model.KeyAnnualSavings, 0) <= 10000
		},
	},
	{
		id:          "tax_rf1",
		name:        "You May Face Tax Penalties",
		tier:        model.TierTaxMastery,
		description: "Early retirement may trigger penalty taxes on retirement account withdrawals",
		match: func(a model.AnswerSet) bool {
			return a.Int(model.KeyRetirementAge, 65) < 59
		},
	},
	{
		id:          "tax_rf2",
		name:        "RMDs Need To Be Evaluated",
		tier:        model.TierTaxMastery,
		description: "Required Minimum Distributions may create unexpected tax burden",
		match: func(a model.AnswerSet) bool {
			hasPension := a.Includes(model.KeyWorkBenefits, "pension")
			progress := a.Str(model.KeyCurrentProgress)
			return a.Int(model.KeyRetirementAge, 65) > 67 ||
				a.Str(model.KeyTaxConcern) == "not_much_tax_free_savings" ||
				a.Str(model.KeyTimedRMDPlanning) == "no_unclear" ||
				(hasPension && progress == "only_employer_account") ||
				(hasPension && progress == "multiple_retirement_accounts") ||
				a.Int(model.KeyPensionIncome, 0) >= 75000
		},
	},
	{
		id:          "tax_rf3",
		name:        "Limited Tax Diversification",
		tier:        model.TierTaxMastery,
		description: "Retirement savings may be concentrated in single tax treatment category",
		match: func(a model.AnswerSet) bool {
			concern := a.Str(model.KeyTaxConcern)
			return concern == "lot_in_pretax_accounts" ||
				concern == "not_much_tax_free_savings" ||
				a.Str(model.KeyCurrentProgress) == "only_employer_account"
		},
	},
	{
		id:          "tax_rf4",
		name:        "No Tax-Sheltered Growth",
		tier:        model.TierTaxMastery,
		description: "Missing tax-free growth opportunities like Roth accounts or life insurance",
		match: func(a model.AnswerSet) bool {
			return !a.Includes(model.KeyAccountTypes, "roth_accounts") &&
				!a.Includes(model.KeyAccountTypes, "whole_life")
		},
	},
	{
		id:          "tax_rf5",
		name:        "Retirement Tax Liability Unknown",
		tier:        model.TierTaxMastery,
		description: "User lacks understanding of future tax obligations in retirement",
		match: func(a model.AnswerSet) bool {
			return a.Includes(model.KeyConcerns, "paying_too_much_taxes") ||
				a.Str(model.KeyTimedRMDPlanning) == "no_unclear"
		},
	},
	{
		id:          "wealth_rf1",
		name:        "Possible Estate Planning Risks",
		tier:        model.TierWealthMastery,
		description: "High net worth may require estate tax planning and wealth transfer strategies",
		match: func(a model.AnswerSet) bool {
			return a.Int(model.KeyTotalSavings, 0) > 2000000
		},
	},
	{
		id:          "wealth_rf2",
		name:        "Benefits With Unique Tax Implications",
		tier:        model.TierWealthMastery,
		description: "Executive compensation requires specialized tax and timing strategies",
		match: func(a model.AnswerSet) bool {
			return a.Includes(model.KeyWorkBenefits, "deferred_compensation") ||
				a.Includes(model.KeyWorkBenefits, "stock_options")
		},
	},
	{
		id:          "wealth_rf3",
		name:        "Single Equity Risk Exposure High",
		tier:        model.TierWealthMastery,
		description: "Concentrated stock positions create significant portfolio risk",
		match: func(a model.AnswerSet) bool {
			return a.Includes(model.KeyWorkBenefits, "stock_options")
		},
	},
}

// Detect runs every rule against the answer set and returns the
// triggered red flags in rule order. All rules run unconditionally;
// two calls with the same answers yield identical lists.
func Detect(answers model.AnswerSet) []model.RedFlag {
	var detected []model.RedFlag
	for _, r := range rules {
		if !r.match(answers) {
			continue
		}
		detected = append(detected, model.RedFlag{
			ID:          r.id,
			Name:        r.name,
			Tier:        r.tier,
			Description: r.description,
		})
	}

	zap.L().Debug("detect: rules evaluated",
		zap.Int("rules", len(rules)),
		zap.Int("triggered", len(detected)),
	)

	return detected
}
