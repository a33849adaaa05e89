package detect

import "github.com/retireus/checkpoint/internal/model"

// tierThresholds holds the minimum flag count per tier before that tier
// is recommended. Basic Planning and Wealth Mastery trigger on a single
// flag; Tax Mastery needs two.
var tierThresholds = map[model.ServiceTier]int{
	model.TierBasicPlanning: 1,
	model.TierTaxMastery:    2,
	model.TierWealthMastery: 1,
}

// Recommend partitions the detected flags by tier and returns the tiers
// whose flag counts meet their thresholds, each mapped to the flags that
// justified it in detection order. A tier absent from the map is not
// recommended; no tier ever maps to an empty list.
func Recommend(flags []model.RedFlag) map[model.ServiceTier][]model.RedFlag {
	byTier := make(map[model.ServiceTier][]model.RedFlag)
	for _, f := range flags {
		byTier[f.Tier] = append(byTier[f.Tier], f)
	}

	recommendations := make(map[model.ServiceTier][]model.RedFlag)
	for _, tier := range model.ServiceTiers {
		if len(byTier[tier]) >= tierThresholds[tier] {
			recommendations[tier] = byTier[tier]
		}
	}
	return recommendations
}
