package model

import "fmt"

// ServiceTier is one of the three advisory offerings, ordered by
// increasing specialization.
type ServiceTier int

const (
	TierBasicPlanning ServiceTier = iota
	TierTaxMastery
	TierWealthMastery
)

// ServiceTiers lists all tiers in evaluation and presentation order
// (Basic → Tax → Wealth). Consumers iterate this slice rather than
// ranging over recommendation maps so output order stays stable.
var ServiceTiers = []ServiceTier{TierBasicPlanning, TierTaxMastery, TierWealthMastery}

// String returns the tier's display name.
func (t ServiceTier) String() string {
	switch t {
	case TierBasicPlanning:
		return "Basic Planning"
	case TierTaxMastery:
		return "Tax Mastery"
	case TierWealthMastery:
		return "Wealth Mastery"
	default:
		return fmt.Sprintf("ServiceTier(%d)", int(t))
	}
}

// MarshalText emits the display name so tiers serialize identically in
// JSON and YAML.
func (t ServiceTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// RedFlag is a detected risk indicator tied to one service tier. The ID
// is a stable short code that deterministically identifies the predicate
// that produced it.
type RedFlag struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Tier        ServiceTier `json:"tier"`
	Description string      `json:"description"`
}
