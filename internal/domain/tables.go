package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Static rule tables. These are engine-owned, read-only configuration:
// initialized here at process start and never mutated afterward.

// baseLTV maps housing type to its base loan-to-value percentage.
var baseLTV = map[HousingType]int64{
	HousingApartment: 70,
	HousingOfficetel: 60,
	HousingMultiUnit: 60,
	HousingDetached:  50,
}

// DefaultBaseLTV applies when the housing type is not recognized.
const DefaultBaseLTV = 60

// BaseLTV returns the base LTV percentage for a housing type.
func BaseLTV(t HousingType) decimal.Decimal {
	if v, ok := baseLTV[t]; ok {
		return decimal.NewFromInt(v)
	}
	return decimal.NewFromInt(DefaultBaseLTV)
}

// tendencyTiers maps each investor tendency to the ordered subset of risk
// tiers its holder may invest in. Order is recommendation order: ranked
// output is concatenated tier by tier in this sequence. The most
// aggressive tendency allows all six tiers, the most conservative only
// the three lowest.
var tendencyTiers = map[InvestorTendency][]RiskTier{
	TendencyStable:           {RiskVeryLow, RiskLow, RiskModerate},
	TendencyStabilitySeeking: {RiskVeryLow, RiskLow, RiskModerate, RiskSlightlyHigh},
	TendencyRiskNeutral:      {RiskModerate, RiskSlightlyHigh, RiskLow, RiskVeryLow},
	TendencyActive:           {RiskSlightlyHigh, RiskHigh, RiskModerate, RiskLow, RiskVeryLow},
	TendencyAggressive:       {RiskVeryHigh, RiskHigh, RiskSlightlyHigh, RiskModerate, RiskLow, RiskVeryLow},
}

// AllowedTiers returns the ordered tier subset for a tendency. The second
// return is false for an unknown tendency; callers must treat that as a
// validation error, not fall back to a default.
func AllowedTiers(t InvestorTendency) ([]RiskTier, bool) {
	tiers, ok := tendencyTiers[t]
	if !ok {
		return nil, false
	}
	out := make([]RiskTier, len(tiers))
	copy(out, tiers)
	return out, true
}

// recommendedRatios maps tendency to a deposit:savings:fund ratio string.
// Each triple sums to 100.
var recommendedRatios = map[InvestorTendency]string{
	TendencyStable:           "50:40:10",
	TendencyStabilitySeeking: "40:40:20",
	TendencyRiskNeutral:      "30:40:30",
	TendencyActive:           "20:30:50",
	TendencyAggressive:       "10:20:70",
}

// RecommendedRatio returns the recommended bucket ratio for a tendency,
// or the risk-neutral split for an unknown one.
func RecommendedRatio(t InvestorTendency) string {
	if r, ok := recommendedRatios[t]; ok {
		return r
	}
	return recommendedRatios[TendencyRiskNeutral]
}

// NormalizeTierLabel strips all whitespace from a risk tier label so that
// "매우낮은위험" and "매우 낮은 위험" compare equal.
func NormalizeTierLabel(label string) string {
	return strings.Join(strings.Fields(label), "")
}
