package calculation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/planfit/hpgo/internal/domain"
)

// DefaultTopKPerTier is how many products each allowed risk tier
// contributes when the caller does not specify k.
const DefaultTopKPerTier = 2

// Sort keys accepted by RankProducts. Volatility and fee sort
// ascending; for those two, lower is better.
const (
	SortByScore      = "score"
	SortByYield1Y    = "yield_1y"
	SortByYield3M    = "yield_3m"
	SortByVolatility = "volatility"
	SortByFee        = "fee"
)

// RankResult is the outcome of a product ranking. An empty Products
// slice is a normal outcome and carries a descriptive Message.
type RankResult struct {
	Products []domain.ProductCandidate `json:"products"`
	Message  string                    `json:"message,omitempty"`
}

// RankProducts selects the top k candidates per allowed risk tier for an
// investor tendency, concatenated tier by tier in the tendency table's
// order. A tier's top picks stand even when another tier's lower-ranked
// candidate would score higher overall; there is no global re-sort.
// Candidates without a quality score are excluded from ranking entirely.
// An unknown tendency or non-positive k is a caller error.
func RankProducts(tendency domain.InvestorTendency, candidates []domain.ProductCandidate, k int, sortKey string) (RankResult, error) {
	tiers, ok := domain.AllowedTiers(tendency)
	if !ok {
		return RankResult{}, fmt.Errorf("알 수 없는 투자 성향입니다: %q (안정형/안정추구형/위험중립형/적극투자형/공격투자형 중 하나여야 합니다)", tendency)
	}
	if k <= 0 {
		return RankResult{}, fmt.Errorf("티어별 선택 개수는 1 이상이어야 합니다: %d", k)
	}
	metric, ascending, err := sortMetric(sortKey)
	if err != nil {
		return RankResult{}, err
	}

	if len(candidates) == 0 {
		return RankResult{Products: []domain.ProductCandidate{}, Message: "후보 상품이 없습니다."}, nil
	}

	selected := []domain.ProductCandidate{}
	for _, tier := range tiers {
		want := domain.NormalizeTierLabel(string(tier))

		var inTier []domain.ProductCandidate
		for _, c := range candidates {
			if !c.Score.Valid {
				continue
			}
			if domain.NormalizeTierLabel(string(c.RiskTier)) == want {
				inTier = append(inTier, c)
			}
		}

		sort.SliceStable(inTier, func(i, j int) bool {
			return metricLess(metric(inTier[i]), metric(inTier[j]), ascending)
		})

		if len(inTier) > k {
			inTier = inTier[:k]
		}
		selected = append(selected, inTier...)
	}

	if len(selected) == 0 {
		return RankResult{
			Products: []domain.ProductCandidate{},
			Message:  fmt.Sprintf("%s 성향에 허용된 위험 등급에서 추천 가능한 상품이 없습니다.", tendency),
		}, nil
	}
	return RankResult{Products: selected}, nil
}

// sortMetric resolves a sort key to a metric accessor and direction.
func sortMetric(key string) (func(domain.ProductCandidate) decimal.NullDecimal, bool, error) {
	switch key {
	case "", SortByScore:
		return func(c domain.ProductCandidate) decimal.NullDecimal { return c.Score }, false, nil
	case SortByYield1Y:
		return func(c domain.ProductCandidate) decimal.NullDecimal { return c.Yield1Y }, false, nil
	case SortByYield3M:
		return func(c domain.ProductCandidate) decimal.NullDecimal { return c.Yield3M }, false, nil
	case SortByVolatility:
		return func(c domain.ProductCandidate) decimal.NullDecimal { return c.Volatility }, true, nil
	case SortByFee:
		return func(c domain.ProductCandidate) decimal.NullDecimal { return c.Fee }, true, nil
	default:
		return nil, false, fmt.Errorf("지원하지 않는 정렬 기준입니다: %q", key)
	}
}

// metricLess orders two metric values for sorting. Candidates missing
// the requested metric sort after those that have it, regardless of
// direction.
func metricLess(a, b decimal.NullDecimal, ascending bool) bool {
	switch {
	case !a.Valid && !b.Valid:
		return false
	case !a.Valid:
		return false
	case !b.Valid:
		return true
	}
	if ascending {
		return a.Decimal.LessThan(b.Decimal)
	}
	return a.Decimal.GreaterThan(b.Decimal)
}
