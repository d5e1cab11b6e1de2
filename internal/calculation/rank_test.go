package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planfit/hpgo/internal/domain"
)

func score(f float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(f), Valid: true}
}

func candidate(name string, tier domain.RiskTier, s float64) domain.ProductCandidate {
	return domain.ProductCandidate{Name: name, RiskTier: tier, Score: score(s)}
}

func TestRankProducts_TopKPerTierInTableOrder(t *testing.T) {
	candidates := []domain.ProductCandidate{
		candidate("저위험1", domain.RiskVeryLow, 5.0),
		candidate("저위험2", domain.RiskVeryLow, 9.0),
		candidate("저위험3", domain.RiskVeryLow, 7.0),
		candidate("보통1", domain.RiskModerate, 99.0),
		candidate("낮음1", domain.RiskLow, 1.0),
	}

	result, err := RankProducts(domain.TendencyStable, candidates, 2, SortByScore)
	require.NoError(t, err)

	// Tier order wins over global score: the very-low tier's top two
	// come first even though 보통1 has the highest score overall.
	names := make([]string, 0, len(result.Products))
	for _, p := range result.Products {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"저위험2", "저위험3", "낮음1", "보통1"}, names)
}

func TestRankProducts_NeverMoreThanKPerTier(t *testing.T) {
	var candidates []domain.ProductCandidate
	for i := 0; i < 10; i++ {
		candidates = append(candidates, candidate("펀드", domain.RiskVeryLow, float64(i)))
	}

	result, err := RankProducts(domain.TendencyStable, candidates, 3, SortByScore)
	require.NoError(t, err)
	assert.Len(t, result.Products, 3)
}

func TestRankProducts_UnknownTendency(t *testing.T) {
	_, err := RankProducts("도박형", nil, 2, SortByScore)
	assert.Error(t, err)
}

func TestRankProducts_InvalidK(t *testing.T) {
	_, err := RankProducts(domain.TendencyStable, nil, -1, SortByScore)
	assert.Error(t, err)
}

func TestRankProducts_UnknownSortKey(t *testing.T) {
	_, err := RankProducts(domain.TendencyStable, nil, 2, "size")
	assert.Error(t, err)
}

func TestRankProducts_WhitespaceInsensitiveTierMatch(t *testing.T) {
	// Source data may carry tier labels without internal spaces.
	candidates := []domain.ProductCandidate{
		candidate("압축표기", domain.RiskTier("매우낮은위험"), 3.0),
		candidate("정상표기", "매우 낮은 위험", 2.0),
	}

	result, err := RankProducts(domain.TendencyStable, candidates, 2, SortByScore)
	require.NoError(t, err)
	require.Len(t, result.Products, 2)
	assert.Equal(t, "압축표기", result.Products[0].Name)
}

func TestRankProducts_MissingScoreExcluded(t *testing.T) {
	candidates := []domain.ProductCandidate{
		{Name: "무점수", RiskTier: domain.RiskVeryLow},
		candidate("유점수", domain.RiskVeryLow, 1.0),
	}

	result, err := RankProducts(domain.TendencyStable, candidates, 5, SortByScore)
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "유점수", result.Products[0].Name)
}

func TestRankProducts_AscendingForFeeAndVolatility(t *testing.T) {
	cheap := candidate("저비용", domain.RiskVeryLow, 1.0)
	cheap.Fee = score(0.3)
	pricey := candidate("고비용", domain.RiskVeryLow, 9.0)
	pricey.Fee = score(1.5)

	result, err := RankProducts(domain.TendencyStable, []domain.ProductCandidate{pricey, cheap}, 2, SortByFee)
	require.NoError(t, err)
	require.Len(t, result.Products, 2)
	assert.Equal(t, "저비용", result.Products[0].Name)
}

func TestRankProducts_EmptyOutcomesAreNormal(t *testing.T) {
	result, err := RankProducts(domain.TendencyStable, nil, 2, SortByScore)
	require.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.NotEmpty(t, result.Message)

	// Candidates exist but none in an allowed tier.
	result, err = RankProducts(domain.TendencyStable, []domain.ProductCandidate{
		candidate("초고위험", domain.RiskVeryHigh, 10.0),
	}, 2, SortByScore)
	require.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.NotEmpty(t, result.Message)
}

func TestRankProducts_AggressiveSeesAllTiers(t *testing.T) {
	candidates := []domain.ProductCandidate{
		candidate("초고위험", domain.RiskVeryHigh, 10.0),
		candidate("초저위험", domain.RiskVeryLow, 1.0),
	}

	result, err := RankProducts(domain.TendencyAggressive, candidates, 2, SortByScore)
	require.NoError(t, err)
	require.Len(t, result.Products, 2)
	// The aggressive table leads with the highest risk tier.
	assert.Equal(t, "초고위험", result.Products[0].Name)
}
