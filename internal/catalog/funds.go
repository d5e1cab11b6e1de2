package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/planfit/hpgo/internal/domain"
	"github.com/planfit/hpgo/internal/normalize"
)

// FundCatalog serves fund candidates loaded from a JSON data file. It
// satisfies the engine's FundProvider and never reloads after creation.
type FundCatalog struct {
	funds []domain.ProductCandidate
}

// LoadFundCatalog reads a fund list from a JSON file. The top-level
// structure must be a list; each entry carries risk_level, product_name
// and the optional ranking metrics.
func LoadFundCatalog(path string) (*FundCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("펀드 데이터 파일을 찾을 수 없습니다: %s: %w", path, err)
	}

	var funds []domain.ProductCandidate
	if err := json.Unmarshal(data, &funds); err != nil {
		return nil, fmt.Errorf("펀드 데이터 JSON 파싱 실패: %w", err)
	}
	return &FundCatalog{funds: funds}, nil
}

// NewFundCatalog wraps an in-memory fund list, mainly for tests and
// request bodies that carry the funds directly.
func NewFundCatalog(funds []domain.ProductCandidate) *FundCatalog {
	return &FundCatalog{funds: funds}
}

// Funds returns the loaded candidates. Callers must not mutate the
// returned slice's entries; a fresh slice header is returned each call.
func (c *FundCatalog) Funds() ([]domain.ProductCandidate, error) {
	out := make([]domain.ProductCandidate, len(c.funds))
	copy(out, c.funds)
	return out, nil
}

// Len reports the number of loaded funds.
func (c *FundCatalog) Len() int {
	return len(c.funds)
}

// TopFundByRisk picks, for each risk level present in the input, the
// single fund with the highest expected return. Entries without a risk
// level are skipped. Results come back sorted by expected return,
// highest first.
func TopFundByRisk(funds []domain.ProductCandidate) []domain.ProductCandidate {
	best := map[domain.RiskTier]domain.ProductCandidate{}
	for _, f := range funds {
		if f.RiskTier == "" {
			continue
		}
		key := domain.RiskTier(domain.NormalizeTierLabel(string(f.RiskTier)))
		current, ok := best[key]
		if !ok || normalize.Percent(current.ExpectedReturn) < normalize.Percent(f.ExpectedReturn) {
			best[key] = f
		}
	}

	out := make([]domain.ProductCandidate, 0, len(best))
	for _, f := range best {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		return normalize.Percent(out[i].ExpectedReturn) > normalize.Percent(out[j].ExpectedReturn)
	})
	return out
}
