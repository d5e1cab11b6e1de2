package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/planfit/hpgo/internal/domain"
)

// Savings product types as they appear in the product_type CSV column.
const (
	ProductTypeDeposit = "예금"
	ProductTypeSavings = "적금"
)

// DefaultTopSavings is how many products per type a filter returns.
const DefaultTopSavings = 3

// SavingsFilter carries the user-side conditions a product must satisfy.
type SavingsFilter struct {
	Age             int
	IsFirstCustomer bool
	TermMonths      int
	TopK            int
}

// SavingsCatalog serves deposit and savings products loaded from a CSV
// file with a header row.
type SavingsCatalog struct {
	products []domain.SavingsProduct
}

// LoadSavingsCatalog reads the product CSV. Column order is taken from
// the header; unknown columns are ignored, missing ones leave zero
// values. Rows with an unparseable rate are skipped rather than failing
// the whole load.
func LoadSavingsCatalog(path string) (*SavingsCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("CSV 파일을 찾을 수 없습니다: %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("CSV 헤더 읽기 실패: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSV 로드 실패 (%s): %w", path, err)
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	products := make([]domain.SavingsProduct, 0, len(rows))
	for _, row := range rows {
		maxRate, err := strconv.ParseFloat(field(row, "max_rate"), 64)
		if err != nil {
			continue
		}
		baseRate, _ := strconv.ParseFloat(field(row, "base_rate"), 64)
		minAge, _ := strconv.Atoi(field(row, "condition_min_age"))
		minTerm, _ := strconv.Atoi(field(row, "min_term"))
		maxTerm, _ := strconv.Atoi(field(row, "max_term"))
		firstOnly := parseCSVBool(field(row, "condition_first_customer"))

		products = append(products, domain.SavingsProduct{
			ProductType:       field(row, "product_type"),
			Name:              field(row, "product_name"),
			Bank:              field(row, "bank_name"),
			BaseRate:          baseRate,
			MaxRate:           maxRate,
			MinAge:            minAge,
			FirstCustomerOnly: firstOnly,
			MinTermMonths:     minTerm,
			MaxTermMonths:     maxTerm,
		})
	}
	return &SavingsCatalog{products: products}, nil
}

// NewSavingsCatalog wraps an in-memory product list.
func NewSavingsCatalog(products []domain.SavingsProduct) *SavingsCatalog {
	return &SavingsCatalog{products: products}
}

// Len reports the number of loaded products.
func (c *SavingsCatalog) Len() int {
	return len(c.products)
}

// FilterTop returns the best deposit and savings products matching the
// filter, each list sorted by max rate descending and cut to TopK. A
// product qualifies when the user meets its minimum age, its term range
// covers the target term, and it is not restricted to first-time
// customers the user is not.
func (c *SavingsCatalog) FilterTop(f SavingsFilter) (deposits, savings []domain.SavingsProduct) {
	k := f.TopK
	if k <= 0 {
		k = DefaultTopSavings
	}
	return c.topByType(ProductTypeDeposit, f, k), c.topByType(ProductTypeSavings, f, k)
}

func (c *SavingsCatalog) topByType(productType string, f SavingsFilter, k int) []domain.SavingsProduct {
	matched := []domain.SavingsProduct{}
	for _, p := range c.products {
		if p.ProductType != productType {
			continue
		}
		if p.MinAge > f.Age {
			continue
		}
		if p.FirstCustomerOnly && !f.IsFirstCustomer {
			continue
		}
		if p.MinTermMonths > f.TermMonths || p.MaxTermMonths < f.TermMonths {
			continue
		}
		matched = append(matched, p)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MaxRate > matched[j].MaxRate
	})
	if len(matched) > k {
		matched = matched[:k]
	}
	return matched
}

func parseCSVBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "y", "yes":
		return true
	}
	return false
}

// TopSavings satisfies the engine's savings recommender with the
// default per-type cut.
func (c *SavingsCatalog) TopSavings(age int, isFirstCustomer bool, termMonths int) (deposits, savings []domain.SavingsProduct) {
	return c.FilterTop(SavingsFilter{
		Age:             age,
		IsFirstCustomer: isFirstCustomer,
		TermMonths:      termMonths,
	})
}
