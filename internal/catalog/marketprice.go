package catalog

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/planfit/hpgo/internal/domain"
	"github.com/planfit/hpgo/internal/normalize"
)

// PriceProvider looks up the regional average purchase price for a
// housing type. A zero price with a nil error means no data for that
// region.
type PriceProvider interface {
	AvgPrice(location string, housingType domain.HousingType) (int64, error)
}

// marketPriceFile is the on-disk shape of the price data:
//
//	prices:
//	  - location: 서울특별시 동작구
//	    housing_type: 아파트
//	    avg_price: "9억 5천만"
type marketPriceFile struct {
	Prices []marketPriceEntry `yaml:"prices"`
}

type marketPriceEntry struct {
	Location    string `yaml:"location"`
	HousingType string `yaml:"housing_type"`
	AvgPrice    any    `yaml:"avg_price"`
}

// StaticPrices is a PriceProvider over a YAML data file loaded once at
// startup. Lookups normalize the location through the alias table, so
// "서울 동작구" and "서울특별시 동작구" hit the same entry.
type StaticPrices struct {
	prices map[string]int64
}

// LoadStaticPrices reads the market price YAML file.
func LoadStaticPrices(path string) (*StaticPrices, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("시세 데이터 파일을 찾을 수 없습니다: %s: %w", path, err)
	}

	var file marketPriceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("시세 데이터 파싱 실패: %w", err)
	}

	prices := make(map[string]int64, len(file.Prices))
	for _, e := range file.Prices {
		prices[priceKey(e.Location, domain.HousingType(e.HousingType))] = normalize.Currency(e.AvgPrice)
	}
	return &StaticPrices{prices: prices}, nil
}

// AvgPrice returns the average price for the region, or 0 when the
// region is not in the data set.
func (s *StaticPrices) AvgPrice(location string, housingType domain.HousingType) (int64, error) {
	return s.prices[priceKey(location, housingType)], nil
}

func priceKey(location string, housingType domain.HousingType) string {
	return normalize.Location(location) + "|" + string(housingType)
}

// CachedPrices decorates a PriceProvider with a CacheRepository. Only
// hits are cached: a zero price is recomputed every call so a data
// refresh behind the inner provider becomes visible.
type CachedPrices struct {
	inner PriceProvider
	cache CacheRepository
}

// NewCachedPrices wraps a provider with a cache.
func NewCachedPrices(inner PriceProvider, cache CacheRepository) *CachedPrices {
	return &CachedPrices{inner: inner, cache: cache}
}

func (c *CachedPrices) AvgPrice(location string, housingType domain.HousingType) (int64, error) {
	key := "market_price:" + priceKey(location, housingType)
	if cached, ok := c.cache.Get(key); ok {
		if price, err := strconv.ParseInt(cached, 10, 64); err == nil {
			return price, nil
		}
	}

	price, err := c.inner.AvgPrice(location, housingType)
	if err != nil {
		return 0, err
	}
	if price > 0 {
		// Lookup still succeeded if the cache write fails.
		_ = c.cache.Set(key, strconv.FormatInt(price, 10))
	}
	return price, nil
}
