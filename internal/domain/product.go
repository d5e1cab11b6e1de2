package domain

import (
	"github.com/shopspring/decimal"
)

// RiskTier is one of the six discrete fund risk labels. Source data may or
// may not carry the internal spaces, so comparisons go through
// NormalizeTierLabel rather than raw equality.
type RiskTier string

const (
	RiskVeryLow      RiskTier = "매우 낮은 위험"
	RiskLow          RiskTier = "낮은 위험"
	RiskModerate     RiskTier = "보통 위험"
	RiskSlightlyHigh RiskTier = "다소 높은 위험"
	RiskHigh         RiskTier = "높은 위험"
	RiskVeryHigh     RiskTier = "매우 높은 위험"
)

// ProductCandidate is a read-only catalog entry fed to the ranker.
// Score is the primary quality metric; candidates without one are
// excluded from ranking. The remaining metrics are ancillary sort keys.
type ProductCandidate struct {
	Name           string              `json:"product_name"`
	Description    string              `json:"description,omitempty"`
	RiskTier       RiskTier            `json:"risk_level"`
	ExpectedReturn string              `json:"expected_return,omitempty"`
	Score          decimal.NullDecimal `json:"score"`
	Yield1Y        decimal.NullDecimal `json:"yield_1y"`
	Yield3M        decimal.NullDecimal `json:"yield_3m"`
	Volatility     decimal.NullDecimal `json:"volatility"`
	Fee            decimal.NullDecimal `json:"fee"`
}

// SelectedItem is a user-chosen product amount checked against a bucket limit.
type SelectedItem struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// SavingsProduct is one row of the deposit/installment-savings catalog.
type SavingsProduct struct {
	ProductType       string  `json:"product_type"`
	Name              string  `json:"product_name"`
	Bank              string  `json:"bank_name"`
	BaseRate          float64 `json:"base_rate"`
	MaxRate           float64 `json:"max_rate"`
	MinAge            int     `json:"condition_min_age"`
	FirstCustomerOnly bool    `json:"condition_first_customer"`
	MinTermMonths     int     `json:"min_term"`
	MaxTermMonths     int     `json:"max_term"`
}
