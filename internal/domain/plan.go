package domain

import (
	"github.com/shopspring/decimal"
)

// EligibilityResult is the outcome of the LTV calculation.
// MaxLoanAmount always equals floor(target_price * LTVRatio / 100).
type EligibilityResult struct {
	LTVRatio      decimal.Decimal `json:"ltv_ratio"`
	MaxLoanAmount int64           `json:"max_loan_amount"`
	Reasons       []string        `json:"reasons"`
}

// AllocationPlan splits a total across the three buckets. The three
// amounts always sum exactly to the allocated total; integer rounding
// remainder is absorbed by Fund.
type AllocationPlan struct {
	Deposit int64 `json:"deposit"`
	Savings int64 `json:"savings"`
	Fund    int64 `json:"fund"`
}

// Total returns the sum of the three bucket amounts.
func (a AllocationPlan) Total() int64 {
	return a.Deposit + a.Savings + a.Fund
}

// SimulationResult is the terminal state of a compound growth projection.
// Converged is false when the 600-month cap was hit before the shortfall
// was covered; that is a valid outcome, not an error.
type SimulationResult struct {
	MonthsNeeded  int             `json:"months_needed"`
	Converged     bool            `json:"converged"`
	SavingBalance int64           `json:"saving_balance"`
	FundBalance   int64           `json:"fund_balance"`
	TotalBalance  int64           `json:"total_balance"`
	MonthlyInvest int64           `json:"monthly_invest"`
	SavingRatio   decimal.Decimal `json:"saving_ratio"`
	FundRatio     decimal.Decimal `json:"fund_ratio"`
}

// SelectionResult reports a per-bucket validation of user-chosen amounts.
// Remaining may be negative; a negative remaining is the over-allocation
// signal and is never clamped.
type SelectionResult struct {
	TotalSelected int64    `json:"total_selected"`
	Remaining     int64    `json:"remaining"`
	Violations    []string `json:"violations"`
}

// FundingPlan is the composed output of the full planning pipeline.
type FundingPlan struct {
	Goal            HousingGoal          `json:"goal"`
	Profile         UserFinancialProfile `json:"profile"`
	Eligibility     EligibilityResult    `json:"eligibility"`
	Shortfall       int64                `json:"shortfall_amount"`
	Simulation      SimulationResult     `json:"simulation"`
	Allocation      AllocationPlan       `json:"allocation"`
	AllocationRatio string               `json:"allocation_ratio"`
	Funds           []ProductCandidate   `json:"recommended_funds"`
	FundsNote       string               `json:"funds_note,omitempty"`
	TopDeposits     []SavingsProduct     `json:"top_deposits,omitempty"`
	TopSavings      []SavingsProduct     `json:"top_savings,omitempty"`
}
