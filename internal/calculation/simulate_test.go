package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func halfAndHalf() (decimal.Decimal, decimal.Decimal) {
	half := decimal.NewFromFloat(0.5)
	return half, half
}

func TestSimulate_NoShortfallReturnsImmediately(t *testing.T) {
	saving, fund := halfAndHalf()
	result := Simulate(SimulationParams{
		Shortfall:        0,
		AvailableAssets:  30_000_000,
		MonthlyIncome:    3_000_000,
		IncomeUsageRatio: decimal.NewFromInt(30),
		SavingYield:      decimal.NewFromInt(3),
		FundYield:        decimal.NewFromInt(6),
		SavingRatio:      saving,
		FundRatio:        fund,
	})

	assert.Equal(t, 0, result.MonthsNeeded)
	assert.True(t, result.Converged)
	// Ending balance is the available assets unchanged.
	assert.Equal(t, int64(30_000_000), result.TotalBalance)
	assert.Equal(t, int64(900_000), result.MonthlyInvest)
}

func TestSimulate_ConvergesOnSmallGap(t *testing.T) {
	saving, fund := halfAndHalf()
	params := SimulationParams{
		Shortfall:        10_000_000,
		AvailableAssets:  5_000_000,
		MonthlyIncome:    3_000_000,
		IncomeUsageRatio: decimal.NewFromInt(30),
		SavingYield:      decimal.NewFromInt(3),
		FundYield:        decimal.NewFromInt(6),
		SavingRatio:      saving,
		FundRatio:        fund,
	}
	result := Simulate(params)

	require.True(t, result.Converged)
	assert.Equal(t, referenceMonths(params), result.MonthsNeeded)
	assert.GreaterOrEqual(t, result.TotalBalance, int64(10_000_000))
	assert.Equal(t, result.TotalBalance, result.SavingBalance+result.FundBalance)
}

// referenceMonths replays the contract month loop independently of the
// production code: contribute, then compound each bucket by
// (1 + annual/100/12).
func referenceMonths(p SimulationParams) int {
	monthly := float64(p.MonthlyIncome) * 0.30
	saving := float64(p.AvailableAssets) * 0.5
	fund := float64(p.AvailableAssets) * 0.5
	months := 0
	for saving+fund < float64(p.Shortfall) && months < MaxSimulationMonths {
		months++
		saving = (saving + monthly*0.5) * (1 + 3.0/100/12)
		fund = (fund + monthly*0.5) * (1 + 6.0/100/12)
	}
	return months
}

func TestSimulate_CapsAtSixHundredMonths(t *testing.T) {
	// No income and no yield can never close the gap; the cap is a
	// valid terminal state, not an error.
	result := Simulate(SimulationParams{
		Shortfall:       100_000_000,
		AvailableAssets: 1_000_000,
		MonthlyIncome:   0,
		SavingRatio:     decimal.NewFromFloat(0.5),
		FundRatio:       decimal.NewFromFloat(0.5),
	})

	assert.Equal(t, MaxSimulationMonths, result.MonthsNeeded)
	assert.False(t, result.Converged)
	assert.Equal(t, int64(1_000_000), result.TotalBalance)
}

func TestSimulate_MonotonicGrowth(t *testing.T) {
	// With non-negative yields and contributions the balance never
	// shrinks month over month: running the projection against an
	// increasing sequence of targets yields non-decreasing balances.
	saving, fund := halfAndHalf()
	base := SimulationParams{
		AvailableAssets:  1_000_000,
		MonthlyIncome:    1_000_000,
		IncomeUsageRatio: decimal.NewFromInt(20),
		SavingYield:      decimal.NewFromInt(3),
		FundYield:        decimal.NewFromInt(6),
		SavingRatio:      saving,
		FundRatio:        fund,
	}

	prevBalance := int64(0)
	prevMonths := 0
	for _, target := range []int64{2_000_000, 5_000_000, 20_000_000, 100_000_000} {
		p := base
		p.Shortfall = target
		result := Simulate(p)
		require.True(t, result.Converged, "target %d", target)
		assert.GreaterOrEqual(t, result.TotalBalance, prevBalance)
		assert.GreaterOrEqual(t, result.MonthsNeeded, prevMonths)
		prevBalance = result.TotalBalance
		prevMonths = result.MonthsNeeded
	}
}

func TestSimulate_RatiosUsedAsGiven(t *testing.T) {
	// The simulator does not renormalize the split; a 0.3/0.3 split
	// simply invests less than the full contribution.
	ratio := decimal.NewFromFloat(0.3)
	result := Simulate(SimulationParams{
		Shortfall:        1_000_000,
		AvailableAssets:  500_000,
		MonthlyIncome:    1_000_000,
		IncomeUsageRatio: decimal.NewFromInt(10),
		SavingYield:      decimal.NewFromInt(3),
		FundYield:        decimal.NewFromInt(6),
		SavingRatio:      ratio,
		FundRatio:        ratio,
	})

	assert.True(t, result.SavingRatio.Equal(ratio))
	assert.True(t, result.FundRatio.Equal(ratio))
	// Equal seeds, but the fund bucket compounds at the higher yield.
	assert.Less(t, result.SavingBalance, result.FundBalance)
}
