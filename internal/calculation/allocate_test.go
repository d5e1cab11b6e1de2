package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planfit/hpgo/internal/domain"
)

func TestAllocate_ExactSum(t *testing.T) {
	// The three buckets must sum exactly to the input total for any
	// ratio; the fund bucket absorbs all rounding remainder.
	totals := []int64{0, 1, 99, 100, 1_000_003, 350_000_000, 123_456_789}
	ratios := []string{"50:30:20", "1:1:1", "33:33:34", "70:20:10", "0:0:1"}

	for _, total := range totals {
		for _, ratio := range ratios {
			plan, err := Allocate(total, ratio)
			require.NoError(t, err, "Allocate(%d, %q)", total, ratio)
			assert.Equal(t, total, plan.Total(), "Allocate(%d, %q) = %+v", total, ratio, plan)
		}
	}
}

func TestAllocate_RemainderGoesToFund(t *testing.T) {
	plan, err := Allocate(100, "1:1:1")
	require.NoError(t, err)
	assert.Equal(t, domain.AllocationPlan{Deposit: 33, Savings: 33, Fund: 34}, plan)
}

func TestAllocate_ZeroSumRatio(t *testing.T) {
	// All-zero ratios are degenerate: the divisor becomes 1 and the
	// whole total lands in the fund bucket via the remainder.
	plan, err := Allocate(1_000_000, "0:0:0")
	require.NoError(t, err)
	assert.Equal(t, domain.AllocationPlan{Deposit: 0, Savings: 0, Fund: 1_000_000}, plan)
}

func TestAllocate_MalformedRatio(t *testing.T) {
	for _, ratio := range []string{"", "50:50", "1:2:3:4", "a:b:c", "10:-5:95"} {
		_, err := Allocate(1000, ratio)
		assert.Error(t, err, "ratio %q", ratio)
	}
}

func TestCheckRatioSum(t *testing.T) {
	assert.NoError(t, CheckRatioSum(50, 30, 20))
	assert.NoError(t, CheckRatioSum(33.33, 33.33, 33.34))
	assert.Error(t, CheckRatioSum(50, 30, 10))
}

func TestValidateSelection_OverLimit(t *testing.T) {
	result := ValidateSelection(1_000_000, []domain.SelectedItem{
		{Name: "A예금", Amount: 600_000},
		{Name: "B적금", Amount: 500_000},
	})

	assert.Equal(t, int64(1_100_000), result.TotalSelected)
	assert.Equal(t, int64(-100_000), result.Remaining)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "100,000")
}

func TestValidateSelection_WithinLimit(t *testing.T) {
	result := ValidateSelection(1_000_000, []domain.SelectedItem{
		{Name: "A예금", Amount: 400_000},
	})

	assert.Equal(t, int64(400_000), result.TotalSelected)
	assert.Equal(t, int64(600_000), result.Remaining)
	assert.Empty(t, result.Violations)
}

func TestValidateSelection_NegativeAmountsReported(t *testing.T) {
	// Each negative amount is its own violation; the amount still
	// counts toward the total instead of being clamped.
	result := ValidateSelection(1_000_000, []domain.SelectedItem{
		{Name: "A펀드", Amount: -200_000},
		{Name: "B펀드", Amount: -100_000},
		{Name: "C펀드", Amount: 500_000},
	})

	assert.Equal(t, int64(200_000), result.TotalSelected)
	assert.Equal(t, int64(800_000), result.Remaining)
	assert.Len(t, result.Violations, 2)
}

func TestFormatWon(t *testing.T) {
	assert.Equal(t, "0", FormatWon(0))
	assert.Equal(t, "999", FormatWon(999))
	assert.Equal(t, "1,000", FormatWon(1000))
	assert.Equal(t, "350,000,000", FormatWon(350_000_000))
	assert.Equal(t, "-100,000", FormatWon(-100_000))
}
