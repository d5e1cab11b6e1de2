package calculation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/planfit/hpgo/internal/domain"
)

// Allocate splits totalAmount across the deposit, savings and fund
// buckets according to an "a:b:c" ratio string. Each bucket receives
// floor(total * ratio_i / sum); the fund bucket absorbs all rounding
// remainder so the three amounts sum exactly to totalAmount. A ratio
// string without exactly three numeric components is an error with no
// partial result. An all-zero ratio is degenerate: the divisor becomes
// 1 and everything lands in the fund bucket via the remainder.
func Allocate(totalAmount int64, ratio string) (domain.AllocationPlan, error) {
	parts := strings.Split(strings.TrimSpace(ratio), ":")
	if len(parts) != 3 {
		return domain.AllocationPlan{}, fmt.Errorf("배분 비율은 '예금:적금:펀드' 세 항목이어야 합니다: %q", ratio)
	}

	ratios := make([]int64, 3)
	var sum int64
	for i, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return domain.AllocationPlan{}, fmt.Errorf("배분 비율 %d번째 항목이 숫자가 아닙니다: %q", i+1, part)
		}
		if n < 0 {
			return domain.AllocationPlan{}, fmt.Errorf("배분 비율 %d번째 항목이 음수입니다: %d", i+1, n)
		}
		ratios[i] = n
		sum += n
	}
	if sum == 0 {
		sum = 1
	}

	deposit := totalAmount * ratios[0] / sum
	savings := totalAmount * ratios[1] / sum

	return domain.AllocationPlan{
		Deposit: deposit,
		Savings: savings,
		Fund:    totalAmount - deposit - savings,
	}, nil
}

// CheckRatioSum verifies a percentage triple sums to 100 within a 0.01
// tolerance. Used for recommended-ratio lookups before scaling.
func CheckRatioSum(a, b, c float64) error {
	sum := a + b + c
	if sum < 99.99 || sum > 100.01 {
		return fmt.Errorf("배분 비율 합이 100이 아닙니다: %.2f", sum)
	}
	return nil
}

// ValidateSelection checks a user's chosen per-product amounts against
// a single bucket's limit. Each bucket (deposit, savings, fund) is
// validated independently; limits are never pooled. Negative amounts
// are recorded as individual violations, not clamped, and still count
// toward the total. Remaining may be negative: that is the
// over-allocation signal and is surfaced as a violation too.
func ValidateSelection(bucketLimit int64, selected []domain.SelectedItem) domain.SelectionResult {
	var total int64
	violations := []string{}

	for _, item := range selected {
		if item.Amount < 0 {
			violations = append(violations,
				fmt.Sprintf("상품 '%s' 금액이 음수입니다: %s원", item.Name, FormatWon(item.Amount)))
		}
		total += item.Amount
	}

	remaining := bucketLimit - total
	if remaining < 0 {
		violations = append(violations,
			fmt.Sprintf("한도 초과: 한도 %s원, 선택 합계 %s원 (%s원 초과)",
				FormatWon(bucketLimit), FormatWon(total), FormatWon(-remaining)))
	}

	return domain.SelectionResult{
		TotalSelected: total,
		Remaining:     remaining,
		Violations:    violations,
	}
}

// FormatWon renders an amount with thousands separators.
func FormatWon(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
