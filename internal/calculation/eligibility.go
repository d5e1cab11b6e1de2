package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/planfit/hpgo/internal/domain"
)

// LTV clamp bounds. Adjustments accumulate unclamped and only the final
// sum is clamped; clamping after each step would change results.
var (
	ltvFloor = decimal.NewFromInt(30)
	ltvCeil  = decimal.NewFromInt(80)
)

// Price tier thresholds for the high-price LTV penalty.
const (
	priceTier1 = 600_000_000
	priceTier2 = 900_000_000
)

// defaultCreditScore substitutes for an absent credit score. No real
// score is 0, so a zero value means the attribute was never supplied.
const defaultCreditScore = 700

// CalculateLTV computes the applicable loan-to-value ratio and maximum
// loan amount for a housing goal and borrower profile. Adjustments are
// cumulative percentage points applied to the housing-type base rate,
// in a fixed order, with each applied adjustment appended to the reason
// trail. There is no failure path: missing borrower attributes are
// defaulted before computation.
func CalculateLTV(goal domain.HousingGoal, profile domain.UserFinancialProfile) domain.EligibilityResult {
	creditScore := profile.CreditScore
	if creditScore == 0 {
		creditScore = defaultCreditScore
	}

	ltv := domain.BaseLTV(goal.HousingType)
	reasons := []string{
		fmt.Sprintf("주택유형 %s 기준 LTV %s%%", housingLabel(goal.HousingType), ltv.StringFixed(0)),
	}

	adjust := func(points int64, reason string) {
		ltv = ltv.Add(decimal.NewFromInt(points))
		reasons = append(reasons, reason)
	}

	switch {
	case goal.TargetPrice > priceTier2:
		adjust(-10, "주택가격 9억원 초과 -10%p")
	case goal.TargetPrice > priceTier1:
		adjust(-5, "주택가격 6억원 초과 -5%p")
	}

	if goal.RegulatedArea {
		adjust(-10, "규제지역 -10%p")
	}

	switch {
	case creditScore < 700:
		adjust(-5, fmt.Sprintf("신용점수 %d점 -5%%p", creditScore))
	case creditScore >= 800:
		adjust(+5, fmt.Sprintf("신용점수 %d점 +5%%p", creditScore))
	}

	if profile.ExistingLoanCount >= 2 {
		adjust(-5, fmt.Sprintf("기존대출 %d건 -5%%p", profile.ExistingLoanCount))
	}

	if profile.OwnsHouse {
		adjust(-50, "기존 주택 보유 -50%p")
	}

	if profile.FirstTimeBuyer {
		adjust(+5, "생애최초 구입 +5%p")
	}

	if ltv.LessThan(ltvFloor) {
		ltv = ltvFloor
	} else if ltv.GreaterThan(ltvCeil) {
		ltv = ltvCeil
	}

	maxLoan := decimal.NewFromInt(goal.TargetPrice).
		Mul(ltv).
		Div(decimal.NewFromInt(100)).
		Floor().
		IntPart()

	return domain.EligibilityResult{
		LTVRatio:      ltv,
		MaxLoanAmount: maxLoan,
		Reasons:       reasons,
	}
}

func housingLabel(t domain.HousingType) string {
	switch t {
	case domain.HousingApartment, domain.HousingOfficetel, domain.HousingMultiUnit, domain.HousingDetached:
		return string(t)
	default:
		return "기타"
	}
}
