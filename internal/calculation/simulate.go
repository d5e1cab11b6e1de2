package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/planfit/hpgo/internal/domain"
)

// MaxSimulationMonths is the hard cap on the growth projection: 50
// years. Hitting it is a valid terminal state ("the plan does not close
// the gap"), not an error, and it is not configurable per call.
const MaxSimulationMonths = 600

var (
	dHundred = decimal.NewFromInt(100)
	dTwelve  = decimal.NewFromInt(12)
	dOne     = decimal.NewFromInt(1)
)

// SimulationParams are the inputs to a compound growth projection.
// SavingRatio and FundRatio are fractions (0..1) and are used as given;
// the simulator does not renormalize or validate their sum.
type SimulationParams struct {
	Shortfall        int64
	AvailableAssets  int64
	MonthlyIncome    int64
	IncomeUsageRatio decimal.Decimal
	SavingYield      decimal.Decimal
	FundYield        decimal.Decimal
	SavingRatio      decimal.Decimal
	FundRatio        decimal.Decimal
}

// Simulate projects, month by month, the growth of the available assets
// split across a savings bucket and a fund bucket until the shortfall
// is covered or the month cap is hit.
//
// Each month the fixed contribution monthly_income * usage/100 is split
// by the same ratios and added to each bucket, then each bucket grows
// by (1 + annual_yield/100/12). The annual rate divided by twelve is a
// simple monthly-compounding approximation, not an effective monthly
// rate; that simplification is part of the contract.
func Simulate(p SimulationParams) domain.SimulationResult {
	monthlyInvest := decimal.NewFromInt(p.MonthlyIncome).Mul(p.IncomeUsageRatio.Div(dHundred))

	if p.Shortfall <= 0 {
		return domain.SimulationResult{
			MonthsNeeded:  0,
			Converged:     true,
			SavingBalance: decimal.NewFromInt(p.AvailableAssets).Mul(p.SavingRatio).IntPart(),
			FundBalance:   decimal.NewFromInt(p.AvailableAssets).Mul(p.FundRatio).IntPart(),
			TotalBalance:  p.AvailableAssets,
			MonthlyInvest: monthlyInvest.IntPart(),
			SavingRatio:   p.SavingRatio,
			FundRatio:     p.FundRatio,
		}
	}

	saving := decimal.NewFromInt(p.AvailableAssets).Mul(p.SavingRatio)
	fund := decimal.NewFromInt(p.AvailableAssets).Mul(p.FundRatio)

	savingMonthly := monthlyInvest.Mul(p.SavingRatio)
	fundMonthly := monthlyInvest.Mul(p.FundRatio)

	savingGrowth := dOne.Add(p.SavingYield.Div(dHundred).Div(dTwelve))
	fundGrowth := dOne.Add(p.FundYield.Div(dHundred).Div(dTwelve))

	shortfall := decimal.NewFromInt(p.Shortfall)
	total := saving.Add(fund)
	months := 0

	for total.LessThan(shortfall) && months < MaxSimulationMonths {
		months++
		saving = saving.Add(savingMonthly).Mul(savingGrowth)
		fund = fund.Add(fundMonthly).Mul(fundGrowth)
		total = saving.Add(fund)
	}

	return domain.SimulationResult{
		MonthsNeeded:  months,
		Converged:     total.GreaterThanOrEqual(shortfall),
		SavingBalance: saving.IntPart(),
		FundBalance:   fund.IntPart(),
		TotalBalance:  total.IntPart(),
		MonthlyInvest: monthlyInvest.IntPart(),
		SavingRatio:   p.SavingRatio,
		FundRatio:     p.FundRatio,
	}
}
