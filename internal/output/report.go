package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/planfit/hpgo/internal/calculation"
	"github.com/planfit/hpgo/internal/domain"
)

// ReportGenerator renders funding plans in various formats
type ReportGenerator struct {
	w io.Writer
}

// NewReportGenerator creates a generator writing to stdout
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{w: os.Stdout}
}

// NewReportGeneratorTo creates a generator writing to w
func NewReportGeneratorTo(w io.Writer) *ReportGenerator {
	return &ReportGenerator{w: w}
}

// GenerateReport renders a plan in the specified format
func (rg *ReportGenerator) GenerateReport(plan *domain.FundingPlan, format string) error {
	switch format {
	case "console":
		return rg.GenerateConsoleReport(plan)
	case "json":
		return rg.GenerateJSONReport(plan)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// GenerateConsoleReport renders a human-readable plan summary
func (rg *ReportGenerator) GenerateConsoleReport(plan *domain.FundingPlan) error {
	won := calculation.FormatWon

	rg.banner("내 집 마련 자금 계획")

	rg.section("목표")
	rg.linef("희망 지역:     %s", plan.Goal.Location)
	rg.linef("주택 유형:     %s", plan.Goal.HousingType)
	rg.linef("희망 가격:     %s원", won(plan.Goal.TargetPrice))
	rg.line("")

	rg.section("대출 한도 (LTV)")
	rg.linef("적용 LTV:      %s%%", plan.Eligibility.LTVRatio.StringFixed(0))
	rg.linef("최대 대출액:   %s원", won(plan.Eligibility.MaxLoanAmount))
	for _, reason := range plan.Eligibility.Reasons {
		rg.linef("  - %s", reason)
	}
	rg.line("")

	rg.section("부족 자금")
	rg.linef("부족액:        %s원", won(plan.Shortfall))
	rg.line("")

	rg.section("투자 시뮬레이션")
	if plan.Shortfall == 0 {
		rg.line("보유 자산과 대출로 충분합니다. 추가 저축이 필요 없습니다.")
	} else {
		rg.linef("월 투자액:     %s원", won(plan.Simulation.MonthlyInvest))
		if plan.Simulation.Converged {
			years := plan.Simulation.MonthsNeeded / 12
			months := plan.Simulation.MonthsNeeded % 12
			rg.linef("달성 기간:     %d년 %d개월 (%d개월)", years, months, plan.Simulation.MonthsNeeded)
		} else {
			rg.linef("달성 기간:     %d개월 내 목표 미달", calculation.MaxSimulationMonths)
		}
		rg.linef("예적금 잔액:   %s원", won(plan.Simulation.SavingBalance))
		rg.linef("펀드 잔액:     %s원", won(plan.Simulation.FundBalance))
		rg.linef("총 잔액:       %s원", won(plan.Simulation.TotalBalance))
	}
	rg.line("")

	rg.section(fmt.Sprintf("자산 배분 (%s, 예금:적금:펀드 = %s)", plan.Profile.InvestTendency, plan.AllocationRatio))
	rg.linef("예금:          %s원", won(plan.Allocation.Deposit))
	rg.linef("적금:          %s원", won(plan.Allocation.Savings))
	rg.linef("펀드:          %s원", won(plan.Allocation.Fund))
	rg.line("")

	if len(plan.TopDeposits) > 0 || len(plan.TopSavings) > 0 {
		rg.section("추천 예적금")
		for _, p := range plan.TopDeposits {
			rg.linef("[예금] %s %s (최고 %.2f%%)", p.Bank, p.Name, p.MaxRate)
		}
		for _, p := range plan.TopSavings {
			rg.linef("[적금] %s %s (최고 %.2f%%)", p.Bank, p.Name, p.MaxRate)
		}
		rg.line("")
	}

	rg.section("추천 펀드")
	if len(plan.Funds) == 0 {
		note := plan.FundsNote
		if note == "" {
			note = "추천 가능한 펀드가 없습니다."
		}
		rg.line(note)
	} else {
		for i, fund := range plan.Funds {
			score := "-"
			if fund.Score.Valid {
				score = fund.Score.Decimal.StringFixed(1)
			}
			rg.linef("%d. [%s] %s (점수 %s)", i+1, fund.RiskTier, fund.Name, score)
		}
	}
	rg.line("")
	return nil
}

// GenerateJSONReport renders the plan as indented JSON
func (rg *ReportGenerator) GenerateJSONReport(plan *domain.FundingPlan) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(rg.w, string(data))
	return err
}

func (rg *ReportGenerator) banner(title string) {
	fmt.Fprintln(rg.w, strings.Repeat("=", 60))
	fmt.Fprintln(rg.w, title)
	fmt.Fprintln(rg.w, strings.Repeat("=", 60))
	fmt.Fprintln(rg.w)
}

func (rg *ReportGenerator) section(title string) {
	fmt.Fprintln(rg.w, title)
	fmt.Fprintln(rg.w, strings.Repeat("-", 40))
}

func (rg *ReportGenerator) line(s string) {
	fmt.Fprintln(rg.w, s)
}

func (rg *ReportGenerator) linef(format string, args ...any) {
	fmt.Fprintf(rg.w, format+"\n", args...)
}
