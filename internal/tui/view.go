package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/planfit/hpgo/internal/calculation"
)

// View renders the explorer.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("자금 계획 탐색기"))
	b.WriteString("\n\n")

	b.WriteString(m.renderParameters())
	b.WriteString("\n")
	b.WriteString(m.renderResults())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑/↓ 항목 선택  ←/→ 값 조정  q 종료"))

	return AppStyle.Render(b.String())
}

func (m Model) renderParameters() string {
	rows := []struct {
		label string
		value string
	}{
		{"월 소득 투자 비율", fmt.Sprintf("%d%%", m.usageRatio)},
		{"예적금:펀드 비중", fmt.Sprintf("%d:%d", m.savingShare, 100-m.savingShare)},
		{"예적금 연 수익률", fmt.Sprintf("%.1f%%", m.savingYield)},
		{"펀드 연 수익률", fmt.Sprintf("%.1f%%", m.fundYield)},
	}

	var b strings.Builder
	for i, row := range rows {
		marker := "  "
		value := ParameterValueStyle.Render(row.value)
		if i == m.cursor {
			marker = SelectedItemStyle.Render("> ")
			value = SelectedItemStyle.Render(row.value)
		}
		b.WriteString(marker)
		b.WriteString(ParameterLabelStyle.Render(row.label))
		b.WriteString(value)
		b.WriteString("\n")
	}
	return BorderStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderResults() string {
	if m.err != nil {
		return MetricNegativeStyle.Render("오류: " + m.err.Error())
	}
	if m.plan == nil {
		return ""
	}

	won := calculation.FormatWon
	sim := m.plan.Simulation

	var b strings.Builder
	b.WriteString(metric("부족 자금", won(m.plan.Shortfall)+"원"))
	b.WriteString(metric("월 투자액", won(sim.MonthlyInvest)+"원"))

	if m.plan.Shortfall == 0 {
		b.WriteString(MetricPositiveStyle.Render("보유 자산과 대출로 충분합니다"))
		b.WriteString("\n")
	} else if sim.Converged {
		b.WriteString(metric("달성 기간", fmt.Sprintf("%d년 %d개월", sim.MonthsNeeded/12, sim.MonthsNeeded%12)))
		b.WriteString(MetricLabelStyle.Render("진행도"))
		b.WriteString(m.progress.ViewAs(float64(sim.MonthsNeeded) / calculation.MaxSimulationMonths))
		b.WriteString("\n")
	} else {
		b.WriteString(MetricNegativeStyle.Render(fmt.Sprintf("%d개월 내 목표 미달", calculation.MaxSimulationMonths)))
		b.WriteString("\n")
	}

	b.WriteString(metric("총 잔액", won(sim.TotalBalance)+"원"))
	b.WriteString(metric("자산 배분", fmt.Sprintf("예금 %s / 적금 %s / 펀드 %s",
		won(m.plan.Allocation.Deposit), won(m.plan.Allocation.Savings), won(m.plan.Allocation.Fund))))

	return BorderStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func metric(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		MetricLabelStyle.Render(label),
		ParameterValueStyle.Render(value),
	) + "\n"
}
