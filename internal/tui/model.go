package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/planfit/hpgo/internal/calculation"
	"github.com/planfit/hpgo/internal/domain"
)

// parameter indices, in cursor order.
const (
	paramUsageRatio = iota
	paramSavingShare
	paramSavingYield
	paramFundYield
	paramCount
)

// Model is the interactive parameter explorer: it holds one plan
// request whose tunable assumptions the user adjusts, re-running the
// planning pipeline on every change.
type Model struct {
	engine *calculation.Engine
	req    calculation.PlanRequest

	// Tunable assumptions, kept as plain ints/floats for stepping.
	usageRatio  int     // % of monthly income invested
	savingShare int     // % of contributions into savings; fund gets the rest
	savingYield float64 // annual %
	fundYield   float64 // annual %

	plan *domain.FundingPlan
	err  error

	cursor   int
	progress progress.Model

	width  int
	height int
}

// NewModel creates an explorer seeded from a plan request.
func NewModel(engine *calculation.Engine, req calculation.PlanRequest) Model {
	m := Model{
		engine:      engine,
		req:         req,
		usageRatio:  int(req.IncomeUsageRatio.IntPart()),
		savingShare: int(req.SavingRatio.Mul(decimal.NewFromInt(100)).IntPart()),
		savingYield: req.SavingYield.InexactFloat64(),
		fundYield:   req.FundYield.InexactFloat64(),
		progress:    progress.New(progress.WithDefaultGradient()),
		width:       80,
		height:      24,
	}
	m.recalculate()
	return m
}

// Init is required by tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// recalculate rebuilds the plan from the current assumptions.
func (m *Model) recalculate() {
	m.req.IncomeUsageRatio = decimal.NewFromInt(int64(m.usageRatio))
	m.req.SavingRatio = decimal.NewFromInt(int64(m.savingShare)).Div(decimal.NewFromInt(100))
	m.req.FundRatio = decimal.NewFromInt(int64(100 - m.savingShare)).Div(decimal.NewFromInt(100))
	m.req.SavingYield = decimal.NewFromFloat(m.savingYield)
	m.req.FundYield = decimal.NewFromFloat(m.fundYield)

	plan, err := m.engine.BuildFundingPlan(m.req)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.plan = plan
}
