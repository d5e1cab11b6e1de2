package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/planfit/hpgo/internal/domain"
)

// FundProvider supplies the read-only fund catalog the ranker consumes.
// Implementations live outside the engine; the engine never mutates or
// caches what they return.
type FundProvider interface {
	Funds() ([]domain.ProductCandidate, error)
}

// SavingsProvider supplies deposit and installment-savings products
// matching a user's conditions, for the deposit/savings buckets.
type SavingsProvider interface {
	TopSavings(age int, isFirstCustomer bool, termMonths int) (deposits, savings []domain.SavingsProduct)
}

// Engine composes the planning steps into full funding plans. Every
// method is a pure computation over its arguments plus the injected
// read-only catalog; the engine holds no mutable state, so a single
// Engine is safe for concurrent use across requests.
type Engine struct {
	FundCatalog    FundProvider
	SavingsCatalog SavingsProvider
	Logger         Logger
}

// NewEngine creates an engine without a fund catalog; plans it builds
// carry no product recommendations.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// NewEngineWithCatalog creates an engine backed by a fund catalog.
func NewEngineWithCatalog(funds FundProvider) *Engine {
	return &Engine{FundCatalog: funds, Logger: NopLogger{}}
}

// SetLogger replaces the engine logger. A nil logger installs the no-op
// logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// PlanRequest carries everything needed to build one funding plan.
// InitialAssets go toward the purchase itself and reduce the shortfall;
// InvestableAssets seed the growth projection.
type PlanRequest struct {
	Profile          domain.UserFinancialProfile
	Goal             domain.HousingGoal
	InitialAssets    int64
	InvestableAssets int64
	IncomeUsageRatio decimal.Decimal
	SavingYield      decimal.Decimal
	FundYield        decimal.Decimal
	SavingRatio      decimal.Decimal
	FundRatio        decimal.Decimal
	TopKPerTier      int
	FundSortKey      string
}

// BuildFundingPlan runs the full pipeline: loan eligibility, funding
// gap, compound growth projection, bucket allocation of the projected
// total, and product ranking within the allowed risk tiers.
func (e *Engine) BuildFundingPlan(req PlanRequest) (*domain.FundingPlan, error) {
	eligibility := CalculateLTV(req.Goal, req.Profile)
	e.Logger.Debugf("eligibility: ltv=%s max_loan=%d", eligibility.LTVRatio, eligibility.MaxLoanAmount)

	shortfall := Shortfall(req.Goal.TargetPrice, eligibility.MaxLoanAmount, req.InitialAssets)

	sim := Simulate(SimulationParams{
		Shortfall:        shortfall,
		AvailableAssets:  req.InvestableAssets,
		MonthlyIncome:    req.Profile.MonthlyIncome,
		IncomeUsageRatio: req.IncomeUsageRatio,
		SavingYield:      req.SavingYield,
		FundYield:        req.FundYield,
		SavingRatio:      req.SavingRatio,
		FundRatio:        req.FundRatio,
	})
	if !sim.Converged {
		e.Logger.Warnf("simulation capped at %d months without covering shortfall %d", MaxSimulationMonths, shortfall)
	}

	ratio := domain.RecommendedRatio(req.Profile.InvestTendency)
	allocation, err := Allocate(sim.TotalBalance, ratio)
	if err != nil {
		return nil, fmt.Errorf("배분 계산 실패: %w", err)
	}

	plan := &domain.FundingPlan{
		Goal:            req.Goal,
		Profile:         req.Profile,
		Eligibility:     eligibility,
		Shortfall:       shortfall,
		Simulation:      sim,
		Allocation:      allocation,
		AllocationRatio: ratio,
		Funds:           []domain.ProductCandidate{},
	}

	if e.SavingsCatalog != nil {
		// The projected horizon doubles as the product term; a covered
		// goal still gets a short-term recommendation.
		term := sim.MonthsNeeded
		if term == 0 {
			term = 12
		}
		plan.TopDeposits, plan.TopSavings = e.SavingsCatalog.TopSavings(req.Profile.Age, req.Profile.IsFirstCustomer, term)
	}

	if e.FundCatalog == nil || req.Profile.InvestTendency == "" {
		plan.FundsNote = "투자 성향 또는 펀드 데이터가 없어 펀드 추천을 건너뜁니다."
		return plan, nil
	}

	candidates, err := e.FundCatalog.Funds()
	if err != nil {
		return nil, fmt.Errorf("펀드 데이터 조회 실패: %w", err)
	}
	k := req.TopKPerTier
	if k == 0 {
		k = DefaultTopKPerTier
	}
	ranked, err := RankProducts(req.Profile.InvestTendency, candidates, k, req.FundSortKey)
	if err != nil {
		return nil, err
	}
	plan.Funds = ranked.Products
	plan.FundsNote = ranked.Message
	return plan, nil
}
