package server

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/planfit/hpgo/internal/calculation"
	"github.com/planfit/hpgo/internal/catalog"
	"github.com/planfit/hpgo/internal/domain"
	"github.com/planfit/hpgo/internal/normalize"
)

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.ok(w, "plan_health", envelope{"status": "ok"})
}

// ParseCurrency converts Korean currency unit strings to won.
func (h *Handler) ParseCurrency(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value any `json:"value"`
	}
	if !h.decode(w, r, "parse_currency", &req) {
		return
	}
	h.ok(w, "parse_currency", envelope{"parsed": normalize.Currency(req.Value)})
}

// ParseRatio normalizes percentage strings to integers.
func (h *Handler) ParseRatio(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value string `json:"value"`
	}
	if !h.decode(w, r, "parse_ratio", &req) {
		return
	}
	ratio, ok := normalize.Ratio(req.Value)
	if !ok {
		h.fail(w, "parse_ratio", "비율 값을 해석할 수 없습니다", envelope{"ratio": 0})
		return
	}
	h.ok(w, "parse_ratio", envelope{"ratio": ratio})
}

// NormalizeLocation expands region aliases to standard district names.
func (h *Handler) NormalizeLocation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Location string `json:"location"`
	}
	if !h.decode(w, r, "normalize_location", &req) {
		return
	}
	h.ok(w, "normalize_location", envelope{"normalized": normalize.Location(req.Location)})
}

// ValidateInput checks the raw planning input and normalizes it.
func (h *Handler) ValidateInput(w http.ResponseWriter, r *http.Request) {
	var req map[string]any
	if !h.decode(w, r, "validate_input_data", &req) {
		return
	}
	result := normalize.ValidateInput(req)
	h.ok(w, "validate_input_data", envelope{
		"status":         result.Status,
		"data":           result.Data,
		"missing_fields": result.MissingFields,
	})
}

// CalcShortage computes the funding gap.
func (h *Handler) CalcShortage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		HopePrice   any `json:"hope_price"`
		LoanAmount  any `json:"loan_amount"`
		InitialProp any `json:"initial_prop"`
	}
	if !h.decode(w, r, "calc_shortage_amount", &req) {
		return
	}
	hopePrice := normalize.ToInt64(req.HopePrice)
	loanAmount := normalize.ToInt64(req.LoanAmount)
	initialProp := normalize.ToInt64(req.InitialProp)

	h.ok(w, "calc_shortage_amount", envelope{
		"shortage_amount": calculation.Shortfall(hopePrice, loanAmount, initialProp),
		"inputs": envelope{
			"hope_price":   hopePrice,
			"loan_amount":  loanAmount,
			"initial_prop": initialProp,
		},
	})
}

type simulateRequest struct {
	Shortage         int64   `json:"shortage"`
	AvailableAssets  int64   `json:"available_assets"`
	MonthlyIncome    int64   `json:"monthly_income"`
	IncomeUsageRatio float64 `json:"income_usage_ratio"`
	SavingYield      float64 `json:"saving_yield"`
	FundYield        float64 `json:"fund_yield"`
	SavingRatio      float64 `json:"saving_ratio"`
	FundRatio        float64 `json:"fund_ratio"`
}

// Simulate runs the combined savings and fund growth projection.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if !h.decode(w, r, "simulate_combined_investment", &req) {
		return
	}
	result := calculation.Simulate(calculation.SimulationParams{
		Shortfall:        req.Shortage,
		AvailableAssets:  req.AvailableAssets,
		MonthlyIncome:    req.MonthlyIncome,
		IncomeUsageRatio: decimal.NewFromFloat(req.IncomeUsageRatio),
		SavingYield:      decimal.NewFromFloat(req.SavingYield),
		FundYield:        decimal.NewFromFloat(req.FundYield),
		SavingRatio:      decimal.NewFromFloat(req.SavingRatio),
		FundRatio:        decimal.NewFromFloat(req.FundRatio),
	})
	h.ok(w, "simulate_combined_investment", envelope{"simulation": result, "inputs": req})
}

// CalculateLTV applies the loan-to-value rules to a housing goal.
func (h *Handler) CalculateLTV(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Goal    domain.HousingGoal          `json:"goal"`
		Profile domain.UserFinancialProfile `json:"profile"`
	}
	if !h.decode(w, r, "calculate_ltv", &req) {
		return
	}
	result := calculation.CalculateLTV(req.Goal, req.Profile)
	h.ok(w, "calculate_ltv", envelope{
		"ltv_ratio":       result.LTVRatio,
		"max_loan_amount": result.MaxLoanAmount,
		"reasons":         result.Reasons,
	})
}

// Allocate splits a total across the deposit, savings and fund buckets.
func (h *Handler) Allocate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TotalAmount int64  `json:"total_amount"`
		Ratio       string `json:"ratio"`
	}
	if !h.decode(w, r, "allocate", &req) {
		return
	}
	plan, err := calculation.Allocate(req.TotalAmount, req.Ratio)
	if err != nil {
		h.fail(w, "allocate", err.Error(), nil)
		return
	}
	h.ok(w, "allocate", envelope{"allocation": plan})
}

// ValidateSelection checks user-chosen amounts against a bucket limit.
func (h *Handler) ValidateSelection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BucketLimit int64                 `json:"bucket_limit"`
		Selected    []domain.SelectedItem `json:"selected"`
	}
	if !h.decode(w, r, "validate_selection", &req) {
		return
	}
	result := calculation.ValidateSelection(req.BucketLimit, req.Selected)
	h.ok(w, "validate_selection", envelope{
		"total_selected": result.TotalSelected,
		"remaining":      result.Remaining,
		"violations":     result.Violations,
	})
}

type rankRequest struct {
	InvestTendency string                    `json:"invest_tendency"`
	FundData       []domain.ProductCandidate `json:"fund_data"`
	TopK           int                       `json:"top_k"`
	SortKey        string                    `json:"sort_key"`
}

// RankFunds ranks candidates within the tendency's allowed risk tiers.
func (h *Handler) RankFunds(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if !h.decode(w, r, "rank_funds", &req) {
		return
	}
	candidates, errMsg := h.fundData(req.FundData)
	if errMsg != "" {
		h.fail(w, "rank_funds", errMsg, envelope{"recommendations": []domain.ProductCandidate{}})
		return
	}
	k := req.TopK
	if k == 0 {
		k = calculation.DefaultTopKPerTier
	}
	result, err := calculation.RankProducts(domain.InvestorTendency(req.InvestTendency), candidates, k, req.SortKey)
	if err != nil {
		h.fail(w, "rank_funds", err.Error(), envelope{"recommendations": []domain.ProductCandidate{}})
		return
	}
	h.ok(w, "rank_funds", envelope{
		"recommendations": result.Products,
		"message":         result.Message,
	})
}

// TopByRisk picks the best fund per risk level by expected return.
func (h *Handler) TopByRisk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FundData []domain.ProductCandidate `json:"fund_data"`
	}
	if !h.decode(w, r, "select_top_funds_by_risk", &req) {
		return
	}
	candidates, errMsg := h.fundData(req.FundData)
	if errMsg != "" {
		h.fail(w, "select_top_funds_by_risk", errMsg, envelope{"recommendations": []domain.ProductCandidate{}})
		return
	}
	if len(candidates) == 0 {
		h.fail(w, "select_top_funds_by_risk", "펀드 데이터가 비어 있습니다.", envelope{"recommendations": []domain.ProductCandidate{}})
		return
	}
	h.ok(w, "select_top_funds_by_risk", envelope{
		"recommendations": catalog.TopFundByRisk(candidates),
		"meta":            envelope{"total_input_funds": len(candidates)},
	})
}

// fundData returns body-supplied candidates, falling back to the
// configured catalog.
func (h *Handler) fundData(body []domain.ProductCandidate) ([]domain.ProductCandidate, string) {
	if len(body) > 0 {
		return body, ""
	}
	if h.engine == nil || h.engine.FundCatalog == nil {
		return nil, "펀드 데이터가 설정되지 않았습니다"
	}
	funds, err := h.engine.FundCatalog.Funds()
	if err != nil {
		return nil, err.Error()
	}
	return funds, ""
}

// FilterTopSavings filters the savings catalog by user conditions.
func (h *Handler) FilterTopSavings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserData struct {
			Age              int  `json:"age"`
			IsFirstCustomer  bool `json:"is_first_customer"`
			PeriodGoalMonths int  `json:"period_goal_months"`
		} `json:"user_data"`
	}
	if !h.decode(w, r, "filter_top_savings_products", &req) {
		return
	}
	if h.savings == nil {
		h.fail(w, "filter_top_savings_products", "예적금 데이터가 설정되지 않았습니다", envelope{
			"top_deposits": []domain.SavingsProduct{},
			"top_savings":  []domain.SavingsProduct{},
		})
		return
	}
	period := req.UserData.PeriodGoalMonths
	if period == 0 {
		period = 12
	}
	deposits, savings := h.savings.FilterTop(catalog.SavingsFilter{
		Age:             req.UserData.Age,
		IsFirstCustomer: req.UserData.IsFirstCustomer,
		TermMonths:      period,
	})
	h.ok(w, "filter_top_savings_products", envelope{
		"top_deposits": deposits,
		"top_savings":  savings,
		"meta": envelope{
			"count_deposits": len(deposits),
			"count_savings":  len(savings),
		},
	})
}

// MarketPrice looks up the regional average purchase price.
func (h *Handler) MarketPrice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Location    string `json:"location"`
		HousingType string `json:"housing_type"`
	}
	if !h.decode(w, r, "get_market_price", &req) {
		return
	}
	if h.prices == nil {
		h.fail(w, "get_market_price", "시세 데이터가 설정되지 않았습니다", envelope{"avg_price": 0})
		return
	}
	price, err := h.prices.AvgPrice(req.Location, domain.HousingType(req.HousingType))
	if err != nil {
		h.fail(w, "get_market_price", err.Error(), envelope{"avg_price": 0})
		return
	}
	h.ok(w, "get_market_price", envelope{"avg_price": price})
}

// BuildPlan runs the full planning pipeline in one call.
func (h *Handler) BuildPlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Profile          domain.UserFinancialProfile `json:"profile"`
		Goal             domain.HousingGoal          `json:"goal"`
		InitialProp      any                         `json:"initial_prop"`
		InvestableAssets any                         `json:"investable_assets"`
		IncomeUsageRatio float64                     `json:"income_usage_ratio"`
		SavingYield      float64                     `json:"saving_yield"`
		FundYield        float64                     `json:"fund_yield"`
		SavingRatio      float64                     `json:"saving_ratio"`
		FundRatio        float64                     `json:"fund_ratio"`
		TopKPerTier      int                         `json:"top_k_per_tier"`
		FundSortKey      string                      `json:"fund_sort_key"`
	}
	if !h.decode(w, r, "build_funding_plan", &req) {
		return
	}
	req.Goal.Location = normalize.Location(req.Goal.Location)

	plan, err := h.engine.BuildFundingPlan(calculation.PlanRequest{
		Profile:          req.Profile,
		Goal:             req.Goal,
		InitialAssets:    normalize.Currency(req.InitialProp),
		InvestableAssets: normalize.Currency(req.InvestableAssets),
		IncomeUsageRatio: decimal.NewFromFloat(req.IncomeUsageRatio),
		SavingYield:      decimal.NewFromFloat(req.SavingYield),
		FundYield:        decimal.NewFromFloat(req.FundYield),
		SavingRatio:      decimal.NewFromFloat(req.SavingRatio),
		FundRatio:        decimal.NewFromFloat(req.FundRatio),
		TopKPerTier:      req.TopKPerTier,
		FundSortKey:      req.FundSortKey,
	})
	if err != nil {
		h.fail(w, "build_funding_plan", err.Error(), nil)
		return
	}
	h.ok(w, "build_funding_plan", envelope{"plan": plan})
}
