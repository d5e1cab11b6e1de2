package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planfit/hpgo/internal/calculation"
	"github.com/planfit/hpgo/internal/catalog"
	"github.com/planfit/hpgo/internal/domain"
)

func testHandler() *Handler {
	fundCatalog := catalog.NewFundCatalog([]domain.ProductCandidate{
		{Name: "중위험펀드", RiskTier: domain.RiskModerate, Score: decimal.NewNullDecimal(decimal.NewFromFloat(8.0)), ExpectedReturn: "8%"},
		{Name: "저위험펀드", RiskTier: domain.RiskVeryLow, Score: decimal.NewNullDecimal(decimal.NewFromFloat(6.0)), ExpectedReturn: "4%"},
	})
	savings := catalog.NewSavingsCatalog([]domain.SavingsProduct{
		{ProductType: catalog.ProductTypeDeposit, Name: "정기예금", MaxRate: 3.5, MinAge: 19, MinTermMonths: 6, MaxTermMonths: 36},
		{ProductType: catalog.ProductTypeSavings, Name: "정기적금", MaxRate: 4.5, MinAge: 19, MinTermMonths: 6, MaxTermMonths: 36},
	})
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	return NewHandler(calculation.NewEngineWithCatalog(fundCatalog), savings, nil, logger)
}

func postTool(t *testing.T, h *Handler, path string, body any) map[string]any {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return decoded
}

func TestHealth(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodGet, "/plan/health", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "plan_health", body["tool_name"])
	assert.Equal(t, true, body["success"])
}

func TestParseCurrency(t *testing.T) {
	h := testHandler()

	body := postTool(t, h, "/plan/parse_currency", map[string]any{"value": "3억 5천만"})
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(350_000_000), body["parsed"])
}

func TestParseRatio(t *testing.T) {
	h := testHandler()

	body := postTool(t, h, "/plan/parse_ratio", map[string]any{"value": " 40 % "})
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(40), body["ratio"])

	body = postTool(t, h, "/plan/parse_ratio", map[string]any{"value": ""})
	assert.Equal(t, false, body["success"])
}

func TestNormalizeLocation(t *testing.T) {
	h := testHandler()

	body := postTool(t, h, "/plan/normalize_location", map[string]any{"location": "서울 동작구"})
	assert.Equal(t, "서울특별시 동작구", body["normalized"])
}

func TestValidateInput(t *testing.T) {
	h := testHandler()

	body := postTool(t, h, "/plan/validate_input", map[string]any{
		"hope_price":        "7억",
		"hope_housing_type": "아파트",
	})
	assert.Equal(t, "incomplete", body["status"])
	assert.ElementsMatch(t, []any{"initial_prop", "hope_location", "income_usage_ratio"}, body["missing_fields"])

	body = postTool(t, h, "/plan/validate_input", map[string]any{
		"initial_prop":       "2억",
		"hope_location":      "서울 동작구",
		"hope_price":         "7억",
		"hope_housing_type":  "아파트",
		"income_usage_ratio": "30%",
	})
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(700_000_000), data["hope_price"])
	assert.Equal(t, "서울특별시 동작구", data["hope_location"])
}

func TestCalcShortage(t *testing.T) {
	h := testHandler()

	body := postTool(t, h, "/plan/calc_shortage", map[string]any{
		"hope_price":   800_000_000,
		"loan_amount":  400_000_000,
		"initial_prop": 200_000_000,
	})
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(200_000_000), body["shortage_amount"])
}

func TestSimulate(t *testing.T) {
	h := testHandler()

	body := postTool(t, h, "/plan/simulate", map[string]any{
		"shortage":           50_000_000,
		"available_assets":   10_000_000,
		"monthly_income":     3_000_000,
		"income_usage_ratio": 30,
		"saving_yield":       3.0,
		"fund_yield":         6.0,
		"saving_ratio":       0.5,
		"fund_ratio":         0.5,
	})
	require.Equal(t, true, body["success"])
	sim := body["simulation"].(map[string]any)
	assert.Equal(t, true, sim["converged"])
	assert.Greater(t, sim["months_needed"], float64(0))
}

func TestCalculateLTV(t *testing.T) {
	h := testHandler()

	body := postTool(t, h, "/plan/calculate_ltv", map[string]any{
		"goal": map[string]any{
			"target_price":   1_000_000_000,
			"housing_type":   "아파트",
			"regulated_area": true,
		},
		"profile": map[string]any{
			"credit_score":        650,
			"existing_loan_count": 2,
		},
	})
	require.Equal(t, true, body["success"])
	assert.Equal(t, "40", body["ltv_ratio"])
	assert.Equal(t, float64(400_000_000), body["max_loan_amount"])
}

func TestAllocate(t *testing.T) {
	h := testHandler()

	body := postTool(t, h, "/plan/allocate", map[string]any{
		"total_amount": 10_000_000,
		"ratio":        "30:40:30",
	})
	require.Equal(t, true, body["success"])
	alloc := body["allocation"].(map[string]any)
	assert.Equal(t, float64(3_000_000), alloc["deposit"])
	assert.Equal(t, float64(4_000_000), alloc["savings"])
	assert.Equal(t, float64(3_000_000), alloc["fund"])

	body = postTool(t, h, "/plan/allocate", map[string]any{
		"total_amount": 10_000_000,
		"ratio":        "30:40",
	})
	assert.Equal(t, false, body["success"])
}

func TestValidateSelection(t *testing.T) {
	h := testHandler()

	body := postTool(t, h, "/plan/validate_selection", map[string]any{
		"bucket_limit": 1_000_000,
		"selected": []map[string]any{
			{"name": "A펀드", "amount": 700_000},
			{"name": "B펀드", "amount": 400_000},
		},
	})
	require.Equal(t, true, body["success"])
	assert.Equal(t, float64(1_100_000), body["total_selected"])
	assert.Equal(t, float64(-100_000), body["remaining"])
	assert.Len(t, body["violations"], 1)
}

func TestRankFunds(t *testing.T) {
	h := testHandler()

	body := postTool(t, h, "/plan/rank_funds", map[string]any{
		"invest_tendency": "위험중립형",
	})
	require.Equal(t, true, body["success"])
	recs := body["recommendations"].([]any)
	require.Len(t, recs, 2)
	first := recs[0].(map[string]any)
	assert.Equal(t, "중위험펀드", first["product_name"], "catalog funds are used when the body carries none")
}

func TestRankFunds_UnknownTendency(t *testing.T) {
	h := testHandler()

	body := postTool(t, h, "/plan/rank_funds", map[string]any{
		"invest_tendency": "도박형",
	})
	assert.Equal(t, false, body["success"])
}

func TestTopByRisk(t *testing.T) {
	h := testHandler()

	body := postTool(t, h, "/plan/top_by_risk", map[string]any{})
	require.Equal(t, true, body["success"])
	recs := body["recommendations"].([]any)
	require.Len(t, recs, 2)
	first := recs[0].(map[string]any)
	assert.Equal(t, "중위험펀드", first["product_name"], "highest expected return first")
}

func TestFilterTopSavings(t *testing.T) {
	h := testHandler()

	body := postTool(t, h, "/plan/filter_top_savings", map[string]any{
		"user_data": map[string]any{
			"age":                30,
			"is_first_customer":  true,
			"period_goal_months": 12,
		},
	})
	require.Equal(t, true, body["success"])
	assert.Len(t, body["top_deposits"], 1)
	assert.Len(t, body["top_savings"], 1)
}

func TestMarketPrice_NotConfigured(t *testing.T) {
	h := testHandler()

	body := postTool(t, h, "/db/get_market_price", map[string]any{
		"location":     "서울 동작구",
		"housing_type": "아파트",
	})
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(0), body["avg_price"])
}

func TestBuildPlan(t *testing.T) {
	h := testHandler()

	body := postTool(t, h, "/plan/build_plan", map[string]any{
		"profile": map[string]any{
			"credit_score":    720,
			"monthly_income":  3_000_000,
			"invest_tendency": "위험중립형",
		},
		"goal": map[string]any{
			"target_price": 700_000_000,
			"housing_type": "아파트",
			"location":     "서울 동작구",
		},
		"initial_prop":       "2억",
		"income_usage_ratio": 30,
		"saving_yield":       3.0,
		"fund_yield":         6.0,
		"saving_ratio":       0.5,
		"fund_ratio":         0.5,
	})
	require.Equal(t, true, body["success"])
	plan := body["plan"].(map[string]any)
	goal := plan["goal"].(map[string]any)
	assert.Equal(t, "서울특별시 동작구", goal["location"], "location alias should be normalized")
	assert.NotNil(t, plan["eligibility"])
	assert.NotNil(t, plan["allocation"])
}

func TestBadRequestBody(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodPost, "/plan/parse_currency", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/fund_data.json", cfg.FundDataPath)
	assert.Equal(t, "", cfg.RedisAddr)
}
