package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/planfit/hpgo/internal/calculation"
	"github.com/planfit/hpgo/internal/domain"
	"github.com/planfit/hpgo/internal/normalize"
)

// PlanInput is the on-disk shape of a planning request. Money fields are
// typed any so users can write either plain won amounts or Korean unit
// strings such as "3억 5천만"; the parser normalizes both.
type PlanInput struct {
	Profile     ProfileInput     `yaml:"profile"`
	Goal        GoalInput        `yaml:"goal"`
	Assets      AssetsInput      `yaml:"assets"`
	Assumptions AssumptionsInput `yaml:"assumptions"`
}

type ProfileInput struct {
	CreditScore       int    `yaml:"credit_score"`
	ExistingLoanCount int    `yaml:"existing_loan_count"`
	FirstTimeBuyer    bool   `yaml:"first_time_buyer"`
	OwnsHouse         bool   `yaml:"owns_house"`
	MonthlyIncome     any    `yaml:"monthly_income"`
	AnnualIncome      any    `yaml:"annual_income"`
	InvestTendency    string `yaml:"invest_tendency"`
	Age               int    `yaml:"age"`
	IsFirstCustomer   bool   `yaml:"first_customer"`
}

type GoalInput struct {
	HopePrice       any    `yaml:"hope_price"`
	HopeHousingType string `yaml:"hope_housing_type"`
	HopeLocation    string `yaml:"hope_location"`
	RegulatedArea   bool   `yaml:"regulated_area"`
}

type AssetsInput struct {
	InitialProp      any `yaml:"initial_prop"`
	InvestableAssets any `yaml:"investable_assets"`
}

type AssumptionsInput struct {
	IncomeUsageRatio string  `yaml:"income_usage_ratio"`
	SavingYield      float64 `yaml:"saving_yield"`
	FundYield        float64 `yaml:"fund_yield"`
	SavingRatio      float64 `yaml:"saving_ratio"`
	FundRatio        float64 `yaml:"fund_ratio"`
	TopKPerTier      int     `yaml:"top_k_per_tier"`
	FundSortKey      string  `yaml:"fund_sort_key"`
}

// InputParser handles parsing of plan input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan input from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*PlanInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input PlanInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput validates the loaded plan input. Missing required
// fields are reported together so users can fix a file in one pass.
func (ip *InputParser) ValidateInput(input *PlanInput) error {
	fields := map[string]any{
		"initial_prop":       input.Assets.InitialProp,
		"hope_location":      input.Goal.HopeLocation,
		"hope_price":         input.Goal.HopePrice,
		"hope_housing_type":  input.Goal.HopeHousingType,
		"income_usage_ratio": input.Assumptions.IncomeUsageRatio,
	}
	result := normalize.ValidateInput(fields)
	if result.Status == normalize.StatusIncomplete {
		return fmt.Errorf("required fields missing: %s", strings.Join(result.MissingFields, ", "))
	}

	if err := ip.validateProfile(&input.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	if err := ip.validateAssumptions(&input.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validateProfile(profile *ProfileInput) error {
	if profile.CreditScore < 0 || profile.CreditScore > 1000 {
		return fmt.Errorf("credit score must be between 0 and 1000")
	}
	if profile.ExistingLoanCount < 0 {
		return fmt.Errorf("existing loan count cannot be negative")
	}
	if profile.Age < 0 {
		return fmt.Errorf("age cannot be negative")
	}
	if profile.InvestTendency != "" {
		if _, ok := domain.AllowedTiers(domain.InvestorTendency(profile.InvestTendency)); !ok {
			return fmt.Errorf("unknown invest tendency: %s", profile.InvestTendency)
		}
	}
	return nil
}

func (ip *InputParser) validateAssumptions(a *AssumptionsInput) error {
	if a.SavingYield < -100 || a.FundYield < -100 {
		return fmt.Errorf("yields cannot be below -100%%")
	}
	if a.SavingRatio < 0 || a.FundRatio < 0 {
		return fmt.Errorf("contribution split ratios cannot be negative")
	}
	if a.SavingRatio == 0 && a.FundRatio == 0 {
		return fmt.Errorf("at least one of saving_ratio and fund_ratio must be positive")
	}
	if a.TopKPerTier < 0 {
		return fmt.Errorf("top_k_per_tier cannot be negative")
	}
	return nil
}

// ToPlanRequest converts a validated input into an engine request,
// normalizing currency strings and the usage ratio along the way.
func (input *PlanInput) ToPlanRequest() calculation.PlanRequest {
	usage, _ := normalize.Ratio(input.Assumptions.IncomeUsageRatio)

	return calculation.PlanRequest{
		Profile: domain.UserFinancialProfile{
			CreditScore:       input.Profile.CreditScore,
			ExistingLoanCount: input.Profile.ExistingLoanCount,
			FirstTimeBuyer:    input.Profile.FirstTimeBuyer,
			OwnsHouse:         input.Profile.OwnsHouse,
			MonthlyIncome:     normalize.Currency(input.Profile.MonthlyIncome),
			AnnualIncome:      normalize.Currency(input.Profile.AnnualIncome),
			InvestTendency:    domain.InvestorTendency(input.Profile.InvestTendency),
			Age:               input.Profile.Age,
			IsFirstCustomer:   input.Profile.IsFirstCustomer,
		},
		Goal: domain.HousingGoal{
			TargetPrice:   normalize.Currency(input.Goal.HopePrice),
			HousingType:   domain.HousingType(input.Goal.HopeHousingType),
			Location:      normalize.Location(input.Goal.HopeLocation),
			RegulatedArea: input.Goal.RegulatedArea,
		},
		InitialAssets:    normalize.Currency(input.Assets.InitialProp),
		InvestableAssets: normalize.Currency(input.Assets.InvestableAssets),
		IncomeUsageRatio: decimal.NewFromInt(int64(usage)),
		SavingYield:      decimal.NewFromFloat(input.Assumptions.SavingYield),
		FundYield:        decimal.NewFromFloat(input.Assumptions.FundYield),
		SavingRatio:      decimal.NewFromFloat(input.Assumptions.SavingRatio),
		FundRatio:        decimal.NewFromFloat(input.Assumptions.FundRatio),
		TopKPerTier:      input.Assumptions.TopKPerTier,
		FundSortKey:      input.Assumptions.FundSortKey,
	}
}
