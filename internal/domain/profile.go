package domain

// InvestorTendency is one of the five risk-appetite labels assigned to a user.
// The labels follow the Korean investment-profile survey wording.
type InvestorTendency string

const (
	TendencyStable           InvestorTendency = "안정형"
	TendencyStabilitySeeking InvestorTendency = "안정추구형"
	TendencyRiskNeutral      InvestorTendency = "위험중립형"
	TendencyActive           InvestorTendency = "적극투자형"
	TendencyAggressive       InvestorTendency = "공격투자형"
)

// UserFinancialProfile contains the borrower attributes the engine reads.
// The engine never mutates a profile; all values are owned by the caller.
type UserFinancialProfile struct {
	CreditScore       int              `yaml:"credit_score" json:"credit_score"`
	ExistingLoanCount int              `yaml:"existing_loan_count" json:"existing_loan_count"`
	FirstTimeBuyer    bool             `yaml:"first_time_buyer" json:"first_time_buyer"`
	OwnsHouse         bool             `yaml:"owns_house" json:"owns_house"`
	MonthlyIncome     int64            `yaml:"monthly_income" json:"monthly_income"`
	AnnualIncome      int64            `yaml:"annual_income" json:"annual_income"`
	InvestTendency    InvestorTendency `yaml:"invest_tendency" json:"invest_tendency"`
	Age               int              `yaml:"age" json:"age"`
	IsFirstCustomer   bool             `yaml:"is_first_customer" json:"is_first_customer"`
}
