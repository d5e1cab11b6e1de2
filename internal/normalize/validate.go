package normalize

import "fmt"

// Input validation status values.
const (
	StatusSuccess    = "success"
	StatusIncomplete = "incomplete"
)

// requiredFields are checked, in order, before any value normalization.
var requiredFields = []string{
	"initial_prop",
	"hope_location",
	"hope_price",
	"hope_housing_type",
	"income_usage_ratio",
}

// PlanInputData is the normalized form of the raw planning input.
type PlanInputData struct {
	InitialProp      int64  `json:"initial_prop"`
	HopeLocation     string `json:"hope_location"`
	HopePrice        int64  `json:"hope_price"`
	HopeHousingType  string `json:"hope_housing_type"`
	IncomeUsageRatio int    `json:"income_usage_ratio"`
}

// ValidationResult reports either a normalized input or the list of
// missing fields. A non-empty MissingFields always means Data is nil.
type ValidationResult struct {
	Status        string         `json:"status"`
	Data          *PlanInputData `json:"data,omitempty"`
	MissingFields []string       `json:"missing_fields"`
}

// ValidateInput checks the raw planning input for missing required
// fields, then normalizes currency, ratio and location values. The
// missing-field check runs strictly before any parsing: an incomplete
// payload returns without touching the normalizers.
func ValidateInput(data map[string]any) ValidationResult {
	result := ValidationResult{
		Status:        StatusSuccess,
		MissingFields: []string{},
	}

	for _, field := range requiredFields {
		if isMissing(data[field]) {
			result.MissingFields = append(result.MissingFields, field)
		}
	}
	if len(result.MissingFields) > 0 {
		result.Status = StatusIncomplete
		return result
	}

	ratio, _ := Ratio(fmt.Sprintf("%v", data["income_usage_ratio"]))
	result.Data = &PlanInputData{
		InitialProp:      Currency(data["initial_prop"]),
		HopeLocation:     Location(fmt.Sprintf("%v", data["hope_location"])),
		HopePrice:        Currency(data["hope_price"]),
		HopeHousingType:  fmt.Sprintf("%v", data["hope_housing_type"]),
		IncomeUsageRatio: ratio,
	}
	return result
}

// isMissing reports whether a field counts as not supplied. Zero and
// "0" are treated as missing: a zero price or zero assets can never be
// a deliberate planning input.
func isMissing(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case string:
		return n == "" || n == "0"
	case int:
		return n == 0
	case int64:
		return n == 0
	case float64:
		return n == 0
	default:
		return false
	}
}
