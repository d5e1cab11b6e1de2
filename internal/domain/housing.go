package domain

// HousingType is the dwelling category used for base LTV selection.
type HousingType string

const (
	HousingApartment HousingType = "아파트"
	HousingOfficetel HousingType = "오피스텔"
	HousingMultiUnit HousingType = "연립다세대"
	HousingDetached  HousingType = "단독다가구"
)

// HousingGoal describes the target purchase. Location is opaque to the
// engine; only callers (market price lookup) interpret it.
type HousingGoal struct {
	TargetPrice   int64       `yaml:"target_price" json:"target_price"`
	HousingType   HousingType `yaml:"housing_type" json:"housing_type"`
	Location      string      `yaml:"location" json:"location"`
	RegulatedArea bool        `yaml:"regulated_area" json:"regulated_area"`
}
