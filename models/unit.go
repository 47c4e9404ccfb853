package models

// Unit is a rentable space from the static catalog.
type Unit struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Tier          string   `json:"tier"`
	Tagline       string   `json:"tagline"`
	Description   string   `json:"description"`
	MonthlyPrice  float64  `json:"monthlyPrice"`
	Features      []string `json:"features"`
	PrivacyLevel  string   `json:"privacyLevel"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	Sqft          int      `json:"sqft"`
	Image         string   `json:"image"`
	PerfectFor    string   `json:"perfectFor"`
}

type ContractLength struct {
	Weeks       int    `json:"weeks"`
	Label       string `json:"label"`
	Discount    int    `json:"discount"`
	Description string `json:"description"`
}

type Quote struct {
	UnitID          string  `json:"unitId"`
	Weeks           int     `json:"weeks"`
	DiscountPercent int     `json:"discountPercent"`
	MonthlyRate     float64 `json:"monthlyRate"`
	TotalRent       float64 `json:"totalRent"`
	SecurityDeposit float64 `json:"securityDeposit"`
	CleaningFee     float64 `json:"cleaningFee"`
	Total           float64 `json:"total"`
}
