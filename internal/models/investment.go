package models

// InvestmentRequest is the caller-supplied input for POST /api/investment.
type InvestmentRequest struct {
	LandValue        float64 `json:"land_value"`
	BuildingSqft     int     `json:"building_sqft"`
	ProjectType      string  `json:"project_type"`
	QualityTier      string  `json:"quality_tier"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	DurationMonths   int     `json:"duration_months"`
}

// DevelopmentCostBreakdown itemizes a development budget. Total is always
// the exact sum of the six components; it is computed at construction and
// never stored independently.
type DevelopmentCostBreakdown struct {
	LandAcquisition float64 `json:"land_acquisition"`
	Construction    float64 `json:"construction"`
	Permits         float64 `json:"permits"`
	Utilities       float64 `json:"utilities"`
	Contingency     float64 `json:"contingency"`
	Financing       float64 `json:"financing"`
	Total           float64 `json:"total"`
}

// NoPayback is the PaybackMonths sentinel for projects whose monthly return
// is not positive: there is no payback within any horizon.
const NoPayback = -1

// ROIProjection holds the investment math for a single-exit project.
// NetProfit and ROI are derived from ProjectedRevenue and TotalInvestment,
// never supplied independently. IRR is the lump-sum approximation
// (revenue/investment)^(12/months) - 1 expressed as a percentage; it is not
// a multi-period discounted-cash-flow IRR and must not be used for
// recurring cash flows.
type ROIProjection struct {
	TotalInvestment  float64  `json:"total_investment"`
	ProjectedRevenue float64  `json:"projected_revenue"`
	NetProfit        float64  `json:"net_profit"`
	ROI              float64  `json:"roi"`
	PaybackMonths    float64  `json:"payback_months"`
	IRR              float64  `json:"irr"`
	CapRateValue     *float64 `json:"cap_rate_value,omitempty"`
}

// TimelinePhase is one entry of a project schedule. Phases are contiguous:
// each phase starts where the previous one ends.
type TimelinePhase struct {
	Phase      string `json:"phase"`
	StartMonth int    `json:"start_month"`
	EndMonth   int    `json:"end_month"`
	Duration   int    `json:"duration"`
}

// InvestmentResponse is the complete payload for an investment projection.
type InvestmentResponse struct {
	Costs    DevelopmentCostBreakdown `json:"costs"`
	ROI      ROIProjection            `json:"roi"`
	Timeline []TimelinePhase          `json:"timeline"`
	Warnings []string                 `json:"warnings,omitempty"`
}
