package models

import "time"

// ValuationRequest is the caller-supplied input for POST /api/valuation.
type ValuationRequest struct {
	Address      string   `json:"address"`
	Neighborhood string   `json:"neighborhood"`
	PropertyType string   `json:"property_type"`
	SquareFeet   *int     `json:"square_feet"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *float64 `json:"bathrooms"`
	YearBuilt    *int     `json:"year_built"`
	LotSize      *int     `json:"lot_size"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// Subject converts the request into the engine's input type.
func (r *ValuationRequest) Subject() SubjectProperty {
	return SubjectProperty{
		Address:      r.Address,
		Neighborhood: r.Neighborhood,
		PropertyType: r.PropertyType,
		SquareFeet:   r.SquareFeet,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		YearBuilt:    r.YearBuilt,
		LotSize:      r.LotSize,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
	}
}

// PriceRange is the valuation band. Low and High are derived from Mid at
// construction time (0.95x and 1.05x), so Low < Mid < High always holds.
type PriceRange struct {
	Low  float64 `json:"low"`
	Mid  float64 `json:"mid"`
	High float64 `json:"high"`
}

// NewPriceRange builds the band around an adjusted mid valuation.
func NewPriceRange(mid float64) PriceRange {
	return PriceRange{Low: mid * 0.95, Mid: mid, High: mid * 1.05}
}

// ValuationFactor is one human-readable line item explaining the estimate.
type ValuationFactor struct {
	Factor string `json:"factor"`
	Impact string `json:"impact"`
}

// ComparableSummary is the per-comparable view returned to callers.
type ComparableSummary struct {
	Address      string     `json:"address"`
	Price        float64    `json:"price"`
	PricePerSqft float64    `json:"price_per_sqft"`
	SquareFeet   *int       `json:"square_feet,omitempty"`
	Bedrooms     *int       `json:"bedrooms,omitempty"`
	Bathrooms    *float64   `json:"bathrooms,omitempty"`
	SoldDate     *time.Time `json:"sold_date,omitempty"`
	DaysOnMarket *int       `json:"days_on_market,omitempty"`
	Weight       float64    `json:"weight"`
}

// MarketInsights is the snapshot-derived section of the response. Absent
// when no snapshot could be assembled.
type MarketInsights struct {
	NeighborhoodMedian float64 `json:"neighborhood_median"`
	PricePerSqft       float64 `json:"price_per_sqft"`
	MarketTrend        string  `json:"market_trend"`
	AvgDaysOnMarket    float64 `json:"avg_days_on_market"`
}

// ValuationResponse is the complete payload for a valuation request.
type ValuationResponse struct {
	Valuation        PriceRange          `json:"valuation"`
	ConfidenceScore  int                 `json:"confidence_score"`
	Comparables      []ComparableSummary `json:"comparables"`
	MarketInsights   *MarketInsights     `json:"market_insights,omitempty"`
	ValuationFactors []ValuationFactor   `json:"valuation_factors"`
	Warnings         []string            `json:"warnings,omitempty"`
	LastUpdated      time.Time           `json:"last_updated"`
}
