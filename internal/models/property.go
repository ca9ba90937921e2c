package models

import "time"

// SubjectProperty describes the property being valued. It is the immutable
// input to a valuation request and is never persisted by the engine.
type SubjectProperty struct {
	Address      string   `json:"address,omitempty"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	PropertyType string   `json:"property_type,omitempty"`
	SquareFeet   *int     `json:"square_feet,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *float64 `json:"bathrooms,omitempty"`
	YearBuilt    *int     `json:"year_built,omitempty"`
	LotSize      *int     `json:"lot_size,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// ComparableSale is a historical or active listing read from the store.
// The engine never mutates these records.
type ComparableSale struct {
	ID           int64      `json:"id"`
	Address      string     `json:"address"`
	Neighborhood string     `json:"neighborhood"`
	PropertyType string     `json:"property_type"`
	ListPrice    float64    `json:"list_price"`
	SoldPrice    *float64   `json:"sold_price,omitempty"`
	SoldDate     *time.Time `json:"sold_date,omitempty"`
	ListDate     *time.Time `json:"list_date,omitempty"`
	SquareFeet   *int       `json:"square_feet,omitempty"`
	Bedrooms     *int       `json:"bedrooms,omitempty"`
	Bathrooms    *float64   `json:"bathrooms,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
}

// Price returns the price a comparable contributes to the estimate: the
// sold price when recorded, otherwise the list price. Zero means unusable.
func (c *ComparableSale) Price() float64 {
	if c.SoldPrice != nil && *c.SoldPrice > 0 {
		return *c.SoldPrice
	}
	return c.ListPrice
}

// WeightedComparable pairs a comparable with its similarity weight for one
// valuation request. Weight is in (0, 1]; entries that collapse to zero are
// dropped before aggregation.
type WeightedComparable struct {
	Comparable ComparableSale `json:"comparable"`
	Weight     float64        `json:"weight"`
}

// Market trend labels stored on snapshots.
const (
	TrendAppreciating = "appreciating"
	TrendStable       = "stable"
)

// MarketSnapshot is neighborhood-level context assembled from aggregate
// queries. A nil snapshot disables market adjustment.
type MarketSnapshot struct {
	Neighborhood    string  `json:"neighborhood"`
	MedianPrice     float64 `json:"median_price"`
	AvgPricePerSqft float64 `json:"avg_price_per_sqft"`
	AvgDaysOnMarket float64 `json:"avg_days_on_market"`
	InventoryMonths float64 `json:"inventory_months"`
	Trend           string  `json:"trend"`
}
