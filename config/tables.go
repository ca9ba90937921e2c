package config

import "fmt"

// Project type and quality tier keys used by the cost and rate tables.
const (
	ProjectResidential = "residential"
	ProjectMultiFamily = "multi-family"
	ProjectCommercial  = "commercial"
	ProjectMixedUse    = "mixed-use"

	TierLow  = "low"
	TierMid  = "mid"
	TierHigh = "high"
)

// RateTables holds the configurable lookup tables behind the development
// cost estimator and the ROI projection: construction cost per square foot
// by project type and quality tier, lending rates and cap rates by project
// type. Tables are versioned so a deployment can swap assumptions without
// touching algorithm code.
type RateTables struct {
	Version string `json:"version"`

	// Construction cost in $/sqft, keyed by project type then quality tier
	ConstructionCosts map[string]map[string]float64 `json:"construction_costs"`

	// Annual lending rate as a fraction, keyed by project type
	LendingRates map[string]float64 `json:"lending_rates"`

	// Default lending rate for unlisted project types
	DefaultLendingRate float64 `json:"default_lending_rate"`

	// Market cap rate as a percentage, keyed by project type
	CapRates map[string]float64 `json:"cap_rates"`

	// Default cap rate for unlisted project types
	DefaultCapRate float64 `json:"default_cap_rate"`
}

// DefaultRateTables returns the built-in Houston-market assumptions.
func DefaultRateTables() *RateTables {
	return &RateTables{
		Version: "2025.2",
		ConstructionCosts: map[string]map[string]float64{
			ProjectResidential: {TierLow: 120, TierMid: 155, TierHigh: 210},
			ProjectMultiFamily: {TierLow: 110, TierMid: 140, TierHigh: 185},
			ProjectCommercial:  {TierLow: 130, TierMid: 170, TierHigh: 230},
			ProjectMixedUse:    {TierLow: 125, TierMid: 160, TierHigh: 215},
		},
		LendingRates: map[string]float64{
			ProjectResidential: 0.085,
			ProjectMultiFamily: 0.0775,
			ProjectCommercial:  0.0825,
			ProjectMixedUse:    0.08,
		},
		DefaultLendingRate: 0.085,
		CapRates: map[string]float64{
			ProjectResidential: 5.5,
			ProjectMultiFamily: 6.0,
			ProjectCommercial:  7.0,
			ProjectMixedUse:    6.5,
		},
		DefaultCapRate: 6.0,
	}
}

// Validate checks the structural assumptions the lookups rely on: the
// mixed-use construction row must exist (it is the substitution target for
// every unknown project type) and the default lending and cap rates must be
// positive (a zero default cap rate would divide the cap-rate valuation by
// zero).
func (t *RateTables) Validate() error {
	tiers := t.ConstructionCosts[ProjectMixedUse]
	if len(tiers) == 0 {
		return fmt.Errorf("construction_costs must include a %q row", ProjectMixedUse)
	}
	if _, ok := tiers[TierMid]; !ok {
		return fmt.Errorf("construction_costs %q row must include the %q tier", ProjectMixedUse, TierMid)
	}
	if t.DefaultLendingRate <= 0 {
		return fmt.Errorf("default_lending_rate must be positive")
	}
	if t.DefaultCapRate <= 0 {
		return fmt.Errorf("default_cap_rate must be positive")
	}
	return nil
}

// ConstructionCostPerSqft looks up the cost for a project type and tier.
// Unknown combinations degrade to the mixed-use row for the same tier; the
// second return value reports whether a substitution happened.
func (t *RateTables) ConstructionCostPerSqft(projectType, qualityTier string) (float64, bool) {
	if tiers, ok := t.ConstructionCosts[projectType]; ok {
		if cost, ok := tiers[qualityTier]; ok {
			return cost, false
		}
	}
	if cost, ok := t.ConstructionCosts[ProjectMixedUse][qualityTier]; ok {
		return cost, true
	}
	// Unknown tier as well: settle on the mixed-use mid row
	return t.ConstructionCosts[ProjectMixedUse][TierMid], true
}

// LendingRate returns the annual financing rate for a project type, falling
// back to the default rate for unlisted types.
func (t *RateTables) LendingRate(projectType string) (float64, bool) {
	if rate, ok := t.LendingRates[projectType]; ok {
		return rate, false
	}
	return t.DefaultLendingRate, true
}

// CapRate returns the market cap rate percentage for a project type,
// falling back to the default for unlisted types.
func (t *RateTables) CapRate(projectType string) (float64, bool) {
	if rate, ok := t.CapRates[projectType]; ok {
		return rate, false
	}
	return t.DefaultCapRate, true
}
