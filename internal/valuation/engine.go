package valuation

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"bayouhomes/server/internal/models"
)

// ComparableSource is the read-only query interface over the listing store.
// Implementations return an empty slice, never an error, when no record
// matches the filters.
type ComparableSource interface {
	FindComparables(ctx context.Context, subject models.SubjectProperty, maxResults int) ([]models.ComparableSale, error)
}

// MarketSnapshotSource assembles neighborhood-level market context. A nil
// snapshot with a nil error means no data exists for the area.
type MarketSnapshotSource interface {
	GetMarketSnapshot(ctx context.Context, neighborhood string) (*models.MarketSnapshot, error)
}

// Params are the named fallback constants of the valuation pipeline.
type Params struct {
	// Comparables fetched per request
	MaxComparables int

	// $/sqft used when no comparables are available
	RegionalAvgPricePerSqft float64

	// Flat valuation used when square footage is unknown as well
	RegionalDefaultValue float64
}

// Engine runs the valuation pipeline: fetch comparables, weigh them,
// synthesize a base value, apply market adjustment and score confidence.
// It holds no persistent connection and no mutable state; both sources are
// injected at construction.
type Engine struct {
	comps  ComparableSource
	market MarketSnapshotSource
	params Params
	logger *logrus.Logger
	now    func() time.Time
}

// NewEngine creates a valuation engine backed by the given sources.
func NewEngine(comps ComparableSource, market MarketSnapshotSource, params Params, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if params.MaxComparables <= 0 {
		params.MaxComparables = 20
	}

	return &Engine{
		comps:  comps,
		market: market,
		params: params,
		logger: logger,
		now:    time.Now,
	}
}

// Valuate produces a complete valuation for the subject property. Upstream
// read failures degrade to the documented fallbacks and are reported as
// warnings; only unusable input is returned as an error.
func (e *Engine) Valuate(ctx context.Context, subject models.SubjectProperty) (*models.ValuationResponse, error) {
	if err := validateSubject(subject); err != nil {
		return nil, err
	}

	var warnings []string

	comps, err := e.comps.FindComparables(ctx, subject, e.params.MaxComparables)
	if err != nil {
		if !e.hasRegionalFallback() {
			return nil, fmt.Errorf("%w: comparable lookup failed and no regional fallback is configured: %v", ErrDataUnavailable, err)
		}
		e.logger.WithError(err).Warn("Comparable lookup failed, falling back to regional average")
		warnings = append(warnings, "comparable data unavailable, regional average used")
		comps = nil
	}

	weighted := WeighAll(subject, comps, e.now())
	base := e.baseValue(subject, weighted)

	var snapshot *models.MarketSnapshot
	if e.market != nil && subject.Neighborhood != "" {
		snapshot, err = e.market.GetMarketSnapshot(ctx, subject.Neighborhood)
		if err != nil {
			e.logger.WithError(err).WithField("neighborhood", subject.Neighborhood).
				Warn("Market snapshot unavailable, skipping adjustment")
			warnings = append(warnings, "market snapshot unavailable, no market adjustment applied")
			snapshot = nil
		}
	}

	mid := Adjust(base, snapshot)
	score := Confidence(comps, subject)

	resp := &models.ValuationResponse{
		Valuation:        models.NewPriceRange(mid),
		ConfidenceScore:  score,
		Comparables:      summarize(weighted, e.now()),
		MarketInsights:   insights(snapshot),
		ValuationFactors: e.factors(subject, comps, weighted, snapshot),
		Warnings:         warnings,
		LastUpdated:      e.now(),
	}
	return resp, nil
}

// hasRegionalFallback reports whether a failed comparable read can still
// produce a valuation from the configured regional parameters.
func (e *Engine) hasRegionalFallback() bool {
	return e.params.RegionalAvgPricePerSqft > 0 || e.params.RegionalDefaultValue > 0
}

func validateSubject(subject models.SubjectProperty) error {
	if subject.SquareFeet != nil && *subject.SquareFeet <= 0 {
		return fmt.Errorf("%w: square_feet must be positive", ErrInvalidInput)
	}
	if subject.Bedrooms != nil && *subject.Bedrooms <= 0 {
		return fmt.Errorf("%w: bedrooms must be positive", ErrInvalidInput)
	}
	return nil
}

// baseValue synthesizes the weighted-average price. Every fallback is a
// named branch: zero weight sum degrades to the unweighted mean of valid
// prices, an empty candidate set to the regional-average formula.
func (e *Engine) baseValue(subject models.SubjectProperty, weighted []models.WeightedComparable) float64 {
	var priceSum, weightSum float64
	var validPrices []float64
	for _, wc := range weighted {
		price := wc.Comparable.Price()
		if price <= 0 {
			continue
		}
		validPrices = append(validPrices, price)
		priceSum += price * wc.Weight
		weightSum += wc.Weight
	}

	if weightSum > 0 {
		return priceSum / weightSum
	}
	if len(validPrices) > 0 {
		// Weights collapsed but prices exist: unweighted mean
		var sum float64
		for _, p := range validPrices {
			sum += p
		}
		return sum / float64(len(validPrices))
	}
	return e.regionalFallback(subject)
}

func (e *Engine) regionalFallback(subject models.SubjectProperty) float64 {
	if subject.SquareFeet != nil && *subject.SquareFeet > 0 {
		return float64(*subject.SquareFeet) * e.params.RegionalAvgPricePerSqft
	}
	return e.params.RegionalDefaultValue
}

// Adjust scales a base valuation by market conditions. The multipliers are
// independent and compose multiplicatively; a nil snapshot is a no-op.
func Adjust(base float64, snapshot *models.MarketSnapshot) float64 {
	if snapshot == nil {
		return base
	}

	adjusted := base
	if snapshot.InventoryMonths < 3 {
		adjusted *= 1.05 // seller's market
	} else if snapshot.InventoryMonths > 6 {
		adjusted *= 0.95 // buyer's market
	}
	if snapshot.Trend == models.TrendAppreciating {
		adjusted *= 1.02
	}
	return adjusted
}

// Confidence scores how well the input and comparable data support the
// estimate. The result is capped at 95: the engine never claims
// near-certainty.
func Confidence(comps []models.ComparableSale, subject models.SubjectProperty) int {
	score := 50

	switch {
	case len(comps) >= 10:
		score += 20
	case len(comps) >= 5:
		score += 10
	case len(comps) >= 3:
		score += 5
	}

	if subject.SquareFeet != nil {
		score += 10
	}
	if subject.Bedrooms != nil && subject.Bathrooms != nil {
		score += 10
	}
	if subject.YearBuilt != nil {
		score += 5
	}
	if subject.Neighborhood != "" {
		score += 5
	}

	if score > 95 {
		score = 95
	}
	return score
}

// summarize returns the top comparables by weight, at most five.
func summarize(weighted []models.WeightedComparable, now time.Time) []models.ComparableSummary {
	sorted := make([]models.WeightedComparable, len(weighted))
	copy(sorted, weighted)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})

	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	summaries := make([]models.ComparableSummary, 0, len(sorted))
	for _, wc := range sorted {
		c := wc.Comparable
		s := models.ComparableSummary{
			Address:    c.Address,
			Price:      c.Price(),
			SquareFeet: c.SquareFeet,
			Bedrooms:   c.Bedrooms,
			Bathrooms:  c.Bathrooms,
			SoldDate:   c.SoldDate,
			Weight:     wc.Weight,
		}
		if c.SquareFeet != nil && *c.SquareFeet > 0 {
			s.PricePerSqft = s.Price / float64(*c.SquareFeet)
		}
		if c.ListDate != nil {
			end := now
			if c.SoldDate != nil {
				end = *c.SoldDate
			}
			days := int(end.Sub(*c.ListDate).Hours() / 24)
			if days >= 0 {
				s.DaysOnMarket = &days
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}

func insights(snapshot *models.MarketSnapshot) *models.MarketInsights {
	if snapshot == nil {
		return nil
	}
	return &models.MarketInsights{
		NeighborhoodMedian: snapshot.MedianPrice,
		PricePerSqft:       snapshot.AvgPricePerSqft,
		MarketTrend:        snapshot.Trend,
		AvgDaysOnMarket:    snapshot.AvgDaysOnMarket,
	}
}

// factors builds the ordered explanation list returned with every result.
func (e *Engine) factors(subject models.SubjectProperty, comps []models.ComparableSale, weighted []models.WeightedComparable, snapshot *models.MarketSnapshot) []models.ValuationFactor {
	var factors []models.ValuationFactor

	if len(weighted) > 0 {
		factors = append(factors, models.ValuationFactor{
			Factor: "Comparable sales",
			Impact: fmt.Sprintf("%d of %d candidates weighted into the estimate", len(weighted), len(comps)),
		})
	} else if subject.SquareFeet != nil && *subject.SquareFeet > 0 {
		factors = append(factors, models.ValuationFactor{
			Factor: "Regional average",
			Impact: fmt.Sprintf("no comparables found, %.0f $/sqft regional rate applied", e.params.RegionalAvgPricePerSqft),
		})
	} else {
		factors = append(factors, models.ValuationFactor{
			Factor: "Regional default",
			Impact: "no comparables or square footage, regional default valuation applied",
		})
	}

	if snapshot != nil {
		if snapshot.InventoryMonths < 3 {
			factors = append(factors, models.ValuationFactor{
				Factor: "Market inventory",
				Impact: "+5% seller's market adjustment",
			})
		} else if snapshot.InventoryMonths > 6 {
			factors = append(factors, models.ValuationFactor{
				Factor: "Market inventory",
				Impact: "-5% buyer's market adjustment",
			})
		}
		if snapshot.Trend == models.TrendAppreciating {
			factors = append(factors, models.ValuationFactor{
				Factor: "Market trend",
				Impact: "+2% appreciating trend adjustment",
			})
		}
	}

	return factors
}
