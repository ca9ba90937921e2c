package valuation

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"bayouhomes/server/internal/models"
)

const (
	// A sale never decays below half weight, however old. Thin Houston
	// submarkets would otherwise starve the estimate of data.
	recencyFloor = 0.5

	// Proximity never drops a comparable below this factor.
	proximityFloor = 0.6

	// Distance in km at which the proximity factor would reach zero
	// without the floor.
	proximityRangeKm = 16.0

	daysPerMonth = 30.44
)

// Weigh scores a comparable against the subject property and returns a
// similarity weight in [0, 1]. The weight is multiplicative, starting at
// 1.0; each factor only applies when both sides carry the attribute, so a
// record with no known attributes keeps full weight and the estimate
// degrades to an unweighted average.
func Weigh(subject models.SubjectProperty, comp models.ComparableSale, now time.Time) float64 {
	weight := 1.0

	// Size similarity
	if subject.SquareFeet != nil && *subject.SquareFeet > 0 && comp.SquareFeet != nil {
		diff := float64(*comp.SquareFeet - *subject.SquareFeet)
		if diff < 0 {
			diff = -diff
		}
		factor := 1.0 - diff/float64(*subject.SquareFeet)
		if factor < 0 {
			factor = 0
		}
		weight *= factor
	}

	// Bedroom similarity
	if subject.Bedrooms != nil && comp.Bedrooms != nil {
		diff := *comp.Bedrooms - *subject.Bedrooms
		if diff < 0 {
			diff = -diff
		}
		factor := 1.0 - 0.1*float64(diff)
		if factor < 0 {
			factor = 0
		}
		weight *= factor
	}

	// Recency decay, floored so old sales still contribute
	if comp.SoldDate != nil {
		months := now.Sub(*comp.SoldDate).Hours() / 24 / daysPerMonth
		factor := 1.0 - months/12.0
		if factor < recencyFloor {
			factor = recencyFloor
		}
		if factor > 1 {
			// Guards against future-dated sale records
			factor = 1
		}
		weight *= factor
	}

	// Proximity, when both sides are geocoded
	if subject.Latitude != nil && subject.Longitude != nil &&
		comp.Latitude != nil && comp.Longitude != nil {
		km := geo.Distance(
			orb.Point{*subject.Longitude, *subject.Latitude},
			orb.Point{*comp.Longitude, *comp.Latitude},
		) / 1000.0
		factor := 1.0 - km/proximityRangeKm
		if factor < proximityFloor {
			factor = proximityFloor
		}
		weight *= factor
	}

	return weight
}

// WeighAll scores every candidate and drops entries whose weight collapsed
// to zero or below; those must never enter the weighted-average denominator.
func WeighAll(subject models.SubjectProperty, comps []models.ComparableSale, now time.Time) []models.WeightedComparable {
	weighted := make([]models.WeightedComparable, 0, len(comps))
	for _, comp := range comps {
		w := Weigh(subject, comp, now)
		if w <= 0 {
			continue
		}
		weighted = append(weighted, models.WeightedComparable{Comparable: comp, Weight: w})
	}
	return weighted
}
