package investment

import (
	"fmt"
	"math"

	"bayouhomes/server/config"
	"bayouhomes/server/internal/models"
)

// Share of projected revenue treated as net operating income for the
// cap-rate cross-check.
const noiShare = 0.75

// Project computes the investment math for a single-exit development.
//
// The IRR here is a lump-sum approximation, (revenue/investment)^(12/months)
// minus one: the project is modeled as a single outlay returned in full at
// exit. It is adequate for that shape and wrong for recurring cash flows.
func Project(tables *config.RateTables, costs models.DevelopmentCostBreakdown, projectedRevenue float64, durationMonths int, projectType string) (models.ROIProjection, []string, error) {
	totalInvestment := costs.Total
	if totalInvestment == 0 {
		return models.ROIProjection{}, nil, fmt.Errorf("%w: total investment is zero, ROI is undefined", ErrInvalidInput)
	}
	if totalInvestment < 0 {
		return models.ROIProjection{}, nil, fmt.Errorf("%w: total investment must be positive", ErrInvalidInput)
	}
	if durationMonths <= 0 {
		return models.ROIProjection{}, nil, fmt.Errorf("%w: duration_months must be positive", ErrInvalidInput)
	}
	if projectedRevenue < 0 {
		return models.ROIProjection{}, nil, fmt.Errorf("%w: projected_revenue must not be negative", ErrInvalidInput)
	}
	if tables == nil {
		tables = config.DefaultRateTables()
	}

	var warnings []string

	netProfit := projectedRevenue - totalInvestment
	roi := netProfit / totalInvestment * 100

	// A non-positive monthly return never pays back; the sentinel keeps
	// callers from seeing a negative or infinite period.
	payback := float64(models.NoPayback)
	monthlyReturn := netProfit / float64(durationMonths)
	if monthlyReturn > 0 {
		payback = totalInvestment / monthlyReturn
	}

	irr := (math.Pow(projectedRevenue/totalInvestment, 12/float64(durationMonths)) - 1) * 100

	capRate, defaulted := tables.CapRate(projectType)
	if defaulted && projectType != "" {
		warnings = append(warnings, fmt.Sprintf(
			"no cap rate configured for project type %q: default %.1f%% applied", projectType, capRate))
	}
	capRateValue := (projectedRevenue * noiShare) / (capRate / 100)

	return models.ROIProjection{
		TotalInvestment:  totalInvestment,
		ProjectedRevenue: projectedRevenue,
		NetProfit:        netProfit,
		ROI:              roi,
		PaybackMonths:    payback,
		IRR:              irr,
		CapRateValue:     &capRateValue,
	}, warnings, nil
}
