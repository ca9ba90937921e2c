package investment

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"bayouhomes/server/config"
	"bayouhomes/server/internal/models"
)

const (
	permitRate      = 0.025
	utilityRate     = 0.03
	contingencyRate = 0.10
	permitFloor     = 5000.0
)

// Estimator computes development cost breakdowns from the configured
// cost and rate tables.
type Estimator struct {
	tables *config.RateTables
	logger *logrus.Logger

	// Houston enforces flat permit minimums regardless of project size
	houstonPermitFloors bool
	flatPermitFloor     float64
}

// NewEstimator creates a cost estimator over the given rate tables.
func NewEstimator(tables *config.RateTables, houstonPermitFloors bool, flatPermitFloor float64, logger *logrus.Logger) *Estimator {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if tables == nil {
		tables = config.DefaultRateTables()
	}
	if flatPermitFloor <= 0 {
		flatPermitFloor = permitFloor
	}

	return &Estimator{
		tables:              tables,
		logger:              logger,
		houstonPermitFloors: houstonPermitFloors,
		flatPermitFloor:     flatPermitFloor,
	}
}

// EstimateCosts computes the full development budget for a project. An
// unrecognized project type never fails: the estimate degrades to the
// mixed-use cost row and the substitution is reported as a warning. The
// returned Total is the exact sum of the six components by construction.
func (e *Estimator) EstimateCosts(landValue float64, buildingSqft int, projectType, qualityTier string) (models.DevelopmentCostBreakdown, []string, error) {
	if buildingSqft <= 0 {
		return models.DevelopmentCostBreakdown{}, nil, fmt.Errorf("%w: building_sqft must be positive", ErrInvalidInput)
	}
	if landValue < 0 {
		return models.DevelopmentCostBreakdown{}, nil, fmt.Errorf("%w: land_value must not be negative", ErrInvalidInput)
	}

	var warnings []string

	costPerSqft, substituted := e.tables.ConstructionCostPerSqft(projectType, qualityTier)
	if substituted {
		e.logger.WithFields(logrus.Fields{
			"project_type": projectType,
			"quality_tier": qualityTier,
		}).Warn("Unknown project type or tier, using mixed-use cost row")
		warnings = append(warnings, fmt.Sprintf(
			"unknown project type %q (tier %q): mixed-use construction costs substituted", projectType, qualityTier))
	}

	construction := float64(buildingSqft) * costPerSqft
	base := landValue + construction

	permits := base * permitRate
	if e.houstonPermitFloors && permits < e.flatPermitFloor {
		permits = e.flatPermitFloor
	}

	utilities := base * utilityRate
	contingency := base * contingencyRate

	rate, defaulted := e.tables.LendingRate(projectType)
	if defaulted {
		warnings = append(warnings, fmt.Sprintf(
			"no lending rate configured for project type %q: default rate %.2f%% applied", projectType, rate*100))
	}
	financing := rate * (base + permits + utilities)

	breakdown := models.DevelopmentCostBreakdown{
		LandAcquisition: landValue,
		Construction:    construction,
		Permits:         permits,
		Utilities:       utilities,
		Contingency:     contingency,
		Financing:       financing,
	}
	breakdown.Total = breakdown.LandAcquisition + breakdown.Construction +
		breakdown.Permits + breakdown.Utilities + breakdown.Contingency + breakdown.Financing

	return breakdown, warnings, nil
}
