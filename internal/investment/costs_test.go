package investment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bayouhomes/server/config"
)

func newTestEstimator(houstonFloors bool) *Estimator {
	return NewEstimator(config.DefaultRateTables(), houstonFloors, 5000, nil)
}

func TestEstimateCostsMidResidential(t *testing.T) {
	estimator := newTestEstimator(true)

	costs, warnings, err := estimator.EstimateCosts(200000, 2000, config.ProjectResidential, config.TierMid)
	assert.NoError(t, err)
	assert.Empty(t, warnings)

	// 2000 sqft at the configured $155/sqft mid residential rate
	assert.Equal(t, 310000.0, costs.Construction)
	assert.Equal(t, 200000.0, costs.LandAcquisition)

	base := 200000.0 + 310000.0
	assert.InDelta(t, base*0.025, costs.Permits, 1e-6)
	assert.InDelta(t, base*0.03, costs.Utilities, 1e-6)
	assert.InDelta(t, base*0.10, costs.Contingency, 1e-6)
	assert.InDelta(t, 0.085*(base+costs.Permits+costs.Utilities), costs.Financing, 1e-6)

	sum := costs.LandAcquisition + costs.Construction + costs.Permits +
		costs.Utilities + costs.Contingency + costs.Financing
	assert.InDelta(t, sum, costs.Total, 1e-9)
}

func TestEstimateCostsPermitFloor(t *testing.T) {
	estimator := newTestEstimator(true)

	// Small project: 2.5% of base is under the flat floor
	costs, _, err := estimator.EstimateCosts(20000, 500, config.ProjectResidential, config.TierLow)
	assert.NoError(t, err)
	assert.Equal(t, 5000.0, costs.Permits)

	// Floors disabled: the bare percentage stands
	noFloors := newTestEstimator(false)
	costs, _, err = noFloors.EstimateCosts(20000, 500, config.ProjectResidential, config.TierLow)
	assert.NoError(t, err)
	assert.InDelta(t, (20000.0+500*120)*0.025, costs.Permits, 1e-6)
}

func TestEstimateCostsUnknownProjectType(t *testing.T) {
	estimator := newTestEstimator(true)

	costs, warnings, err := estimator.EstimateCosts(100000, 1000, "houseboat", config.TierMid)
	assert.NoError(t, err)

	// Degrades to the mixed-use row for the tier and says so
	assert.Equal(t, 1000*160.0, costs.Construction)
	assert.NotEmpty(t, warnings)

	// Unlisted type also gets the default lending rate, with its own note
	assert.Len(t, warnings, 2)
}

func TestEstimateCostsUnknownTier(t *testing.T) {
	estimator := newTestEstimator(true)

	costs, warnings, err := estimator.EstimateCosts(100000, 1000, config.ProjectResidential, "platinum")
	assert.NoError(t, err)
	assert.Equal(t, 1000*160.0, costs.Construction)
	assert.NotEmpty(t, warnings)
}

func TestEstimateCostsInvalidInput(t *testing.T) {
	estimator := newTestEstimator(true)

	_, _, err := estimator.EstimateCosts(100000, 0, config.ProjectResidential, config.TierMid)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = estimator.EstimateCosts(-1, 1000, config.ProjectResidential, config.TierMid)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
