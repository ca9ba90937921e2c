package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructionCostPerSqft(t *testing.T) {
	tables := DefaultRateTables()

	tests := []struct {
		name        string
		projectType string
		qualityTier string
		expected    float64
		substituted bool
	}{
		{"Mid residential", ProjectResidential, TierMid, 155, false},
		{"High commercial", ProjectCommercial, TierHigh, 230, false},
		{"Low multi-family", ProjectMultiFamily, TierLow, 110, false},
		{"Unknown type falls back to mixed-use", "warehouse", TierMid, 160, true},
		{"Unknown tier falls back to mixed-use mid", ProjectResidential, "platinum", 160, true},
		{"Unknown type and tier", "warehouse", "platinum", 160, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, substituted := tables.ConstructionCostPerSqft(tt.projectType, tt.qualityTier)
			assert.Equal(t, tt.expected, cost)
			assert.Equal(t, tt.substituted, substituted)
		})
	}
}

func TestLendingRate(t *testing.T) {
	tables := DefaultRateTables()

	rate, defaulted := tables.LendingRate(ProjectMultiFamily)
	assert.Equal(t, 0.0775, rate)
	assert.False(t, defaulted)

	rate, defaulted = tables.LendingRate("warehouse")
	assert.Equal(t, tables.DefaultLendingRate, rate)
	assert.True(t, defaulted)
}

func TestCapRate(t *testing.T) {
	tables := DefaultRateTables()

	rate, defaulted := tables.CapRate(ProjectCommercial)
	assert.Equal(t, 7.0, rate)
	assert.False(t, defaulted)

	rate, defaulted = tables.CapRate("")
	assert.Equal(t, tables.DefaultCapRate, rate)
	assert.True(t, defaulted)
}

func TestGetRateTablesWithoutLoadReturnsDefaults(t *testing.T) {
	tables := GetRateTables()
	assert.NotNil(t, tables)
	assert.NotEmpty(t, tables.Version)
	assert.NotEmpty(t, tables.ConstructionCosts)
}
