package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bayouhomes/server/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.RunMigrations())
	t.Cleanup(func() { store.Close() })
	return store
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func timePtr(tm time.Time) *time.Time { return &tm }

func seedListings(t *testing.T, store *Store) {
	t.Helper()

	now := time.Now().UTC()
	listings := []models.ComparableSale{
		{
			Address:      "101 Yale St",
			Neighborhood: "Houston Heights",
			PropertyType: "single-family",
			ListPrice:    520000,
			SoldPrice:    floatPtr(500000),
			SoldDate:     timePtr(now.AddDate(0, -2, 0)),
			ListDate:     timePtr(now.AddDate(0, -4, 0)),
			SquareFeet:   intPtr(2100),
			Bedrooms:     intPtr(3),
			Bathrooms:    floatPtr(2),
		},
		{
			Address:      "202 Heights Blvd",
			Neighborhood: "Houston Heights",
			PropertyType: "single-family",
			ListPrice:    480000,
			SoldPrice:    floatPtr(470000),
			SoldDate:     timePtr(now.AddDate(0, -8, 0)),
			ListDate:     timePtr(now.AddDate(0, -10, 0)),
			SquareFeet:   intPtr(1900),
			Bedrooms:     intPtr(3),
			Bathrooms:    floatPtr(2),
		},
		{
			Address:      "303 Studewood St",
			Neighborhood: "Houston Heights",
			PropertyType: "townhouse",
			ListPrice:    430000,
			SquareFeet:   intPtr(1800),
			Bedrooms:     intPtr(2),
			Bathrooms:    floatPtr(2.5),
			ListDate:     timePtr(now.AddDate(0, -1, 0)),
		},
		{
			Address:      "404 Westheimer Rd",
			Neighborhood: "Montrose",
			PropertyType: "single-family",
			ListPrice:    600000,
			SoldPrice:    floatPtr(590000),
			SoldDate:     timePtr(now.AddDate(0, -1, 0)),
			SquareFeet:   intPtr(2400),
			Bedrooms:     intPtr(4),
			Bathrooms:    floatPtr(3),
		},
		{
			Address:      "505 Tiny Ln",
			Neighborhood: "Houston Heights",
			PropertyType: "single-family",
			ListPrice:    250000,
			SquareFeet:   intPtr(900),
			Bedrooms:     intPtr(1),
		},
	}

	require.NoError(t, store.UpsertListings(context.Background(), listings))
}

func TestFindComparablesFilters(t *testing.T) {
	store := newTestStore(t)
	seedListings(t, store)
	ctx := context.Background()

	t.Run("Neighborhood substring match", func(t *testing.T) {
		comps, err := store.FindComparables(ctx, models.SubjectProperty{Neighborhood: "Heights"}, 20)
		assert.NoError(t, err)
		assert.Len(t, comps, 4)
		for _, c := range comps {
			assert.Contains(t, c.Neighborhood, "Heights")
		}
	})

	t.Run("Property type filter", func(t *testing.T) {
		comps, err := store.FindComparables(ctx, models.SubjectProperty{
			Neighborhood: "Heights",
			PropertyType: "townhouse",
		}, 20)
		assert.NoError(t, err)
		assert.Len(t, comps, 1)
		assert.Equal(t, "303 Studewood St", comps[0].Address)
	})

	t.Run("Square footage within 20 percent", func(t *testing.T) {
		comps, err := store.FindComparables(ctx, models.SubjectProperty{
			Neighborhood: "Heights",
			SquareFeet:   intPtr(2000),
		}, 20)
		assert.NoError(t, err)
		assert.Len(t, comps, 3)
		for _, c := range comps {
			assert.GreaterOrEqual(t, *c.SquareFeet, 1600)
			assert.LessOrEqual(t, *c.SquareFeet, 2400)
		}
	})

	t.Run("Bedrooms within one", func(t *testing.T) {
		comps, err := store.FindComparables(ctx, models.SubjectProperty{
			Neighborhood: "Heights",
			Bedrooms:     intPtr(3),
		}, 20)
		assert.NoError(t, err)
		assert.Len(t, comps, 3)
	})

	t.Run("Sold date ranks first", func(t *testing.T) {
		comps, err := store.FindComparables(ctx, models.SubjectProperty{
			Neighborhood: "Heights",
			Bedrooms:     intPtr(3),
		}, 20)
		assert.NoError(t, err)
		require.NotEmpty(t, comps)
		assert.Equal(t, "101 Yale St", comps[0].Address)
	})

	t.Run("Max results respected", func(t *testing.T) {
		comps, err := store.FindComparables(ctx, models.SubjectProperty{Neighborhood: "Heights"}, 2)
		assert.NoError(t, err)
		assert.Len(t, comps, 2)
	})

	t.Run("No match returns empty slice not error", func(t *testing.T) {
		comps, err := store.FindComparables(ctx, models.SubjectProperty{Neighborhood: "River Oaks"}, 20)
		assert.NoError(t, err)
		assert.Empty(t, comps)
	})
}

func TestUpsertListingsReplacesOnAddress(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := []models.ComparableSale{{
		Address:      "101 Yale St",
		Neighborhood: "Houston Heights",
		PropertyType: "single-family",
		ListPrice:    500000,
	}}
	require.NoError(t, store.UpsertListings(ctx, first))

	updated := []models.ComparableSale{{
		Address:      "101 Yale St",
		Neighborhood: "Houston Heights",
		PropertyType: "single-family",
		ListPrice:    515000,
	}}
	require.NoError(t, store.UpsertListings(ctx, updated))

	comps, err := store.FindComparables(ctx, models.SubjectProperty{Neighborhood: "Heights"}, 20)
	assert.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, 515000.0, comps[0].ListPrice)
}

func TestGetMarketSnapshot(t *testing.T) {
	store := newTestStore(t)
	seedListings(t, store)
	ctx := context.Background()

	t.Run("Unknown neighborhood returns nil without error", func(t *testing.T) {
		snapshot, err := store.GetMarketSnapshot(ctx, "River Oaks")
		assert.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("Known neighborhood aggregates", func(t *testing.T) {
		snapshot, err := store.GetMarketSnapshot(ctx, "Heights")
		assert.NoError(t, err)
		require.NotNil(t, snapshot)

		assert.Greater(t, snapshot.MedianPrice, 0.0)
		assert.Greater(t, snapshot.AvgPricePerSqft, 0.0)
		assert.GreaterOrEqual(t, snapshot.AvgDaysOnMarket, 0.0)
		assert.GreaterOrEqual(t, snapshot.InventoryMonths, 0.0)
		assert.Contains(t, []string{models.TrendAppreciating, models.TrendStable}, snapshot.Trend)
	})
}
