package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bayouhomes/server/internal/models"
)

const listingsTable = "listings"

// Store is the sqlite-backed listing store. It serves the engine's two
// read interfaces (comparable lookup, market snapshot assembly) and the
// batch upsert used to maintain the listings table. The raw connection
// handles migrations and aggregate queries; gorm wraps the same connection
// for the chained-filter comparable query and the upsert path.
type Store struct {
	db   *sql.DB
	gorm *gorm.DB
}

func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(&sqlite.Dialector{Conn: db}, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm over sqlite: %w", err)
	}

	return &Store{db: db, gorm: gdb}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// FindComparables returns candidate sales loosely matching the subject:
// neighborhood substring, property type, square footage within 20% and
// bedroom count within one, each filter applied only when the subject
// carries the attribute. Results are ranked by recency. An empty slice is
// a valid answer, never an error.
func (s *Store) FindComparables(ctx context.Context, subject models.SubjectProperty, maxResults int) ([]models.ComparableSale, error) {
	if maxResults <= 0 {
		maxResults = 20
	}

	q := s.gorm.WithContext(ctx).Table(listingsTable)

	if subject.Neighborhood != "" {
		q = q.Where("LOWER(neighborhood) LIKE '%' || LOWER(?) || '%'", subject.Neighborhood)
	}
	if subject.PropertyType != "" {
		q = q.Where("LOWER(property_type) = LOWER(?)", subject.PropertyType)
	}
	if subject.SquareFeet != nil && *subject.SquareFeet > 0 {
		sqft := float64(*subject.SquareFeet)
		q = q.Where("square_feet BETWEEN ? AND ?", sqft*0.8, sqft*1.2)
	}
	if subject.Bedrooms != nil {
		q = q.Where("bedrooms BETWEEN ? AND ?", *subject.Bedrooms-1, *subject.Bedrooms+1)
	}

	var comps []models.ComparableSale
	err := q.Order("sold_date DESC").Order("list_date DESC").
		Limit(maxResults).Find(&comps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query comparables: %w", err)
	}
	return comps, nil
}

// UpsertListings writes a batch of listing records in one transaction,
// replacing rows that collide on address.
func (s *Store) UpsertListings(ctx context.Context, listings []models.ComparableSale) error {
	if len(listings) == 0 {
		return nil
	}

	err := s.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Table(listingsTable).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			UpdateAll: true,
		}).Create(&listings).Error
	})
	if err != nil {
		return fmt.Errorf("failed to upsert listings batch: %w", err)
	}
	return nil
}

// GetMarketSnapshot assembles neighborhood market context from independent
// aggregate queries issued concurrently. Returns nil (and no error) when
// the neighborhood has no usable rows.
func (s *Store) GetMarketSnapshot(ctx context.Context, neighborhood string) (*models.MarketSnapshot, error) {
	snapshot := &models.MarketSnapshot{Neighborhood: neighborhood}

	var count int
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.priceAggregates(gctx, neighborhood, snapshot, &count)
	})
	g.Go(func() error {
		return s.daysOnMarket(gctx, neighborhood, snapshot)
	})
	g.Go(func() error {
		return s.inventoryAndTrend(gctx, neighborhood, snapshot)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	return snapshot, nil
}

// priceAggregates fills median price and average price per square foot.
// The median is the middle row of the ordered effective prices.
func (s *Store) priceAggregates(ctx context.Context, neighborhood string, snapshot *models.MarketSnapshot, count *int) error {
	query := `
        WITH priced AS (
            SELECT
                COALESCE(sold_price, list_price) AS price,
                square_feet
            FROM listings
            WHERE LOWER(neighborhood) LIKE '%' || LOWER(?) || '%'
            AND COALESCE(sold_price, list_price) > 0
        )
        SELECT
            COUNT(*),
            COALESCE((
                SELECT price FROM priced
                ORDER BY price
                LIMIT 1 OFFSET (SELECT (COUNT(*) - 1) / 2 FROM priced)
            ), 0) AS median_price,
            COALESCE(AVG(CAST(price AS FLOAT) / NULLIF(square_feet, 0)), 0) AS avg_price_per_sqft
        FROM priced
    `
	err := s.db.QueryRowContext(ctx, query, neighborhood).Scan(
		count,
		&snapshot.MedianPrice,
		&snapshot.AvgPricePerSqft,
	)
	if err != nil {
		return fmt.Errorf("failed to query price aggregates: %w", err)
	}
	return nil
}

// daysOnMarket fills the average listing-to-sale interval over the past
// year of sales.
func (s *Store) daysOnMarket(ctx context.Context, neighborhood string, snapshot *models.MarketSnapshot) error {
	query := `
        SELECT COALESCE(AVG(julianday(sold_date) - julianday(list_date)), 0)
        FROM listings
        WHERE LOWER(neighborhood) LIKE '%' || LOWER(?) || '%'
        AND sold_date IS NOT NULL
        AND list_date IS NOT NULL
        AND sold_date >= date('now', '-12 months')
    `
	err := s.db.QueryRowContext(ctx, query, neighborhood).Scan(&snapshot.AvgDaysOnMarket)
	if err != nil {
		return fmt.Errorf("failed to query days on market: %w", err)
	}
	return nil
}

// inventoryAndTrend fills months of inventory (active listings over the
// trailing monthly sales pace) and labels the trend appreciating when the
// recent half year of sales prices runs more than 2% above the prior half.
func (s *Store) inventoryAndTrend(ctx context.Context, neighborhood string, snapshot *models.MarketSnapshot) error {
	query := `
        SELECT
            COALESCE(SUM(CASE WHEN sold_date IS NULL THEN 1 ELSE 0 END), 0) AS active,
            COALESCE(SUM(CASE WHEN sold_date >= date('now', '-12 months') THEN 1 ELSE 0 END), 0) AS sold_year,
            COALESCE(AVG(CASE WHEN sold_date >= date('now', '-6 months') THEN sold_price END), 0) AS recent_avg,
            COALESCE(AVG(CASE WHEN sold_date < date('now', '-6 months')
                AND sold_date >= date('now', '-12 months') THEN sold_price END), 0) AS prior_avg
        FROM listings
        WHERE LOWER(neighborhood) LIKE '%' || LOWER(?) || '%'
    `
	var active, soldYear int
	var recentAvg, priorAvg float64
	err := s.db.QueryRowContext(ctx, query, neighborhood).Scan(&active, &soldYear, &recentAvg, &priorAvg)
	if err != nil {
		return fmt.Errorf("failed to query inventory: %w", err)
	}

	if soldYear > 0 {
		snapshot.InventoryMonths = float64(active) / (float64(soldYear) / 12.0)
	} else if active > 0 {
		// Nothing sold in a year: call it a deep buyer's market
		snapshot.InventoryMonths = 12
	}

	snapshot.Trend = models.TrendStable
	if priorAvg > 0 && recentAvg > priorAvg*1.02 {
		snapshot.Trend = models.TrendAppreciating
	}
	return nil
}
