package database

import "fmt"

func (s *Store) RunMigrations() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS listings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			address TEXT UNIQUE NOT NULL,
			neighborhood TEXT,
			property_type TEXT,
			list_price REAL,
			sold_price REAL,
			sold_date DATETIME,
			list_date DATETIME,
			square_feet INTEGER,
			bedrooms INTEGER,
			bathrooms REAL,
			latitude REAL,
			longitude REAL
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create listings table: %v", err)
	}

	_, err = s.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_listings_neighborhood
		ON listings(neighborhood);
	`)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_listings_sold_date
		ON listings(sold_date);
	`)
	if err != nil {
		return err
	}

	return nil
}
