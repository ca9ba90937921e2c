package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	rateTables *RateTables
	tablesLock sync.RWMutex
	tablesPath = "config/rate_tables.json"
)

// LoadRateTables loads the cost and rate tables from file. Missing files
// are not an error: the built-in defaults are installed instead.
func LoadRateTables() error {
	tablesLock.Lock()
	defer tablesLock.Unlock()

	absPath, err := filepath.Abs(tablesPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %v", err)
	}

	data, err := os.ReadFile(absPath)
	if os.IsNotExist(err) {
		rateTables = DefaultRateTables()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read rate tables: %v", err)
	}

	var tables RateTables
	if err := json.Unmarshal(data, &tables); err != nil {
		return fmt.Errorf("failed to parse rate tables: %v", err)
	}
	if err := tables.Validate(); err != nil {
		return fmt.Errorf("invalid rate tables: %v", err)
	}

	rateTables = &tables
	return nil
}

// SaveRateTables writes the current tables back to file.
func SaveRateTables() error {
	tablesLock.Lock()
	defer tablesLock.Unlock()

	if rateTables == nil {
		return fmt.Errorf("no rate tables loaded")
	}

	absPath, err := filepath.Abs(tablesPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %v", err)
	}

	data, err := json.MarshalIndent(rateTables, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal rate tables: %v", err)
	}

	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write rate tables: %v", err)
	}

	return nil
}

// GetRateTables returns the loaded tables, or the defaults when nothing has
// been loaded yet.
func GetRateTables() *RateTables {
	tablesLock.RLock()
	defer tablesLock.RUnlock()

	if rateTables == nil {
		return DefaultRateTables()
	}
	return rateTables
}
