package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Server configuration
	Server struct {
		Port   string `env:"SERVER_PORT" envDefault:"5260"`
		DBPath string `env:"DB_PATH" envDefault:"database/bayou.db"`
	}

	// Valuation engine configuration
	Valuation struct {
		// Maximum number of comparables fetched per request
		MaxComparables int `env:"VALUATION_MAX_COMPARABLES" envDefault:"20"`

		// Fallback price per square foot when no comparables are available
		RegionalAvgPricePerSqft float64 `env:"VALUATION_REGIONAL_PRICE_PER_SQFT" envDefault:"165"`

		// Fallback valuation when neither comparables nor square footage are known
		RegionalDefaultValue float64 `env:"VALUATION_REGIONAL_DEFAULT" envDefault:"285000"`
	}

	// Development cost configuration
	Costs struct {
		// Apply Houston flat permit floors instead of the bare percentage
		HoustonPermitFloors bool `env:"COSTS_HOUSTON_PERMIT_FLOORS" envDefault:"true"`

		// Minimum permit cost in dollars when floors are enabled
		FlatPermitFloor float64 `env:"COSTS_FLAT_PERMIT_FLOOR" envDefault:"5000"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
