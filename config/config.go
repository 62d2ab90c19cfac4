package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/banachtech/vanilla/data"
	"github.com/banachtech/vanilla/utils"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the complete configuration of the pricer.
type Config struct {
	Market     MarketConfig   `yaml:"market"`
	Simulation data.SimConfig `yaml:"simulation"`
	Server     ServerConfig   `yaml:"server"`
	Log        LogConfig      `yaml:"log"`
}

// MarketConfig holds the option inputs. Maturity may be given directly in
// years, or derived from ValuationDate and Expiry.
type MarketConfig struct {
	data.Params   `yaml:",inline"`
	ValuationDate string `yaml:"valuation_date"`
	Expiry        string `yaml:"expiry"`
}

// ServerConfig controls the HTTP surface.
type ServerConfig struct {
	Addr      string  `yaml:"addr"`
	RateLimit float64 `yaml:"rate_limit"` // requests per second per client
	Burst     int     `yaml:"burst"`
}

// LogConfig controls log format and level.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load reads the YAML file at path, if any, and a .env file if present.
// Environment variables override the file; missing values get defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	seedSet := false
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
		if seedSet, err = hasSeed(b); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	envSeed, err := applyEnvOverrides(&cfg)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := setDefaults(&cfg, seedSet || envSeed); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

// Default returns the reference scenario.
func Default() *Config {
	var cfg Config
	// no dates set, cannot fail
	_ = setDefaults(&cfg, false)
	return &cfg
}

// hasSeed reports whether the YAML document sets simulation.seed, so that an
// explicit zero seed is kept.
func hasSeed(b []byte) (bool, error) {
	var doc struct {
		Simulation struct {
			Seed *uint64 `yaml:"seed"`
		} `yaml:"simulation"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return false, err
	}
	return doc.Simulation.Seed != nil, nil
}

// Params returns the market inputs. They are validated by the pricers.
func (c *Config) Params() data.Params {
	return c.Market.Params
}

// applyEnvOverrides reports whether PRICER_SEED was set.
func applyEnvOverrides(cfg *Config) (bool, error) {
	if v := os.Getenv("PRICER_SAMPLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return false, fmt.Errorf("PRICER_SAMPLES: %w", err)
		}
		cfg.Simulation.Samples = n
	}
	seedSet := false
	if v := os.Getenv("PRICER_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return false, fmt.Errorf("PRICER_SEED: %w", err)
		}
		cfg.Simulation.Seed = n
		seedSet = true
	}
	if v := os.Getenv("PRICER_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return false, fmt.Errorf("PRICER_WORKERS: %w", err)
		}
		cfg.Simulation.Workers = n
	}
	if v := os.Getenv("PRICER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	return seedSet, nil
}

// setDefaults fills zero values with the reference scenario
// S=100, K=100, T=10, r=0.05, σ=0.2, 10000 samples.
// A zero rate is a valid input, so the rate is only defaulted when the whole
// market section is empty. The seed is only defaulted when seedSet is false,
// since zero is a valid seed.
func setDefaults(cfg *Config, seedSet bool) error {
	m := &cfg.Market
	if m.Params == (data.Params{}) && m.Expiry == "" {
		m.Params = data.Params{Spot: 100, Strike: 100, Maturity: 10, Rate: 0.05, Vol: 0.2}
	}
	if m.Maturity == 0 && m.Expiry != "" {
		if m.ValuationDate == "" {
			m.ValuationDate = time.Now().Format(utils.Layout)
		}
		T, err := utils.Maturity(m.ValuationDate, m.Expiry)
		if err != nil {
			return err
		}
		m.Maturity = T
	}

	s := &cfg.Simulation
	if s.Samples == 0 {
		s.Samples = 10000
	}
	if s.Seed == 0 && !seedSet {
		s.Seed = 42
	}
	if s.Steps == 0 {
		s.Steps = 1
	}
	if s.Workers == 0 {
		s.Workers = 1
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.RateLimit <= 0 {
		cfg.Server.RateLimit = 2
	}
	if cfg.Server.Burst <= 0 {
		cfg.Server.Burst = 4
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	return nil
}
