package countryatlas

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults target the World Bank v2 API, whose full country listing fits a
// single page at this size.
const (
	DefaultBaseURL = "https://api.worldbank.org/v2"
	DefaultPerPage = 400
	DefaultDate    = "2023"
	DefaultTimeout = 30 * time.Second

	PopulationIndicator = "SP.POP.TOTL"
	GDPIndicator        = "NY.GDP.MKTP.CD"
)

type Config struct {
	BaseURL             string `yaml:"base_url"`
	PerPage             int    `yaml:"per_page"`
	TimeoutSeconds      int    `yaml:"timeout_seconds"`
	Date                string `yaml:"date"`
	PopulationIndicator string `yaml:"population_indicator"`
	GDPIndicator        string `yaml:"gdp_indicator"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:             DefaultBaseURL,
		PerPage:             DefaultPerPage,
		TimeoutSeconds:      int(DefaultTimeout / time.Second),
		Date:                DefaultDate,
		PopulationIndicator: PopulationIndicator,
		GDPIndicator:        GDPIndicator,
	}
}

func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if c.PerPage <= 0 {
		return fmt.Errorf("per_page must be positive, got %d", c.PerPage)
	}
	if c.PopulationIndicator == "" {
		return fmt.Errorf("population_indicator must not be empty")
	}
	if c.GDPIndicator == "" {
		return fmt.Errorf("gdp_indicator must not be empty")
	}
	return nil
}

// LoadConfig reads a YAML config file; omitted keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
