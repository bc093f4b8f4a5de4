package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/logger"
	"github.com/noobyez/PriceDeviationCalculator-sub000/internal/strategy"
)

// Config holds all application configuration.
type Config struct {
	Analysis struct {
		RegressionMode  string `yaml:"regression_mode" default:"standard" validate:"oneof=standard advanced"`
		ForecastPeriods int    `yaml:"forecast_periods" default:"5" validate:"gte=1,lte=120"`
		RollingWindow   int    `yaml:"rolling_window" default:"5" validate:"gte=2"`
		Workers         int    `yaml:"workers" default:"4" validate:"gte=1,lte=64"`
	} `yaml:"analysis"`
	Rda strategy.Rules `yaml:"rda"`
	Input struct {
		Path      string `yaml:"path"`
		Delimiter string `yaml:"delimiter" default:"comma" validate:"oneof=comma semicolon tab"`
	} `yaml:"input"`
	Report struct {
		Path string `yaml:"path"`
	} `yaml:"report"`
	Schedule struct {
		WatchCron string `yaml:"watch_cron" default:"0 */15 * * * *"`
	} `yaml:"schedule"`
	Metrics struct {
		File string `yaml:"file"`
	} `yaml:"metrics"`
	Log logger.Config `yaml:"log"`
}

var validate = validator.New()

// Load reads config from a YAML file, applies environment variable
// overrides, then fills defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PRICEDEV_REGRESSION_MODE"); v != "" {
		cfg.Analysis.RegressionMode = v
	}
	if v := os.Getenv("PRICEDEV_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PRICEDEV_WORKERS: %w", err)
		}
		cfg.Analysis.Workers = n
	}
	if v := os.Getenv("PRICEDEV_INPUT"); v != "" {
		cfg.Input.Path = v
	}
	if v := os.Getenv("PRICEDEV_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PRICEDEV_WATCH_CRON"); v != "" {
		cfg.Schedule.WatchCron = v
	}

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// Delimiter returns the input field separator as a rune.
func (c *Config) Delimiter() rune {
	switch c.Input.Delimiter {
	case "semicolon":
		return ';'
	case "tab":
		return '\t'
	default:
		return ','
	}
}
