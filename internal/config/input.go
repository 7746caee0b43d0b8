package config

import (
	"fmt"
	"os"

	"github.com/rpgo/takehome/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of schedule configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates YAML configuration bytes
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if _, err := domain.NewSchedule(config.Slabs, config.Threshold); err != nil {
		return err
	}

	if config.Sweep != nil {
		if err := config.Sweep.Validate(); err != nil {
			return fmt.Errorf("sweep: %w", err)
		}
	}

	if config.DisplayDivisor.IsNegative() {
		return fmt.Errorf("display divisor cannot be negative")
	}

	return nil
}

// BuildSchedule converts a validated configuration into an immutable schedule
func (ip *InputParser) BuildSchedule(config *domain.Configuration) (domain.Schedule, error) {
	schedule, err := domain.NewSchedule(config.Slabs, config.Threshold)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("failed to build schedule: %w", err)
	}
	return schedule, nil
}

// CreateExampleConfiguration returns the built-in schedule and sweep as a configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	sweep := domain.DefaultSweep()
	return &domain.Configuration{
		Threshold:      decimal.NewFromInt(domain.DefaultThreshold),
		Slabs:          domain.DefaultSlabs(),
		Sweep:          &sweep,
		DisplayDivisor: decimal.NewFromInt(domain.DefaultDisplayDivisor),
	}
}

// SaveConfiguration writes a configuration as YAML
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
