package config

import (
	"fmt"
	"os"
	"reflect"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/yigit/classworks/internal/pkg/validation"
)

// DefaultPath is where the configuration file is looked up when no path is given
const DefaultPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error fatal"`
		Format string `yaml:"format" env:"LOG_FORMAT" validate:"omitempty,oneof=json text"`
	} `yaml:"logging"`

	Report struct {
		Currency  string `yaml:"currency" env:"REPORT_CURRENCY" validate:"required"`
		Collation string `yaml:"collation" env:"REPORT_COLLATION" validate:"required,bcp47_language_tag"`
	} `yaml:"report"`

	Hospital struct {
		LoyaltyYears    int    `yaml:"loyalty_years" env:"HOSPITAL_LOYALTY_YEARS" validate:"gte=0"`
		LoyaltyDiscount string `yaml:"loyalty_discount" env:"HOSPITAL_LOYALTY_DISCOUNT" validate:"required,fraction"`
	} `yaml:"hospital"`

	Bank struct {
		CreditMultiplier int `yaml:"credit_multiplier" env:"BANK_CREDIT_MULTIPLIER" validate:"gte=0"`
	} `yaml:"bank"`

	// Category narrows the warranty report, empty means every category
	ServiceCenter struct {
		InputDir  string `yaml:"input_dir" env:"SERVICE_CENTER_INPUT_DIR" validate:"required"`
		OutputDir string `yaml:"output_dir" env:"SERVICE_CENTER_OUTPUT_DIR" validate:"required"`
		Category  string `yaml:"category" env:"SERVICE_CENTER_CATEGORY"`
	} `yaml:"service_center"`

	University struct {
		InputDir  string `yaml:"input_dir" env:"UNIVERSITY_INPUT_DIR" validate:"required"`
		OutputDir string `yaml:"output_dir" env:"UNIVERSITY_OUTPUT_DIR" validate:"required"`
	} `yaml:"university"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// A missing file is fine, defaults and env still apply
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Logging.Level = "info"
	config.Logging.Format = "text"

	config.Report.Currency = "UAH"
	config.Report.Collation = "uk"

	config.Hospital.LoyaltyYears = 3
	config.Hospital.LoyaltyDiscount = "0.1"

	config.Bank.CreditMultiplier = 100

	config.ServiceCenter.InputDir = "input/servicecenter"
	config.ServiceCenter.OutputDir = "output/servicecenter"

	config.University.InputDir = "input/university"
	config.University.OutputDir = "output/university"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return applyEnv(reflect.ValueOf(config))
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	validate, err := validation.New()
	if err != nil {
		return err
	}
	return validate.Struct(config)
}

// LoyaltyDiscount returns the hospital discount as a decimal fraction.
// The value is checked by LoadConfig, so a parse failure falls back to zero.
func (c *Config) LoyaltyDiscount() decimal.Decimal {
	d, err := decimal.NewFromString(c.Hospital.LoyaltyDiscount)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
