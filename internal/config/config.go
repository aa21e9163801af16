package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all compiler configuration.
type Config struct {
	Paths    PathsConfig    `yaml:"paths" toml:"paths"`
	Compiler CompilerConfig `yaml:"compiler" toml:"compiler"`
	Logging  LogConfig      `yaml:"logging" toml:"logging"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
}

// PathsConfig holds the package and build tree locations.
type PathsConfig struct {
	PackagesRoot string `envconfig:"PACKAGES_ROOT" default:"packages" yaml:"packages_root" toml:"packages_root" validate:"required"`
	BuildRoot    string `envconfig:"BUILD_ROOT" default:"build" yaml:"build_root" toml:"build_root" validate:"required"`
	TemplatesDir string `envconfig:"TEMPLATES_DIR" yaml:"templates_dir" toml:"templates_dir"` // empty = embedded templates
}

// CompilerConfig holds code generation policy.
type CompilerConfig struct {
	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE" default:"en_US" yaml:"default_language" toml:"default_language" validate:"required,langcode"`
	Production      bool   `envconfig:"ENV_PRODUCTION" default:"false" yaml:"production" toml:"production"`
	VerifyScripts   bool   `envconfig:"VERIFY_SCRIPTS" default:"true" yaml:"verify_scripts" toml:"verify_scripts"`
	StrictMarkup    bool   `envconfig:"STRICT_MARKUP" default:"false" yaml:"strict_markup" toml:"strict_markup"`
	Precompress     bool   `envconfig:"PRECOMPRESS" default:"false" yaml:"precompress" toml:"precompress"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	Development bool   `envconfig:"LOG_DEV" default:"false" yaml:"development" toml:"development"`
}

// OutputConfig holds optional run outputs besides the artifacts.
type OutputConfig struct {
	ReportPath  string `envconfig:"REPORT_PATH" yaml:"report_path" toml:"report_path"`
	MetricsPath string `envconfig:"METRICS_PATH" yaml:"metrics_path" toml:"metrics_path"`
}

var langCodePattern = regexp.MustCompile(`^[a-z]{2,3}(_[A-Z]{2})?$`)

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// LoadFile loads configuration from a YAML or TOML file over the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for required and well-formed values.
func Validate(cfg *Config) error {
	v := validator.New()
	if err := v.RegisterValidation("langcode", func(fl validator.FieldLevel) bool {
		return langCodePattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			PackagesRoot: "packages",
			BuildRoot:    "build",
		},
		Compiler: CompilerConfig{
			DefaultLanguage: "en_US",
			Production:      false,
			VerifyScripts:   true,
			StrictMarkup:    false,
			Precompress:     false,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
