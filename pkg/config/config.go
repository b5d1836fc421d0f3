package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/helmcode/pwcheck/pkg/generator"
)

// EnvPath overrides the default config location.
const EnvPath = "PWCHECK_CONFIG"

type Config struct {
	// CommonTokens extend the built-in denylist of common passwords and fragments.
	CommonTokens []string        `yaml:"common_tokens"`
	Generator    GeneratorConfig `yaml:"generator"`
	Output       string          `yaml:"output"`
}

type GeneratorConfig struct {
	Length  int    `yaml:"length"`
	Symbols string `yaml:"symbols"`
}

var outputFormats = []string{"human", "json", "yaml"}

// DefaultPath returns $PWCHECK_CONFIG, or ~/.pwcheck/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pwcheck", "config.yaml")
}

// Load reads a config file. An empty path means DefaultPath. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		CommonTokens: []string{},
		Generator: GeneratorConfig{
			Length: generator.DefaultLength,
		},
		Output: "human",
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Generator.Length == 0 {
		cfg.Generator.Length = generator.DefaultLength
	}
	if cfg.Output == "" {
		cfg.Output = "human"
	}
	cfg.Output = strings.ToLower(cfg.Output)
}

// Validate reports every problem found, joined.
func (c *Config) Validate() error {
	var errs []error

	settings := generator.Settings{Length: c.Generator.Length, Symbols: c.Generator.Symbols}
	if err := settings.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("generator: %w", err))
	}

	if !ValidOutput(c.Output) {
		errs = append(errs, fmt.Errorf("output %q not supported (supported: %s)", c.Output, strings.Join(outputFormats, ", ")))
	}

	for i, t := range c.CommonTokens {
		if strings.TrimSpace(t) == "" {
			errs = append(errs, fmt.Errorf("common_tokens[%d] is empty", i))
		}
	}

	return errors.Join(errs...)
}

// GeneratorSettings converts the generator section into generator.Settings.
func (c *Config) GeneratorSettings() generator.Settings {
	return generator.Settings{
		Length:  c.Generator.Length,
		Symbols: c.Generator.Symbols,
	}
}

// ValidOutput reports whether format is a supported output format.
func ValidOutput(format string) bool {
	for _, f := range outputFormats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}
