// Package config loads generator configuration from a YAML file,
// environment variables and programmatic options, in that precedence
// order (later sources win).
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/bladegen/bladegen/gen"
	"github.com/bladegen/bladegen/plan"
)

// Config holds a full generator configuration.
type Config struct {
	// Database connection.
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`

	// Framework selects the stub set ("bootstrap" or "tailwind").
	Framework string `yaml:"framework"`

	// Output is the directory generated views are written under.
	Output string `yaml:"output"`

	// StubDir optionally shadows the embedded stubs file by file.
	StubDir string `yaml:"stub_dir"`

	// Categories lists the view categories to generate. Empty means all.
	Categories []string `yaml:"categories"`

	// Features holds the named feature switches to enable.
	Features []string `yaml:"features"`

	// PerPage is the pagination page size.
	PerPage int `yaml:"per_page"`

	// ComponentNamespace is the view namespace for components.
	ComponentNamespace string `yaml:"component_namespace"`

	// Force overwrites existing files; Backup keeps a .bak copy first.
	Force  bool `yaml:"force"`
	Backup bool `yaml:"backup"`
}

// Option configures a Config programmatically.
type Option func(*Config) error

// WithFramework sets the stub framework.
func WithFramework(framework string) Option {
	return func(c *Config) error {
		if framework == "" {
			return fmt.Errorf("config: framework cannot be empty")
		}
		c.Framework = framework
		return nil
	}
}

// WithOutput sets the output directory.
func WithOutput(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return fmt.Errorf("config: output directory cannot be empty")
		}
		c.Output = dir
		return nil
	}
}

// WithDatabase sets the driver and DSN.
func WithDatabase(driver, dsn string) Option {
	return func(c *Config) error {
		c.Driver = driver
		c.DSN = dsn
		return nil
	}
}

// WithFeatures enables the named features.
func WithFeatures(names ...string) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, names...)
		return nil
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Driver:    "mysql",
		Framework: gen.FrameworkBootstrap,
		Output:    "resources",
		PerPage:   15,
	}
}

// Load reads the configuration file at path, falling back to defaults
// for everything it does not set. An empty path skips file loading.
// Environment variables (optionally from a .env file) override the
// database settings, and opts override everything.
func Load(path string, opts ...Option) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	c.applyEnv()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, c.Validate()
}

// LoadEnvFile loads a .env file into the process environment, ignoring
// a missing file. Call before Load so DB_* variables take effect.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("config: load env file %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays DB_* and BLADEGEN_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Driver = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		c.DSN = v
	}
	if v := os.Getenv("BLADEGEN_FRAMEWORK"); v != "" {
		c.Framework = v
	}
	if v := os.Getenv("BLADEGEN_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("BLADEGEN_PER_PAGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.PerPage = n
		}
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if _, err := gen.NewStore(c.Framework); err != nil {
		return err
	}
	for _, name := range c.Categories {
		if _, err := plan.ParseCategory(name); err != nil {
			return err
		}
	}
	var f plan.Features
	if err := f.Enable(c.Features...); err != nil {
		return err
	}
	if c.PerPage < 0 {
		return fmt.Errorf("config: per_page cannot be negative")
	}
	return nil
}

// PlanFeatures converts the configuration into planner feature flags.
func (c *Config) PlanFeatures() (plan.Features, error) {
	f := plan.Defaults()
	if err := f.Enable(c.Features...); err != nil {
		return plan.Features{}, err
	}
	if c.PerPage > 0 {
		f.PerPage = c.PerPage
	}
	f.ComponentNamespace = c.ComponentNamespace
	return f, nil
}

// PlanCategories converts the configured category names, defaulting to
// every category when none are named.
func (c *Config) PlanCategories() ([]plan.Category, error) {
	if len(c.Categories) == 0 {
		return plan.AllCategories, nil
	}
	categories := make([]plan.Category, 0, len(c.Categories))
	for _, name := range c.Categories {
		cat, err := plan.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}
