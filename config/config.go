// Package config loads the settings collaborators hand to the mapping core:
// the API endpoint URLs are built against, the data URI prefix of resource
// identifiers, and extra irregular plurals for the inflector.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/grom"
	"github.com/syssam/grom/naming"
	"github.com/syssam/grom/resource"
)

// Environment variables consulted by FromEnv.
const (
	EnvEndpoint      = "GROM_API_ENDPOINT"
	EnvDataURIPrefix = "GROM_DATA_URI_PREFIX"
)

// Config holds mapping configuration.
type Config struct {
	// Endpoint is the API base URL, e.g. "https://api.example.com".
	Endpoint string `yaml:"endpoint"`

	// DataURIPrefix is the prefix of resource identifiers,
	// e.g. "http://id.example.com".
	DataURIPrefix string `yaml:"data_uri_prefix,omitempty"`

	// Irregulars maps singular words to plurals the default ruleset gets
	// wrong.
	Irregulars map[string]string `yaml:"irregulars,omitempty"`
}

// Option configures a Config.
type Option func(*Config) error

// WithEndpoint sets the API endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Config) error {
		if endpoint == "" {
			return grom.NewConfigError("endpoint", nil, "endpoint cannot be empty")
		}
		c.Endpoint = endpoint
		return nil
	}
}

// WithDataURIPrefix sets the data URI prefix.
func WithDataURIPrefix(prefix string) Option {
	return func(c *Config) error {
		c.DataURIPrefix = prefix
		return nil
	}
}

// WithIrregular adds an irregular singular → plural pair.
func WithIrregular(singular, plural string) Option {
	return func(c *Config) error {
		if singular == "" || plural == "" {
			return grom.NewConfigError("irregulars", singular, "singular and plural are required")
		}
		if c.Irregulars == nil {
			c.Irregulars = make(map[string]string)
		}
		c.Irregulars[singular] = plural
		return nil
	}
}

// New returns a Config built from opts, normalized and validated.
func New(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply applies opts in order, stopping at the first error.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a YAML configuration file, applies environment overrides and
// then opts, and normalizes and validates the result. A missing file is not
// an error; the configuration then comes from the environment and opts.
func Load(path string, opts ...Option) (*Config, error) {
	c := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	c.FromEnv()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// FromEnv overrides fields with non-empty environment variables.
func (c *Config) FromEnv() {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvDataURIPrefix); v != "" {
		c.DataURIPrefix = v
	}
}

// Normalize trims whitespace and trailing slashes from URLs.
func (c *Config) Normalize() {
	c.Endpoint = strings.TrimRight(strings.TrimSpace(c.Endpoint), "/")
	c.DataURIPrefix = strings.TrimRight(strings.TrimSpace(c.DataURIPrefix), "/")
}

// Validate checks that the endpoint is an absolute http(s) URL and that the
// data URI prefix, when set, is absolute. All problems are reported.
func (c *Config) Validate() error {
	var errs []error
	if err := checkURL("endpoint", c.Endpoint, true); err != nil {
		errs = append(errs, err)
	}
	if c.DataURIPrefix != "" {
		if err := checkURL("data_uri_prefix", c.DataURIPrefix, false); err != nil {
			errs = append(errs, err)
		}
	}
	for singular, plural := range c.Irregulars {
		if singular == "" || plural == "" {
			errs = append(errs, grom.NewConfigError("irregulars", singular, "singular and plural are required"))
		}
	}
	return grom.NewAggregateError(errs...)
}

// Inflector returns an inflector carrying the configured irregulars.
func (c *Config) Inflector() *naming.Inflector {
	return naming.NewInflector(c.Irregulars)
}

// Builder returns a URL builder for the configured endpoint.
func (c *Config) Builder() *resource.Builder {
	return resource.NewBuilder(c.Endpoint, c.Inflector())
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func checkURL(option, raw string, httpOnly bool) error {
	if raw == "" {
		return grom.NewConfigError(option, nil, "required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return grom.NewConfigError(option, raw, err.Error())
	}
	if !u.IsAbs() || u.Host == "" {
		return grom.NewConfigError(option, raw, "must be an absolute URL")
	}
	if httpOnly && u.Scheme != "http" && u.Scheme != "https" {
		return grom.NewConfigError(option, raw, "must be an http or https URL")
	}
	return nil
}
