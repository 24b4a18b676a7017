package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	SpannerDB string `envconfig:"SPANNER_DATABASE" default:"projects/test-project/instances/dev-instance/databases/sku-variants-db"`
	GRPCPort  string `envconfig:"GRPC_PORT" default:"9090"`
	HTTPPort  string `envconfig:"HTTP_PORT" default:"8080"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// PriceDisplayTimezone is the location validity windows are rendered in.
	PriceDisplayTimezone string `envconfig:"PRICE_DISPLAY_TIMEZONE" default:"UTC"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.SpannerDB) == "" {
		return fmt.Errorf("SPANNER_DATABASE is required")
	}
	if _, err := ParseDatabasePath(c.SpannerDB); err != nil {
		return err
	}
	if _, err := c.DisplayLocation(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// DisplayLocation resolves PriceDisplayTimezone.
func (c *Config) DisplayLocation() (*time.Location, error) {
	name := strings.TrimSpace(c.PriceDisplayTimezone)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid PRICE_DISPLAY_TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

// DatabasePath is a parsed Spanner database resource name.
type DatabasePath struct {
	Project  string
	Instance string
	Database string
}

// ParseDatabasePath splits projects/P/instances/I/databases/D into its parts.
func ParseDatabasePath(name string) (DatabasePath, error) {
	parts := strings.Split(strings.TrimSpace(name), "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" {
		return DatabasePath{}, fmt.Errorf("invalid spanner database %q: want projects/P/instances/I/databases/D", name)
	}
	p := DatabasePath{Project: parts[1], Instance: parts[3], Database: parts[5]}
	if p.Project == "" || p.Instance == "" || p.Database == "" {
		return DatabasePath{}, fmt.Errorf("invalid spanner database %q: empty segment", name)
	}
	return p, nil
}

// ProjectName returns projects/P.
func (p DatabasePath) ProjectName() string { return "projects/" + p.Project }

// InstanceName returns projects/P/instances/I.
func (p DatabasePath) InstanceName() string {
	return p.ProjectName() + "/instances/" + p.Instance
}

// String returns the full database resource name.
func (p DatabasePath) String() string {
	return p.InstanceName() + "/databases/" + p.Database
}
