package cli

import (
	"encoding/json"
	"fmt"
	"os"

	semver "github.com/Masterminds/semver/v3"

	"github.com/orizon-lang/declcheck/internal/types"
)

// ConfigEnv names the environment variable holding the default config path.
const ConfigEnv = "DECLCHECK_CONFIG"

// ServerConfig configures the analysis service.
type ServerConfig struct {
	Addr     string `json:"addr"`
	CertFile string `json:"cert_file"`
	KeyFile  string `json:"key_file"`
	Requires string `json:"requires"` // semver constraint the remote server version must satisfy
}

// Config represents common configuration for CLI tools
type Config struct {
	Verbose     bool         `json:"verbose"`
	Debug       bool         `json:"debug"`
	Color       string       `json:"color"`    // auto, always or never
	Widening    *bool        `json:"widening"` // nil means the default policy
	Requires    string       `json:"requires"` // semver constraint on the tool version
	Concurrency int          `json:"concurrency"`
	Server      ServerConfig `json:"server"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Color:       "auto",
		Concurrency: 4,
		Server:      ServerConfig{Addr: "127.0.0.1:4433"},
	}
}

// LoadConfig loads configuration from file. An empty path falls back to
// $DECLCHECK_CONFIG; a missing file yields the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		configPath = os.Getenv(ConfigEnv)
	}
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil // Default config if file doesn't exist
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return config, nil
}

// Validate checks field values and the version constraint.
func (c *Config) Validate() error {
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	if c.Server.Requires != "" {
		if _, err := semver.NewConstraint(c.Server.Requires); err != nil {
			return fmt.Errorf("invalid server version constraint %q: %w", c.Server.Requires, err)
		}
	}
	return CheckRequires(c.Requires, Version)
}

// CheckRequires reports an error if version does not satisfy constraint.
// An empty constraint is always satisfied.
func CheckRequires(constraint, version string) error {
	if constraint == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", version, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("version %s does not satisfy %q", v, constraint)
	}
	return nil
}

// Policy returns the compatibility policy the config selects.
func (c *Config) Policy() types.Policy {
	p := types.DefaultPolicy()
	if c.Widening != nil {
		p.AllowIntegerWidening = *c.Widening
	}
	return p
}

// SaveConfig saves configuration to file
func (c *Config) SaveConfig(configPath string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
