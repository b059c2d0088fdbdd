/* config.go
 * Runtime configuration: an optional YAML file plus environment overrides. Everything
 * has a sensible default so the viewer runs with no config at all.
 */

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Providers ProvidersConfig `yaml:"providers"`
	Refresh   RefreshConfig   `yaml:"refresh"`

	// BracketOverridePath names a local ESPN-format bracket snapshot consulted before
	// any network source. Populated from MMTUI_BRACKET_JSON; not a YAML field.
	BracketOverridePath string `yaml:"-"`
}

type ProvidersConfig struct {
	NCAABaseURL string        `yaml:"ncaa_base_url"`
	ESPNSiteURL string        `yaml:"espn_site_url"`
	ESPNV2URL   string        `yaml:"espn_v2_url"`
	Timeout     time.Duration `yaml:"timeout"`
}

type RefreshConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Providers: ProvidersConfig{Timeout: 10 * time.Second},
		Refresh:   RefreshConfig{Interval: 30 * time.Second},
	}
}

// Load reads the YAML file at path when it exists, then applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.BracketOverridePath = os.Getenv("MMTUI_BRACKET_JSON")
	if cfg.Providers.Timeout <= 0 {
		cfg.Providers.Timeout = 10 * time.Second
	}
	if cfg.Refresh.Interval <= 0 {
		cfg.Refresh.Interval = 30 * time.Second
	}
	return cfg, nil
}
